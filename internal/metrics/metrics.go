// Package metrics implements the five quality sub-scores and the
// negative-language penalty. Every calculator is a total function: input is
// validated at the feature-extraction boundary, output is clamped to its
// documented range, and no calculator ever fails or panics on malformed text.
package metrics

import (
	"math"
	"strings"

	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/lexicon"
	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/models"
	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/textfeat"
)

// Calculator scores text against a lexicon. It is stateless apart from the
// injected read-only configuration and safe for concurrent use.
type Calculator struct {
	lex *lexicon.Lexicon
	ext *textfeat.Extractor
}

// NewCalculator returns a Calculator bound to lex.
func NewCalculator(lex *lexicon.Lexicon) *Calculator {
	return &Calculator{lex: lex, ext: textfeat.New(lex)}
}

// All computes every metric for text in one pass.
func (c *Calculator) All(text string) models.MetricScores {
	return models.MetricScores{
		Clarity:        c.Clarity(text),
		Specificity:    c.Specificity(text),
		Completeness:   c.Completeness(text),
		Structure:      c.Structure(text),
		SMARTCriteria:  c.SMARTCriteria(text),
		NegativeImpact: c.NegativeImpact(text),
	}
}

// Clarity scores how readable the text is. The base scales with token count:
// very short texts bottom out at 0.2, the ideal range climbs toward 1.0, and
// texts past 50 tokens decay with words-per-sentence. Long average word length
// dampens the score; capitalization and terminal punctuation boost it.
func (c *Calculator) Clarity(text string) float64 {
	if !textfeat.ValidQuality(text, c.lex.MinWords) {
		return 0
	}

	words := textfeat.CountWords(text)
	sentences := textfeat.CountSentences(text)
	if words == 0 || sentences == 0 {
		return 0
	}

	var score float64
	switch {
	case words < 5:
		score = 0.2
	case words > 50:
		wordsPerSentence := float64(words) / float64(sentences)
		score = math.Max(0.3, 1.0-(wordsPerSentence-10)*0.02)
	default:
		score = math.Min(1.0, 0.5+float64(words)*0.05)
	}

	if textfeat.AvgWordLength(text) > 8 {
		score *= 0.8
	}
	if textfeat.StartsCapitalized(text) {
		score *= 1.1
	}
	if textfeat.HasPunctuation(text) {
		score *= 1.05
	}

	return clamp01(score)
}

// Specificity rewards numerals, technical terms, and explicit specificity
// vocabulary on top of a 0.1 base.
func (c *Calculator) Specificity(text string) float64 {
	if !textfeat.ValidQuality(text, c.lex.MinWords) {
		return 0
	}

	score := 0.1

	if textfeat.HasNumbers(text) {
		score += 0.3
		score += math.Min(0.2, float64(textfeat.CountNumbers(text))*0.05)
	}

	if terms := c.ext.TechnicalTerms(text); len(terms) > 0 {
		score += math.Min(0.3, float64(len(terms))*0.1)
	}

	lower := strings.ToLower(text)
	for _, kw := range c.lex.SpecificityKeywords {
		if strings.Contains(lower, kw) {
			score += 0.1
		}
	}

	return clamp01(score)
}

// Completeness rewards raw content volume and coverage of the narrative
// dimensions of a plan (the WH-question elements).
func (c *Calculator) Completeness(text string) float64 {
	if !textfeat.ValidQuality(text, c.lex.MinWords) {
		return 0
	}

	words := textfeat.CountWords(text)
	sentences := textfeat.CountSentences(text)
	if words < 5 {
		return 0.1
	}

	score := math.Min(0.6, float64(words)*0.02)
	score += math.Min(0.2, float64(sentences)*0.05)

	lower := strings.ToLower(text)
	for _, element := range c.lex.CompletenessElements {
		if strings.Contains(lower, element) {
			score += 0.05
		}
	}

	if len([]rune(text)) > 100 {
		score += 0.1
	}

	return clamp01(score)
}

// Structure rewards connective words, capitalization, punctuation, and
// multiple sentences (with diminishing returns) over a 0.2 base.
func (c *Calculator) Structure(text string) float64 {
	if !textfeat.ValidQuality(text, c.lex.MinWords) {
		return 0
	}

	score := 0.2

	lower := strings.ToLower(text)
	for _, conn := range c.lex.Connectives {
		if strings.Contains(lower, conn) {
			score += 0.1
		}
	}

	if textfeat.StartsCapitalized(text) {
		score += 0.2
	}
	if textfeat.HasPunctuation(text) {
		score += 0.2
	}

	if sentences := textfeat.CountSentences(text); sentences > 1 {
		score += math.Min(0.3, float64(sentences)*0.1)
	}

	return clamp01(score)
}

// SMARTCriteria adds a fixed increment for each SMART category with at least
// one keyword present in the text. Categories are independent.
func (c *Calculator) SMARTCriteria(text string) float64 {
	if !textfeat.ValidQuality(text, c.lex.MinWords) {
		return 0
	}

	lower := strings.ToLower(text)
	score := 0.0
	for _, category := range c.lex.SMARTKeywords.Categories() {
		for _, kw := range category {
			if strings.Contains(lower, strings.ToLower(kw)) {
				score += c.lex.SMARTIncrement
				break
			}
		}
	}

	return clamp01(score)
}

// NegativeImpact is the hedging-language penalty: 0.1 per configured
// uncertainty phrase found, capped at 0.5 so it never fully zeroes a score.
// It returns 0 when validation fails; there is nothing to penalize.
func (c *Calculator) NegativeImpact(text string) float64 {
	if !textfeat.ValidQuality(text, c.lex.MinWords) {
		return 0
	}

	lower := strings.ToLower(text)
	score := 0.0
	for _, indicator := range c.lex.NegativeIndicators {
		if strings.Contains(lower, strings.ToLower(indicator)) {
			score += 0.1
		}
	}

	return math.Min(0.5, score)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
