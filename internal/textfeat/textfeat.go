// Package textfeat derives the per-text features the metric calculators
// consume. All functions treat nil-ish input as the empty string and never
// fail; validation happens here, at the extraction boundary, so the
// calculators can stay total.
package textfeat

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/lexicon"
	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/models"
)

var (
	tokenRE    = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	sentenceRE = regexp.MustCompile(`[.!?]+`)
	numberRE   = regexp.MustCompile(`[0-9]+`)
	// cleanRE drops everything outside word characters, whitespace, and basic
	// punctuation, mirroring what reviewers consider "text".
	cleanRE      = regexp.MustCompile(`[^\p{L}\p{N}_\s\-.,;:!?()]`)
	whitespaceRE = regexp.MustCompile(`\s+`)
)

// Clean normalizes raw field content: strips stray symbols and collapses
// whitespace.
func Clean(text string) string {
	text = cleanRE.ReplaceAllString(strings.TrimSpace(text), " ")
	text = whitespaceRE.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Tokenize case-folds and splits on non-word boundaries, keeping alphanumeric
// runs as tokens. No stopword removal; the heuristics rely on raw density.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	return tokenRE.FindAllString(strings.ToLower(text), -1)
}

// CountSentences counts terminal-punctuation runs, with a minimum of one for
// non-empty text.
func CountSentences(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	n := len(sentenceRE.FindAllString(text, -1))
	if n < 1 {
		return 1
	}
	return n
}

// CountWords returns the token count of text.
func CountWords(text string) int {
	return len(Tokenize(text))
}

// HasNumbers reports whether text contains any numeral run.
func HasNumbers(text string) bool {
	return numberRE.MatchString(text)
}

// CountNumbers counts numeral runs in text.
func CountNumbers(text string) int {
	return len(numberRE.FindAllString(text, -1))
}

// StartsCapitalized reports whether the first letter of the trimmed text is
// uppercase.
func StartsCapitalized(text string) bool {
	for _, r := range strings.TrimSpace(text) {
		return unicode.IsUpper(r)
	}
	return false
}

// HasPunctuation reports whether text contains terminal punctuation.
func HasPunctuation(text string) bool {
	return strings.ContainsAny(text, ".!?")
}

// AvgWordLength returns the mean rune length of the tokens in text, 0 for
// empty input.
func AvgWordLength(text string) float64 {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return 0
	}
	total := 0
	for _, tok := range tokens {
		total += len([]rune(tok))
	}
	return float64(total) / float64(len(tokens))
}

// ValidQuality is the single gating invariant shared by all metric
// calculators: cleaned text must be at least 3 characters and minWords tokens.
func ValidQuality(text string, minWords int) bool {
	cleaned := Clean(text)
	return len([]rune(cleaned)) >= 3 && CountWords(cleaned) >= minWords
}

// Extractor computes TextFeatures against a lexicon's technical-term patterns.
type Extractor struct {
	lex *lexicon.Lexicon
}

// New returns an Extractor bound to lex.
func New(lex *lexicon.Lexicon) *Extractor {
	return &Extractor{lex: lex}
}

// Extract computes the full feature view for text. Empty or nil-ish input
// yields zero counts, never an error.
func (e *Extractor) Extract(text string) models.TextFeatures {
	tokens := Tokenize(text)
	return models.TextFeatures{
		Tokens:            tokens,
		WordCount:         len(tokens),
		SentenceCount:     CountSentences(text),
		AvgWordLength:     AvgWordLength(text),
		HasNumbers:        HasNumbers(text),
		NumberCount:       CountNumbers(text),
		HasPunctuation:    HasPunctuation(text),
		StartsCapitalized: StartsCapitalized(text),
		TechnicalTerms:    e.TechnicalTerms(text),
	}
}

// TechnicalTerms returns every technical-term occurrence in text, in pattern
// order.
func (e *Extractor) TechnicalTerms(text string) []string {
	var found []string
	for _, re := range e.lex.TechnicalTermRegexps() {
		found = append(found, re.FindAllString(text, -1)...)
	}
	return found
}
