// Package skills classifies a development objective as a hard (technical)
// or soft (behavioral) skill from keyword and pattern evidence.
package skills

import (
	"math"
	"regexp"
	"strings"

	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/lexicon"
	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/models"
)

var durationRE = regexp.MustCompile(`\d+\s*(?:horas?|dias?|semanas?)`)

// Caps on how many matched keywords/patterns are reported back to the caller.
const (
	maxReportedKeywords = 5
	maxReportedPatterns = 3
)

// Classifier scores text against the lexicon's hard- and soft-skill evidence
// sets. Safe for concurrent use.
type Classifier struct {
	lex *lexicon.Lexicon
}

// New returns a Classifier bound to lex.
func New(lex *lexicon.Lexicon) *Classifier {
	return &Classifier{lex: lex}
}

// Classify decides the skill category for an objective plus its planned
// actions. The decision depends only on the lower-cased concatenation of the
// two fields. An empty objective short-circuits to Unknown with zero
// confidence.
func (c *Classifier) Classify(objective, actions string) models.SkillResult {
	if strings.TrimSpace(objective) == "" {
		return models.SkillResult{Type: models.SkillUnknown}
	}

	text := strings.ToLower(strings.TrimSpace(objective + " " + actions))

	hard := c.hardScore(text)
	soft := c.softScore(text)

	result := models.SkillResult{
		HardScore:       hard,
		SoftScore:       soft,
		MatchedKeywords: c.matchedEvidence(text),
	}

	// The ladder is ordered: hybrid first, then the confident single
	// categories, then the weak-evidence fallback.
	switch {
	case hard >= 0.6 && soft >= 0.6:
		result.Type = models.SkillHybrid
		result.Confidence = math.Max(hard, soft)
	case hard >= 0.4 && hard > soft:
		result.Type = models.SkillHard
		result.Confidence = hard
	case soft >= 0.4 && soft > hard:
		result.Type = models.SkillSoft
		result.Confidence = soft
	case hard >= 0.3 || soft >= 0.3:
		if hard > soft {
			result.Type = models.SkillHard
			result.Confidence = hard
		} else {
			result.Type = models.SkillSoft
			result.Confidence = soft
		}
	default:
		result.Type = models.SkillUnknown
		result.Confidence = math.Max(hard, soft)
	}

	return result
}

func (c *Classifier) hardScore(text string) float64 {
	score := 0.0

	if n := countContains(text, c.lex.HardSkillKeywords); n > 0 {
		score += math.Min(float64(n)*0.25, 0.7)
	}

	patterns := 0
	for _, re := range c.lex.TechnicalPatternRegexps() {
		if re.MatchString(text) {
			patterns++
		}
	}
	if patterns > 0 {
		score += math.Min(float64(patterns)*0.3, 0.6)
	}

	if n := countContains(text, c.lex.TechnicalIndicators); n > 0 {
		score += math.Min(float64(n)*0.15, 0.4)
	}

	if durationRE.MatchString(text) {
		score += 0.2
	}

	return math.Min(score, 1.0)
}

func (c *Classifier) softScore(text string) float64 {
	score := 0.0

	if n := countContains(text, c.lex.SoftSkillKeywords); n > 0 {
		score += math.Min(float64(n)*0.3, 0.7)
	}

	if n := countContains(text, c.lex.BehavioralIndicators); n > 0 {
		score += math.Min(float64(n)*0.2, 0.5)
	}

	if n := countContains(text, c.lex.SoftSkillVerbs); n > 0 {
		score += math.Min(float64(n)*0.25, 0.4)
	}

	return math.Min(score, 1.0)
}

// matchedEvidence returns the keywords and pattern matches that drove the
// scores, capped so result records stay small. Order is deterministic:
// hard keywords, then soft keywords, then pattern matches, each in lexicon
// order.
func (c *Classifier) matchedEvidence(text string) []string {
	var found []string
	found = append(found, firstContains(text, c.lex.HardSkillKeywords, maxReportedKeywords)...)
	found = append(found, firstContains(text, c.lex.SoftSkillKeywords, maxReportedKeywords)...)

	patterns := 0
	for _, re := range c.lex.TechnicalPatternRegexps() {
		if patterns >= maxReportedPatterns {
			break
		}
		if m := re.FindString(text); m != "" {
			found = append(found, m)
			patterns++
		}
	}
	return found
}

func countContains(text string, needles []string) int {
	n := 0
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			n++
		}
	}
	return n
}

func firstContains(text string, needles []string, limit int) []string {
	var found []string
	for _, needle := range needles {
		if len(found) >= limit {
			break
		}
		if strings.Contains(text, needle) {
			found = append(found, needle)
		}
	}
	return found
}
