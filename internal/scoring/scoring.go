// Package scoring combines the metric sub-scores into the overall score and
// quality tier, and renders the structured explanation of how the score was
// derived.
package scoring

import (
	"math"

	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/lexicon"
	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/models"
)

// dampening is the maximum share of clarity/specificity/completeness the
// negative-language penalty can remove. The penalty is applied as a
// multiplicative factor before the weighted sum, which keeps the overall score
// monotonic in every individual metric.
const dampening = 0.3

// Aggregate computes the weighted overall score and its quality tier.
func Aggregate(lex *lexicon.Lexicon, m models.MetricScores) (float64, models.QualityLevel) {
	overall := weightedSum(lex, damped(m))
	return overall, LevelFor(lex, overall)
}

// LevelFor derives the quality tier from an overall score using the lexicon's
// thresholds. Boundaries are inclusive on the upper tier: a score exactly at
// the High threshold is "Alta".
func LevelFor(lex *lexicon.Lexicon, overall float64) models.QualityLevel {
	switch {
	case overall >= lex.Thresholds.High:
		return models.QualityHigh
	case overall >= lex.Thresholds.Medium:
		return models.QualityMedium
	default:
		return models.QualityLow
	}
}

// damped returns a copy of m with the negative-impact dampening applied to the
// three content metrics. Structure and SMART are left untouched; hedging
// language reads as a content problem, not a form problem.
func damped(m models.MetricScores) models.MetricScores {
	if m.NegativeImpact <= 0 {
		return m
	}
	factor := 1 - dampening*m.NegativeImpact
	m.Clarity *= factor
	m.Specificity *= factor
	m.Completeness *= factor
	return m
}

func weightedSum(lex *lexicon.Lexicon, m models.MetricScores) float64 {
	w := lex.Weights
	sum := m.Clarity*w.Clarity +
		m.Specificity*w.Specificity +
		m.Completeness*w.Completeness +
		m.Structure*w.Structure +
		m.SMARTCriteria*w.SMARTCriteria
	return math.Max(0, math.Min(1, sum))
}
