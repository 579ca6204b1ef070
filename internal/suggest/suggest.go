// Package suggest maps low sub-scores and detected deficiencies to canned
// improvement messages for reviewers.
package suggest

import (
	"strings"

	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/models"
)

// Separator joins suggestions into the flat user-facing field.
const Separator = " | "

// Metric scores below this threshold trigger the matching suggestion.
const metricThreshold = 0.5

// Word-count bounds for the length checks.
const (
	minIdealWords = 10
	maxIdealWords = 50
)

// congratsThreshold is the overall score at or above which an otherwise
// suggestion-free result gets the congratulatory message instead of the
// generic one.
const congratsThreshold = 0.8

// ForResult returns the ordered suggestion list for a scored record. It never
// returns an empty list: when nothing specific applies, a single closing
// message is emitted based on the overall score.
func ForResult(m models.MetricScores, features models.TextFeatures, overall float64) []string {
	var suggestions []string

	if m.Clarity < metricThreshold {
		suggestions = append(suggestions, "Melhore a clareza: use frases mais simples e diretas")
	}
	if m.Specificity < metricThreshold {
		suggestions = append(suggestions, "Adicione mais detalhes: números, datas e termos específicos")
	}
	if m.Completeness < metricThreshold {
		suggestions = append(suggestions, "Expanda o conteúdo: inclua mais informações sobre o 'como', 'quando' e 'onde'")
	}
	if m.Structure < metricThreshold {
		suggestions = append(suggestions, "Melhore a estrutura: use conectores e organize melhor as ideias")
	}
	if m.SMARTCriteria < metricThreshold {
		suggestions = append(suggestions, "Aplique critérios SMART: torne os objetivos mais específicos, mensuráveis e com prazo")
	}

	if features.WordCount < minIdealWords {
		suggestions = append(suggestions, "Texto muito curto: expanda o plano para pelo menos 10 palavras")
	}
	if features.WordCount > maxIdealWords {
		suggestions = append(suggestions, "Texto muito longo: seja mais conciso e objetivo")
	}
	if !features.HasNumbers {
		suggestions = append(suggestions, "Inclua números e prazos específicos para facilitar a medição")
	}

	if len(suggestions) == 0 {
		if overall >= congratsThreshold {
			suggestions = append(suggestions, "PDI de excelente qualidade! Continue mantendo este padrão.")
		} else {
			suggestions = append(suggestions, "Revise o PDI para maior clareza e especificidade.")
		}
	}

	return suggestions
}

// Join flattens a suggestion list into the user-facing field.
func Join(suggestions []string) string {
	return strings.Join(suggestions, Separator)
}
