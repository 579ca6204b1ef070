package suggest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/models"
)

func TestForResult(t *testing.T) {
	t.Run("weak record collects every applicable suggestion", func(t *testing.T) {
		m := models.MetricScores{Clarity: 0.2, Specificity: 0.1, Completeness: 0.1, Structure: 0.3, SMARTCriteria: 0}
		f := models.TextFeatures{WordCount: 4}

		got := ForResult(m, f, 0.15)
		require.Len(t, got, 7)
		require.Contains(t, got[0], "clareza")
		require.Contains(t, strings.Join(got, " "), "Texto muito curto")
		require.Contains(t, strings.Join(got, " "), "números e prazos")
	})

	t.Run("scores at the threshold do not trigger", func(t *testing.T) {
		m := models.MetricScores{Clarity: 0.5, Specificity: 0.5, Completeness: 0.5, Structure: 0.5, SMARTCriteria: 0.5}
		f := models.TextFeatures{WordCount: 20, HasNumbers: true}

		got := ForResult(m, f, 0.5)
		require.Equal(t, []string{"Revise o PDI para maior clareza e especificidade."}, got)
	})

	t.Run("excellent record gets the congratulation", func(t *testing.T) {
		m := models.MetricScores{Clarity: 1, Specificity: 0.9, Completeness: 0.9, Structure: 0.8, SMARTCriteria: 0.6}
		f := models.TextFeatures{WordCount: 30, HasNumbers: true}

		got := ForResult(m, f, 0.85)
		require.Len(t, got, 1)
		require.Contains(t, got[0], "excelente qualidade")
	})

	t.Run("overlong text triggers the concision suggestion", func(t *testing.T) {
		m := models.MetricScores{Clarity: 0.8, Specificity: 0.8, Completeness: 0.8, Structure: 0.8, SMARTCriteria: 0.8}
		f := models.TextFeatures{WordCount: 80, HasNumbers: true}

		got := ForResult(m, f, 0.8)
		require.Equal(t, []string{"Texto muito longo: seja mais conciso e objetivo"}, got)
	})
}

func TestJoin(t *testing.T) {
	require.Equal(t, "", Join(nil))
	require.Equal(t, "a", Join([]string{"a"}))
	require.Equal(t, "a | b", Join([]string{"a", "b"}))
}
