package enhance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/lexicon"
	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/models"
)

func TestNoop(t *testing.T) {
	original := &models.OverallResult{OverallScore: 0.42}

	got, err := Noop{}.Enhance(context.Background(), models.AnalysisInput{}, original)
	require.NoError(t, err)
	require.Same(t, original, got)
}

func TestNewAnthropic_NoKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	require.Nil(t, NewAnthropic(lexicon.Default()))
}

func TestNilAnthropic_IsIdentity(t *testing.T) {
	var a *Anthropic
	original := &models.OverallResult{OverallScore: 0.42}

	got, err := a.Enhance(context.Background(), models.AnalysisInput{}, original)
	require.NoError(t, err)
	require.Same(t, original, got)
}

func TestExtractJSON(t *testing.T) {
	t.Run("bare object", func(t *testing.T) {
		require.Equal(t, `{"enhanced_overall_score": 0.7}`, extractJSON(`{"enhanced_overall_score": 0.7}`))
	})

	t.Run("fenced block", func(t *testing.T) {
		in := "Aqui está a avaliação:\n```json\n{\"enhanced_overall_score\": 0.7}\n```\n"
		require.Equal(t, `{"enhanced_overall_score": 0.7}`, extractJSON(in))
	})

	t.Run("object embedded in prose", func(t *testing.T) {
		in := `Minha resposta: {"enhanced_overall_score": 0.7, "rationale": "bom"} fim.`
		require.Equal(t, `{"enhanced_overall_score": 0.7, "rationale": "bom"}`, extractJSON(in))
	})

	t.Run("no object passes through", func(t *testing.T) {
		require.Equal(t, "sem json", extractJSON(" sem json "))
	})
}
