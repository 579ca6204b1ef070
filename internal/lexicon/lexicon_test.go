package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	lex := Default()
	require.NoError(t, lex.Validate())

	require.InDelta(t, 1.0, lex.Weights.Clarity+lex.Weights.Specificity+
		lex.Weights.Completeness+lex.Weights.Structure+lex.Weights.SMARTCriteria, 1e-9)
	require.Equal(t, 0.3, lex.Thresholds.Medium)
	require.Equal(t, 0.6, lex.Thresholds.High)
	require.Equal(t, 3, lex.MinWords)
	require.Len(t, lex.SMARTKeywords.Categories(), 5)
	require.NotEmpty(t, lex.TechnicalTermRegexps())
	require.NotEmpty(t, lex.TechnicalPatternRegexps())
}

func TestLoadBytes(t *testing.T) {
	t.Run("empty document selects defaults", func(t *testing.T) {
		lex, err := LoadBytes(nil)
		require.NoError(t, err)
		require.Equal(t, Default().Thresholds, lex.Thresholds)
		require.Equal(t, Default().MinWords, lex.MinWords)
	})

	t.Run("partial override keeps remaining defaults", func(t *testing.T) {
		lex, err := LoadBytes([]byte(`
thresholds:
  medium: 0.4
  high: 0.7
min_words: 5
`))
		require.NoError(t, err)
		require.Equal(t, 0.4, lex.Thresholds.Medium)
		require.Equal(t, 0.7, lex.Thresholds.High)
		require.Equal(t, 5, lex.MinWords)
		require.NotEmpty(t, lex.HardSkillKeywords)
		require.Equal(t, Default().Weights, lex.Weights)
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		_, err := LoadBytes([]byte("pesos:\n  clareza: 0.5\n"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid lexicon override")
	})

	t.Run("descending thresholds are rejected", func(t *testing.T) {
		_, err := LoadBytes([]byte("thresholds:\n  medium: 0.7\n  high: 0.5\n"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "ascending")
	})

	t.Run("out-of-range smart increment is rejected", func(t *testing.T) {
		_, err := LoadBytes([]byte("smart_increment: 0.5\n"))
		require.Error(t, err)
	})

	t.Run("uncompilable pattern is rejected", func(t *testing.T) {
		_, err := LoadBytes([]byte("technical_patterns:\n  - '('\n"))
		require.Error(t, err)
	})

	t.Run("malformed yaml is rejected", func(t *testing.T) {
		_, err := LoadBytes([]byte("thresholds: [unclosed"))
		require.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lexicon.yaml")
		require.NoError(t, os.WriteFile(path, []byte("min_words: 2\n"), 0o600))

		lex, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 2, lex.MinWords)
	})
}

func TestValidateOverride(t *testing.T) {
	t.Run("reports every violation", func(t *testing.T) {
		errs := ValidateOverride(map[string]any{
			"min_words":       0,
			"smart_increment": 0.9,
		})
		require.NotEmpty(t, errs)
		require.GreaterOrEqual(t, len(errs), 2)
	})

	t.Run("accepts a well-formed override", func(t *testing.T) {
		errs := ValidateOverride(map[string]any{
			"connectives": []any{"e", "mas"},
		})
		require.Empty(t, errs)
	})
}
