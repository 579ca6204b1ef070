package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/analysis"
	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/enhance"
	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/lexicon"
	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/models"
)

var (
	analyzeObjective string
	analyzeActions   string
	analyzeActivity  string
	analyzeLexicon   string
	analyzeFormat    string
	analyzeEnhance   bool
)

func newAnalyzeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score a single development-plan record",
		Long: `Score a single record given as flags.

The objective is the development goal text; actions and activity are
optional complements. Output defaults to a human-readable report.`,
		Args: cobra.NoArgs,
		RunE: analyzeCommandE,
	}

	cmd.Flags().StringVar(&analyzeObjective, "objective", "", "Development objective text")
	cmd.Flags().StringVar(&analyzeActions, "actions", "", "Planned actions text")
	cmd.Flags().StringVar(&analyzeActivity, "activity", "", "Learning activity text")
	cmd.Flags().StringVar(&analyzeLexicon, "lexicon", "", "Lexicon override YAML file")
	cmd.Flags().StringVar(&analyzeFormat, "format", "text", "Output format: text, json, yaml")
	cmd.Flags().BoolVar(&analyzeEnhance, "enhance", false, "Apply the LLM enhancement pass (requires ANTHROPIC_API_KEY)")
	_ = cmd.MarkFlagRequired("objective")

	return cmd
}

func analyzeCommandE(cmd *cobra.Command, args []string) error {
	lex, err := loadLexicon(analyzeLexicon)
	if err != nil {
		return err
	}

	analyzer := analysis.New(lex, enhanceOption(lex, analyzeEnhance)...)
	result := analyzer.AnalyzeRecord(cmd.Context(), map[string]string{
		models.FieldObjective:        analyzeObjective,
		models.FieldActions:          analyzeActions,
		models.FieldLearningActivity: analyzeActivity,
	})

	switch analyzeFormat {
	case "json":
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	case "yaml":
		out, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
	case "text":
		printTextResult(cmd, result)
	default:
		return fmt.Errorf("unknown format %q: must be text, json, or yaml", analyzeFormat)
	}
	return nil
}

func printTextResult(cmd *cobra.Command, result *models.OverallResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, result.Explanation)
	fmt.Fprintf(out, "\nNível de qualidade: %s\n", result.QualityLevel)
	fmt.Fprintf(out, "Tipo de habilidade: %s (confiança %.2f)\n", result.Skill.Type, result.Skill.Confidence)
	if len(result.Suggestions) > 0 {
		fmt.Fprintln(out, "\nSUGESTÕES:")
		for _, s := range result.Suggestions {
			fmt.Fprintf(out, "  - %s\n", s)
		}
	}
}

// loadLexicon resolves the lexicon flag: empty means built-in defaults.
// Override failures are validation errors, not runtime errors.
func loadLexicon(path string) (*lexicon.Lexicon, error) {
	if path == "" {
		return lexicon.Default(), nil
	}
	lex, err := lexicon.Load(path)
	if err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid lexicon %s: %v", path, err)}
	}
	return lex, nil
}

// enhanceOption builds the analyzer options for the enhancement flag. The
// constructor returns nil without an API key; the analyzer then keeps the
// identity behavior.
func enhanceOption(lex *lexicon.Lexicon, enabled bool) []analysis.Option {
	if !enabled {
		return nil
	}
	enhancer := enhance.NewAnthropic(lex)
	if enhancer == nil {
		slog.Warn("ANTHROPIC_API_KEY not set, skipping enhancement pass")
		return nil
	}
	return []analysis.Option{analysis.WithEnhancer(enhancer)}
}
