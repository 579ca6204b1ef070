package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/analysis"
	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/ingest"
	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/reporting"
)

var (
	batchOutput      string
	batchLexicon     string
	batchSeparator   string
	batchConcurrency int
	batchEnhance     bool
)

func newBatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <input.csv>",
		Short: "Score every record in a delimited export file",
		Long: `Score every record in a delimited export file.

Each output row carries the input columns plus the scoring columns, in
input order. A summary sidecar (<output>_resumo.json) is written next to
the results file.`,
		Args: cobra.ExactArgs(1),
		RunE: batchCommandE,
	}

	cmd.Flags().StringVarP(&batchOutput, "output", "o", "", "Output CSV file (default: <input>_analisado.csv)")
	cmd.Flags().StringVar(&batchLexicon, "lexicon", "", "Lexicon override YAML file")
	cmd.Flags().StringVar(&batchSeparator, "separator", ";", "Field separator of the input file")
	cmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Number of records analyzed in parallel (default: 4)")
	cmd.Flags().BoolVar(&batchEnhance, "enhance", false, "Apply the LLM enhancement pass (requires ANTHROPIC_API_KEY)")

	return cmd
}

func batchCommandE(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	sep, err := parseSeparator(batchSeparator)
	if err != nil {
		return err
	}

	lex, err := loadLexicon(batchLexicon)
	if err != nil {
		return err
	}

	records, fields, err := ingest.ReadFile(inputPath, ingest.Options{Separator: sep})
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return &ValidationError{Message: fmt.Sprintf("%s contains no data rows", inputPath)}
	}

	opts := enhanceOption(lex, batchEnhance)
	if batchConcurrency > 0 {
		opts = append(opts, analysis.WithConcurrency(batchConcurrency))
	}
	analyzer := analysis.New(lex, opts...)

	results, summary, err := analyzer.AnalyzeBatch(cmd.Context(), records)
	if err != nil {
		return fmt.Errorf("batch analysis: %w", err)
	}

	outputPath := batchOutput
	if outputPath == "" {
		outputPath = defaultOutputPath(inputPath)
	}
	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()

	if err := reporting.WriteResultsCSV(out, fields, records, results, sep); err != nil {
		return err
	}
	summaryPath, err := reporting.WriteSummaryFile(outputPath, summary)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), reporting.RenderSummary(summary))
	fmt.Fprintf(cmd.OutOrStdout(), "Resultados: %s\nResumo:     %s\n", outputPath, summaryPath)
	return nil
}

func parseSeparator(s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, &ValidationError{Message: fmt.Sprintf("separator must be a single character, got %q", s)}
	}
	return runes[0], nil
}

func defaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + "_analisado.csv"
}
