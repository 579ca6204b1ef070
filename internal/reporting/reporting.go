// Package reporting writes batch analysis output: a per-record results file,
// a machine-readable summary sidecar, and a human-readable console summary.
package reporting

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/models"
)

// summaryPrinter formats numbers with pt-BR separators, matching the locale
// of the report text.
var summaryPrinter = message.NewPrinter(language.BrazilianPortuguese)

// resultColumns are appended to each input record's columns in the output
// file, in this order.
var resultColumns = []string{
	"nota_geral",
	"nivel_qualidade",
	"tipo_habilidade",
	"clareza",
	"especificidade",
	"completude",
	"estrutura",
	"criterios_smart",
	"penalidade",
	"sugestoes",
}

// WriteResultsCSV writes one row per analyzed record: the original record
// fields (in fieldOrder) followed by the scoring columns. records and results
// must be index-aligned.
func WriteResultsCSV(w io.Writer, fieldOrder []string, records []map[string]string, results []*models.OverallResult, sep rune) error {
	if len(records) != len(results) {
		return fmt.Errorf("records/results length mismatch: %d vs %d", len(records), len(results))
	}

	cw := csv.NewWriter(w)
	if sep != 0 {
		cw.Comma = sep
	}

	header := append(append([]string{}, fieldOrder...), resultColumns...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing results header: %w", err)
	}

	for i, record := range records {
		res := results[i]
		row := make([]string, 0, len(header))
		for _, field := range fieldOrder {
			row = append(row, record[field])
		}
		row = append(row,
			formatScore(res.OverallScore),
			res.QualityLevel.String(),
			res.Skill.Type.String(),
			formatScore(res.Metrics.Clarity),
			formatScore(res.Metrics.Specificity),
			formatScore(res.Metrics.Completeness),
			formatScore(res.Metrics.Structure),
			formatScore(res.Metrics.SMARTCriteria),
			formatScore(res.Metrics.NegativeImpact),
			res.SuggestionText,
		)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing result row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing results: %w", err)
	}
	return nil
}

// SummaryPath derives the summary sidecar path for a results file:
// "resultados.csv" becomes "resultados_resumo.json".
func SummaryPath(resultsPath string) string {
	ext := filepath.Ext(resultsPath)
	return strings.TrimSuffix(resultsPath, ext) + "_resumo.json"
}

// WriteSummaryJSON writes the batch summary as indented JSON.
func WriteSummaryJSON(w io.Writer, summary *models.BatchSummary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	return nil
}

// WriteSummaryFile writes the summary sidecar next to resultsPath and returns
// the path written.
func WriteSummaryFile(resultsPath string, summary *models.BatchSummary) (string, error) {
	path := SummaryPath(resultsPath)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating summary file: %w", err)
	}
	defer f.Close()
	if err := WriteSummaryJSON(f, summary); err != nil {
		return "", err
	}
	return path, nil
}

// RenderSummary formats the batch summary for console output, in the order
// Alta, Média, Baixa.
func RenderSummary(summary *models.BatchSummary) string {
	var b strings.Builder

	fmt.Fprintln(&b, strings.Repeat("=", 50))
	fmt.Fprintln(&b, "RESUMO DA ANÁLISE")
	fmt.Fprintln(&b, strings.Repeat("=", 50))
	summaryPrinter.Fprintf(&b, "Registros analisados: %d\n", summary.TotalRecords)
	if summary.FailedRecords > 0 {
		summaryPrinter.Fprintf(&b, "Registros com falha:  %d\n", summary.FailedRecords)
	}
	summaryPrinter.Fprintf(&b, "Nota média:           %.1f/100\n", summary.AverageScore*100)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "DISTRIBUIÇÃO POR NÍVEL:")
	for _, level := range []models.QualityLevel{models.QualityHigh, models.QualityMedium, models.QualityLow} {
		summaryPrinter.Fprintf(&b, "  %-6s %4d (%.1f%%)\n",
			level.String()+":", summary.TierCounts[level], summary.TierPercent[level])
	}

	return b.String()
}

func formatScore(s float64) string {
	return fmt.Sprintf("%.3f", s)
}
