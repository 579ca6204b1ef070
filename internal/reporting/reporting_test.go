package reporting

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/models"
)

func sampleResults() ([]map[string]string, []*models.OverallResult) {
	records := []map[string]string{
		{"matricula": "1001", models.FieldObjective: "Obter certificação AWS"},
		{"matricula": "1002", models.FieldObjective: "Melhorar habilidades"},
	}
	results := []*models.OverallResult{
		{
			OverallScore:   0.7025,
			QualityLevel:   models.QualityHigh,
			Metrics:        models.MetricScores{Clarity: 1.0, Specificity: 0.7},
			Skill:          models.SkillResult{Type: models.SkillHard},
			SuggestionText: "PDI de excelente qualidade! Continue mantendo este padrão.",
		},
		{
			OverallScore:   0.18,
			QualityLevel:   models.QualityLow,
			Skill:          models.SkillResult{Type: models.SkillSoft},
			SuggestionText: "Melhore a clareza: use frases mais simples e diretas",
		},
	}
	return records, results
}

func TestWriteResultsCSV(t *testing.T) {
	records, results := sampleResults()
	fieldOrder := []string{"matricula", models.FieldObjective}

	var buf bytes.Buffer
	require.NoError(t, WriteResultsCSV(&buf, fieldOrder, records, results, ';'))

	r := csv.NewReader(&buf)
	r.Comma = ';'
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	header := rows[0]
	require.Equal(t, "matricula", header[0])
	require.Equal(t, "objective", header[1])
	require.Equal(t, "nota_geral", header[2])
	require.Contains(t, header, "sugestoes")

	require.Equal(t, "1001", rows[1][0])
	require.Equal(t, "0.703", rows[1][2])
	require.Equal(t, "Alta", rows[1][3])
	require.Equal(t, "Hard Skill", rows[1][4])
	require.Equal(t, "Baixa", rows[2][3])
}

func TestWriteResultsCSV_LengthMismatch(t *testing.T) {
	records, results := sampleResults()
	var buf bytes.Buffer
	err := WriteResultsCSV(&buf, nil, records, results[:1], ';')
	require.Error(t, err)
	require.Contains(t, err.Error(), "mismatch")
}

func TestSummaryPath(t *testing.T) {
	require.Equal(t, "resultados_resumo.json", SummaryPath("resultados.csv"))
	require.Equal(t, filepath.Join("out", "pdi_resumo.json"), SummaryPath(filepath.Join("out", "pdi.csv")))
	require.Equal(t, "dados_resumo.json", SummaryPath("dados"))
}

func TestWriteSummaryFile(t *testing.T) {
	summary := &models.BatchSummary{
		TotalRecords: 2,
		TierCounts: map[models.QualityLevel]int{
			models.QualityHigh:   1,
			models.QualityMedium: 0,
			models.QualityLow:    1,
		},
		TierPercent: map[models.QualityLevel]float64{
			models.QualityHigh: 50,
			models.QualityLow:  50,
		},
		AverageScore: 0.44125,
	}

	resultsPath := filepath.Join(t.TempDir(), "resultados.csv")
	path, err := WriteSummaryFile(resultsPath, summary)
	require.NoError(t, err)
	require.Equal(t, SummaryPath(resultsPath), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded models.BatchSummary
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, summary.TotalRecords, decoded.TotalRecords)
	require.InDelta(t, summary.AverageScore, decoded.AverageScore, 1e-9)
}

func TestRenderSummary(t *testing.T) {
	summary := &models.BatchSummary{
		TotalRecords:  4,
		FailedRecords: 1,
		TierCounts: map[models.QualityLevel]int{
			models.QualityHigh:   2,
			models.QualityMedium: 1,
			models.QualityLow:    1,
		},
		TierPercent: map[models.QualityLevel]float64{
			models.QualityHigh:   50,
			models.QualityMedium: 25,
			models.QualityLow:    25,
		},
		AverageScore: 0.5,
	}

	out := RenderSummary(summary)
	require.Contains(t, out, "RESUMO DA ANÁLISE")
	require.Contains(t, out, "Registros analisados: 4")
	require.Contains(t, out, "Registros com falha:  1")
	require.Contains(t, out, "Alta:")
	require.Contains(t, out, "Baixa:")

	// Brazilian locale uses a decimal comma.
	require.Contains(t, out, "50,0%")
	require.Contains(t, out, "Nota média:           50,0/100")
}

func TestRenderSummary_NoFailures(t *testing.T) {
	summary := &models.BatchSummary{
		TotalRecords: 1,
		TierCounts:   map[models.QualityLevel]int{models.QualityHigh: 1},
		TierPercent:  map[models.QualityLevel]float64{models.QualityHigh: 100},
	}
	require.NotContains(t, RenderSummary(summary), "Registros com falha")
}
