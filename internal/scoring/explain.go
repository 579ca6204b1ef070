package scoring

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/lexicon"
	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/models"
)

// reportPrinter formats the numbers in the explanation for Brazilian readers
// (comma decimal separator).
var reportPrinter = message.NewPrinter(language.BrazilianPortuguese)

const (
	heavyRule = "============================================================"
	lightRule = "----------------------------------------"
	labelPad  = 16
)

type criterion struct {
	label  string
	score  float64
	weight float64
}

// Explain renders the deterministic plain-text report of how a score was
// computed: one line per criterion with its weight, contributed points on the
// 0-100 scale and raw base score, a penalty section when hedging language was
// detected, a qualitative band per criterion, and the overall band.
func Explain(lex *lexicon.Lexicon, m models.MetricScores) string {
	overall, _ := Aggregate(lex, m)
	finalPoints := overall * 100

	w := lex.Weights
	criteria := []criterion{
		{"Clareza", m.Clarity, w.Clarity},
		{"Especificidade", m.Specificity, w.Specificity},
		{"Completude", m.Completeness, w.Completeness},
		{"Estrutura", m.Structure, w.Structure},
		{"Critérios SMART", m.SMARTCriteria, w.SMARTCriteria},
	}

	rawPoints := 0.0
	for _, c := range criteria {
		rawPoints += c.score * c.weight * 100
	}

	var b strings.Builder
	b.WriteString(heavyRule + "\n")
	b.WriteString("DETALHAMENTO DA AVALIAÇÃO\n")
	b.WriteString(heavyRule + "\n\n")

	reportPrinter.Fprintf(&b, "NOTA FINAL: %.1f/100\n\n", finalPoints)

	b.WriteString("BREAKDOWN POR CRITÉRIO:\n")
	b.WriteString(lightRule + "\n")
	for _, c := range criteria {
		reportPrinter.Fprintf(&b, "- %s (%2.0f%%): %5.1f pontos (base: %.1f/100)\n",
			runewidth.FillRight(c.label, labelPad), c.weight*100, c.score*c.weight*100, c.score*100)
	}

	if m.NegativeImpact > 0 {
		b.WriteString("\nPENALIDADES:\n")
		reportPrinter.Fprintf(&b, "- Indicadores negativos: -%.1f pontos\n", rawPoints-finalPoints)
	}

	b.WriteString("\nANÁLISE DETALHADA:\n")
	b.WriteString(lightRule + "\n")
	b.WriteString(criterionBand("CLAREZA", m.Clarity,
		"Texto muito claro e compreensível",
		"Texto claro com pequenos ajustes possíveis",
		"Texto necessita melhorar clareza",
		"Texto confuso, necessita reescrita"))
	b.WriteString(criterionBand("ESPECIFICIDADE", m.Specificity,
		"Muito específico e detalhado",
		"Razoavelmente específico",
		"Falta mais detalhes específicos",
		"Muito vago, adicionar detalhes"))
	b.WriteString(criterionBand("COMPLETUDE", m.Completeness,
		"Informações muito completas",
		"Informações adequadas",
		"Faltam algumas informações",
		"Informações insuficientes"))
	b.WriteString(criterionBand("ESTRUTURA", m.Structure,
		"Muito bem estruturado",
		"Bem estruturado",
		"Estrutura pode melhorar",
		"Estrutura inadequada"))
	b.WriteString(criterionBand("SMART", m.SMARTCriteria,
		"Atende muito bem aos critérios SMART",
		"Atende razoavelmente aos critérios SMART",
		"Alguns critérios SMART presentes",
		"Não atende aos critérios SMART"))

	b.WriteString("\nCLASSIFICAÇÃO GERAL:\n")
	b.WriteString(overallBand(finalPoints) + "\n")
	b.WriteString(heavyRule + "\n")

	return b.String()
}

func criterionBand(name string, score float64, excellent, good, fair, poor string) string {
	switch {
	case score >= 0.8:
		return name + " (EXCELENTE): " + excellent + "\n"
	case score >= 0.6:
		return name + " (BOA): " + good + "\n"
	case score >= 0.4:
		return name + " (REGULAR): " + fair + "\n"
	default:
		return name + " (BAIXA): " + poor + "\n"
	}
}

func overallBand(points float64) string {
	switch {
	case points >= 80:
		return "EXCELENTE - PDI de alta qualidade"
	case points >= 60:
		return "BOM - PDI de boa qualidade"
	case points >= 40:
		return "REGULAR - PDI necessita melhorias"
	default:
		return "INADEQUADO - PDI necessita reescrita"
	}
}
