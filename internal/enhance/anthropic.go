package enhance

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/lexicon"
	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/models"
	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/scoring"
)

const anthropicModel = anthropic.ModelClaude3_5Haiku20241022

// Anthropic asks a language model whether the heuristic score undervalues the
// plan and applies the boost when it does. The heuristic score is the floor:
// the model can raise it, never lower it.
type Anthropic struct {
	client anthropic.Client
	lex    *lexicon.Lexicon
}

// NewAnthropic builds the enhancer from the ANTHROPIC_API_KEY environment
// variable. Returns nil when the key is absent; callers treat nil as
// "enhancement unavailable" and fall back to the identity strategy.
func NewAnthropic(lex *lexicon.Lexicon) *Anthropic {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil
	}
	return &Anthropic{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		lex:    lex,
	}
}

type enhanceResponse struct {
	EnhancedOverallScore float64 `json:"enhanced_overall_score"`
	Rationale            string  `json:"rationale"`
}

// Enhance sends the plan text and the computed scores to the model and adopts
// a higher overall score if the model justifies one. The tier is re-derived
// from the boosted score.
func (a *Anthropic) Enhance(ctx context.Context, input models.AnalysisInput, result *models.OverallResult) (*models.OverallResult, error) {
	if a == nil {
		return result, nil
	}

	prompt := buildPrompt(input, result)

	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropicModel,
		MaxTokens: 512,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return result, fmt.Errorf("anthropic request: %w", err)
	}

	var responseText string
	for _, block := range resp.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}

	var parsed enhanceResponse
	if err := json.Unmarshal([]byte(extractJSON(responseText)), &parsed); err != nil {
		return result, fmt.Errorf("parsing enhancement response: %w", err)
	}

	if parsed.EnhancedOverallScore <= result.OverallScore || parsed.EnhancedOverallScore > 1 {
		return result, nil
	}

	boosted := *result
	boosted.OverallScore = parsed.EnhancedOverallScore
	boosted.QualityLevel = scoring.LevelFor(a.lex, boosted.OverallScore)
	boosted.Enhanced = true
	return &boosted, nil
}

func buildPrompt(input models.AnalysisInput, result *models.OverallResult) string {
	return fmt.Sprintf(`Você avalia Planos de Desenvolvimento Individual (PDI) em português.

Objetivo: %s
Ações planejadas: %s

Uma análise heurística atribuiu nota geral %.2f (escala 0 a 1) com sub-notas:
clareza %.2f, especificidade %.2f, completude %.2f, estrutura %.2f, SMART %.2f.

Se o texto demonstra qualidade que as heurísticas subestimaram, responda com
uma nota geral maior; caso contrário repita a nota atual. Responda APENAS com
JSON neste formato:
{"enhanced_overall_score": 0.0, "rationale": "..."}`,
		input.Objective, input.Actions,
		result.OverallScore,
		result.Metrics.Clarity, result.Metrics.Specificity, result.Metrics.Completeness,
		result.Metrics.Structure, result.Metrics.SMARTCriteria)
}

// extractJSON unwraps a JSON object from a possibly fenced model response.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "{") {
		return s
	}
	if idx := strings.Index(s, "```json"); idx != -1 {
		start := idx + len("```json")
		if end := strings.Index(s[start:], "```"); end != -1 {
			return strings.TrimSpace(s[start : start+end])
		}
	}
	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end > start {
			return s[start : end+1]
		}
	}
	return s
}
