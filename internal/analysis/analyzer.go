// Package analysis orchestrates the scoring pipeline: feature extraction,
// metric calculation, aggregation, skill classification, suggestion
// generation, and the optional enhancement pass, for single records and for
// batches.
package analysis

import (
	"context"
	"log/slog"

	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/enhance"
	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/lexicon"
	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/metrics"
	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/models"
	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/scoring"
	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/skills"
	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/suggest"
	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/textfeat"
)

const defaultConcurrency = 4

// Analyzer runs the full analysis pipeline against one lexicon. It holds no
// per-record state and is safe for concurrent use.
type Analyzer struct {
	lex        *lexicon.Lexicon
	ext        *textfeat.Extractor
	calc       *metrics.Calculator
	classifier *skills.Classifier

	enhancer    enhance.Enhancer
	concurrency int
	logger      *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithEnhancer sets the optional post-scoring enhancement strategy. A nil
// enhancer is ignored, keeping the identity behavior.
func WithEnhancer(e enhance.Enhancer) Option {
	return func(a *Analyzer) {
		a.enhancer = e
	}
}

// WithConcurrency bounds the number of records analyzed in parallel during
// batch runs. Values below 1 keep the default.
func WithConcurrency(n int) Option {
	return func(a *Analyzer) {
		if n >= 1 {
			a.concurrency = n
		}
	}
}

// WithLogger sets the logger used for per-record failures and enhancement
// diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// New builds an Analyzer over lex.
func New(lex *lexicon.Lexicon, opts ...Option) *Analyzer {
	a := &Analyzer{
		lex:         lex,
		ext:         textfeat.New(lex),
		calc:        metrics.NewCalculator(lex),
		classifier:  skills.New(lex),
		concurrency: defaultConcurrency,
		logger:      slog.Default(),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// AnalyzeRecord scores a single record keyed by logical field names
// (objective, actions, learning_activity). Malformed or empty text never
// fails: the result degrades to a zero-score "Baixa" record. Two calls with
// identical input produce identical results.
func (a *Analyzer) AnalyzeRecord(ctx context.Context, fields map[string]string) *models.OverallResult {
	return a.analyze(ctx, models.InputFromFields(fields))
}

func (a *Analyzer) analyze(ctx context.Context, input models.AnalysisInput) *models.OverallResult {
	combined := input.Combined()

	features := a.ext.Extract(combined)
	metricScores := a.calc.All(combined)
	overall, level := scoring.Aggregate(a.lex, metricScores)

	suggestions := suggest.ForResult(metricScores, features, overall)

	result := &models.OverallResult{
		OverallScore:   overall,
		QualityLevel:   level,
		Metrics:        metricScores,
		Suggestions:    suggestions,
		SuggestionText: suggest.Join(suggestions),
		Skill:          a.classifier.Classify(input.Objective, input.Actions),
		Explanation:    scoring.Explain(a.lex, metricScores),
		Features:       features,
	}

	if a.enhancer != nil {
		enhanced, err := a.enhancer.Enhance(ctx, input, result)
		switch {
		case err != nil:
			a.logger.Warn("enhancement failed, keeping heuristic score", "error", err)
		case enhanced != nil:
			result = enhanced
		}
	}

	return result
}

// failedResult is the substitute emitted when a record's analysis fails
// internally, so batch output keeps its 1:1 correspondence with input.
func failedResult() *models.OverallResult {
	s := []string{"Erro na análise: registro não pôde ser processado"}
	return &models.OverallResult{
		QualityLevel:   models.QualityLow,
		Suggestions:    s,
		SuggestionText: suggest.Join(s),
		Skill:          models.SkillResult{Type: models.SkillUnknown},
		Failed:         true,
	}
}
