package analysis

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/models"
)

// AnalyzeBatch scores every record and aggregates the results. Records are
// independent, so analysis runs in parallel up to the configured concurrency;
// output order always matches input order. A single record's internal failure
// is isolated and substituted with a zero "Baixa" result, so the output is
// 1:1 with the input. The only returned error is context cancellation.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, records []map[string]string) ([]*models.OverallResult, *models.BatchSummary, error) {
	results := make([]*models.OverallResult, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, record := range records {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = a.safeAnalyze(gctx, i, record)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return results, Summarize(results), nil
}

func (a *Analyzer) safeAnalyze(ctx context.Context, index int, fields map[string]string) (result *models.OverallResult) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("record analysis failed", "record", index, "panic", r)
			result = failedResult()
		}
	}()
	return a.AnalyzeRecord(ctx, fields)
}

// Summarize reduces a result set into per-tier counts/percentages and
// per-metric averages. The reduction is commutative, so it is independent of
// the order the results were produced in.
func Summarize(results []*models.OverallResult) *models.BatchSummary {
	summary := &models.BatchSummary{
		TotalRecords: len(results),
		TierCounts: map[models.QualityLevel]int{
			models.QualityHigh:   0,
			models.QualityMedium: 0,
			models.QualityLow:    0,
		},
		TierPercent: make(map[models.QualityLevel]float64, 3),
	}
	if len(results) == 0 {
		return summary
	}

	var sums models.MetricScores
	var scoreSum float64
	for _, r := range results {
		summary.TierCounts[r.QualityLevel]++
		if r.Failed {
			summary.FailedRecords++
		}
		scoreSum += r.OverallScore
		sums.Clarity += r.Metrics.Clarity
		sums.Specificity += r.Metrics.Specificity
		sums.Completeness += r.Metrics.Completeness
		sums.Structure += r.Metrics.Structure
		sums.SMARTCriteria += r.Metrics.SMARTCriteria
		sums.NegativeImpact += r.Metrics.NegativeImpact
	}

	n := float64(len(results))
	for level, count := range summary.TierCounts {
		summary.TierPercent[level] = float64(count) / n * 100
	}
	summary.AverageScore = scoreSum / n
	summary.AverageMetrics = models.MetricScores{
		Clarity:        sums.Clarity / n,
		Specificity:    sums.Specificity / n,
		Completeness:   sums.Completeness / n,
		Structure:      sums.Structure / n,
		SMARTCriteria:  sums.SMARTCriteria / n,
		NegativeImpact: sums.NegativeImpact / n,
	}
	return summary
}
