// Package enhance defines the optional post-scoring enhancement strategy.
// The core engine is complete without it: the identity strategy is the
// default, and any enhancer failure leaves the core result untouched.
package enhance

import (
	"context"

	"github.com/IgorGSBarbosaDev/Quality-Filter-PDI/internal/models"
)

// Enhancer may return an improved variant of an already-computed result.
// Implementations must only ever raise the overall score; the core result is
// the floor.
type Enhancer interface {
	Enhance(ctx context.Context, input models.AnalysisInput, result *models.OverallResult) (*models.OverallResult, error)
}

// Noop is the identity strategy.
type Noop struct{}

// Enhance returns the result unchanged.
func (Noop) Enhance(_ context.Context, _ models.AnalysisInput, result *models.OverallResult) (*models.OverallResult, error) {
	return result, nil
}
