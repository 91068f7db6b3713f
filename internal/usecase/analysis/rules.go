package analysis

import (
	"context"

	domanalysis "github.com/kailas-cloud/finsight/internal/domain/analysis"
	domcompany "github.com/kailas-cloud/finsight/internal/domain/company"
)

// RulesClassifier scores features against fixed ratio thresholds.
type RulesClassifier struct{}

// Name identifies the classifier in logs and metrics.
func (RulesClassifier) Name() string { return "rules" }

// Classify never fails.
func (RulesClassifier) Classify(_ context.Context, f domanalysis.Features) (domcompany.Strength, error) {
	return domanalysis.Classify(f), nil
}
