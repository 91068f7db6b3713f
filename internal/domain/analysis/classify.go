package analysis

import "github.com/kailas-cloud/finsight/internal/domain/company"

// Rule thresholds.
const (
	minStrongROE          = 15.0
	minStrongSalesGrowth  = 10.0
	minStrongProfitMargin = 10.0
	maxHealthyDebtEquity  = 1.0
)

// Score counts how many healthy-ratio rules the features satisfy (0..5).
func Score(f Features) int {
	score := 0
	if f.ROE > minStrongROE {
		score++
	}
	if f.SalesGrowth > minStrongSalesGrowth {
		score++
	}
	if f.ProfitMargin > minStrongProfitMargin {
		score++
	}
	if f.DebtToEquity < maxHealthyDebtEquity {
		score++
	}
	if f.Dividend > 0 {
		score++
	}
	return score
}

// Classify maps features to a strength label with the rule score.
func Classify(f Features) company.Strength {
	switch s := Score(f); {
	case s >= 4:
		return company.StrengthStrong
	case s >= 2:
		return company.StrengthModerate
	default:
		return company.StrengthWeak
	}
}
