// Package analysis derives strength labels and pros/cons from company documents.
package analysis

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/kailas-cloud/finsight/internal/domain/company"
)

// Features are the financial ratios the strength classifier works on.
type Features struct {
	ROE          float64 `json:"roe"`
	SalesGrowth  float64 `json:"sales_growth"`
	Dividend     float64 `json:"dividend"`
	ProfitMargin float64 `json:"profit_margin"`
	DebtToEquity float64 `json:"debt_to_equity"`
}

// ExtractFeatures reads the ratios from a document. Missing or non-numeric values count as 0.
func ExtractFeatures(doc *company.Document) Features {
	f := Features{
		ROE:         number(doc.Company()["roe_percentage"]),
		SalesGrowth: number(doc.Analysis()["sales_growth"]),
		Dividend:    number(doc.Analysis()["dividend_payout"]),
	}

	if latest := lastObject(doc.Data()["profitandloss"]); latest != nil {
		sales := number(latest["sales"])
		if sales > 0 {
			f.ProfitMargin = number(latest["net_profit"]) / sales * 100
		}
	}

	if latest := lastObject(doc.Data()["balancesheet"]); latest != nil {
		reserves := number(latest["reserves"])
		if reserves > 0 {
			f.DebtToEquity = number(latest["borrowings"]) / reserves
		}
	}

	return f
}

func lastObject(v any) map[string]any {
	arr, ok := v.([]any)
	if !ok || len(arr) == 0 {
		return nil
	}
	m, _ := arr[len(arr)-1].(map[string]any)
	return m
}

// number accepts JSON numbers and numeric strings (the upstream API mixes both).
func number(v any) float64 {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
