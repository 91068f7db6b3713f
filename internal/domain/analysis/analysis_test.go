package analysis

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kailas-cloud/finsight/internal/domain/company"
)

const tcsDocument = `{
	"company": {"id": "TCS", "company_name": "Tata Consultancy", "roe_percentage": "51.5",
		"roce_percentage": 64.2, "book_value": 262},
	"analysis": {"sales_growth": 12.4, "dividend_payout": "80.1",
		"points": ["Company is almost debt-free.", "Stock is trading at 13x book value.",
			"Low promoter pledge", "Healthy dividend payout"]},
	"data": {
		"profitandloss": [{"sales": 100, "net_profit": 5}, {"sales": "200", "net_profit": 40}],
		"balancesheet": [{"borrowings": 10, "reserves": 0}, {"borrowings": 50, "reserves": 100}]
	}
}`

func mustParse(t *testing.T, raw string) company.Document {
	t.Helper()
	doc, err := company.ParseDocument("TCS", []byte(raw))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	return doc
}

func TestExtractFeatures(t *testing.T) {
	doc := mustParse(t, tcsDocument)
	got := ExtractFeatures(&doc)

	want := Features{
		ROE:          51.5,
		SalesGrowth:  12.4,
		Dividend:     80.1,
		ProfitMargin: 20,
		DebtToEquity: 0.5,
	}
	opt := cmp.Comparer(func(a, b float64) bool { return math.Abs(a-b) < 1e-9 })
	if diff := cmp.Diff(want, got, opt); diff != "" {
		t.Errorf("features mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractFeatures_Gaps(t *testing.T) {
	doc := mustParse(t, `{"company": {"roe_percentage": "n/a"},
		"data": {"profitandloss": [{"sales": 0, "net_profit": 5}], "balancesheet": []}}`)
	got := ExtractFeatures(&doc)
	if got != (Features{}) {
		t.Errorf("expected zero features, got %+v", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		f    Features
		want company.Strength
	}{
		{"all healthy", Features{ROE: 20, SalesGrowth: 15, Dividend: 10, ProfitMargin: 20, DebtToEquity: 0.2}, company.StrengthStrong},
		{"four of five", Features{ROE: 20, SalesGrowth: 15, ProfitMargin: 20, DebtToEquity: 0.2}, company.StrengthStrong},
		{"low debt and dividend only", Features{Dividend: 1, DebtToEquity: 0.5}, company.StrengthModerate},
		{"only low debt", Features{DebtToEquity: 0}, company.StrengthWeak},
		{"nothing", Features{DebtToEquity: 3}, company.StrengthWeak},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.f); got != tc.want {
				t.Errorf("Classify(%+v) = %q, want %q (score %d)", tc.f, got, tc.want, Score(tc.f))
			}
		})
	}
}

func TestPickProsCons(t *testing.T) {
	points := []string{
		"Company is almost debt-free.",
		"Stock is trading at 13x book value.",
		"Low promoter pledge",
		"Healthy dividend payout",
		"Good ROE of 30%",
		"Sales growth is strong",
		"Poor sales growth",
		"Company might be capitalizing interest cost",
	}
	pros, cons := PickProsCons(points)

	wantPros := []string{"Company is almost debt-free.", "Healthy dividend payout", "Good ROE of 30%"}
	if diff := cmp.Diff(wantPros, pros); diff != "" {
		t.Errorf("pros mismatch (-want +got):\n%s", diff)
	}
	// "Poor sales growth" matches a pro keyword first.
	wantCons := []string{"Low promoter pledge"}
	if diff := cmp.Diff(wantCons, cons); diff != "" {
		t.Errorf("cons mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarize_FallsBackToInsights(t *testing.T) {
	doc := mustParse(t, `{"company": {"roe_percentage": 20, "roce_percentage": 5, "book_value": 600},
		"analysis": {"points": ["Stock is trading at 13x book value."]}}`)

	pros, cons := Summarize(&doc)

	wantPros := []string{
		"Company has a strong Return on Equity (ROE) of 20%.",
		"Company has a high book value of 600 INR.",
	}
	if diff := cmp.Diff(wantPros, pros); diff != "" {
		t.Errorf("pros mismatch (-want +got):\n%s", diff)
	}
	wantCons := []string{"Company has a weak ROCE of 5%."}
	if diff := cmp.Diff(wantCons, cons); diff != "" {
		t.Errorf("cons mismatch (-want +got):\n%s", diff)
	}
}

func TestPoints_SkipsNonStrings(t *testing.T) {
	doc := mustParse(t, `{"analysis": {"points": ["a", 1, "", null, "b"]}}`)
	if diff := cmp.Diff([]string{"a", "b"}, Points(&doc)); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
}
