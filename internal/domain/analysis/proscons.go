package analysis

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/finsight/internal/domain/company"
)

// MaxItems caps each of the pros and cons lists.
const MaxItems = 3

var (
	proKeywords = []string{"debt-free", "growth", "dividend", "healthy", "good", "roe", "profit"}
	conKeywords = []string{"poor", "low", "not", "decline", "pressure"}
)

// PickProsCons sorts analysis points into pros and cons by keyword.
// Pro keywords are checked first; points matching neither list are dropped.
func PickProsCons(points []string) (pros, cons []string) {
	for _, p := range points {
		lower := strings.ToLower(p)
		switch {
		case containsAny(lower, proKeywords):
			pros = append(pros, p)
		case containsAny(lower, conKeywords):
			cons = append(cons, p)
		}
	}
	return head(pros), head(cons)
}

// Points returns the analysis.points strings of a document.
func Points(doc *company.Document) []string {
	raw, ok := doc.Analysis()["points"].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Insights produces metric-based pros and cons from ROE, ROCE and book value.
// Used when a document carries no usable analysis points.
func Insights(doc *company.Document) (pros, cons []string) {
	roe := number(doc.Company()["roe_percentage"])
	roce := number(doc.Company()["roce_percentage"])
	bookValue := number(doc.Company()["book_value"])

	if roe > 15 {
		pros = append(pros, fmt.Sprintf("Company has a strong Return on Equity (ROE) of %g%%.", roe))
	}
	if roce > 15 {
		pros = append(pros, fmt.Sprintf("Company shows excellent Return on Capital Employed (ROCE) of %g%%.", roce))
	}
	if bookValue > 500 {
		pros = append(pros, fmt.Sprintf("Company has a high book value of %g INR.", bookValue))
	}

	if roe < 10 {
		cons = append(cons, fmt.Sprintf("Company has a low Return on Equity (ROE) of only %g%%.", roe))
	}
	if roce < 10 {
		cons = append(cons, fmt.Sprintf("Company has a weak ROCE of %g%%.", roce))
	}
	if bookValue < 100 {
		cons = append(cons, fmt.Sprintf("Company has a very low book value of %g INR.", bookValue))
	}

	return pros, cons
}

// Summarize picks pros and cons from points, falling back to metric insights
// when the points produce nothing.
func Summarize(doc *company.Document) (pros, cons []string) {
	pros, cons = PickProsCons(Points(doc))
	if len(pros) == 0 && len(cons) == 0 {
		pros, cons = Insights(doc)
	}
	return pros, cons
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func head(items []string) []string {
	if len(items) > MaxItems {
		return items[:MaxItems]
	}
	return items
}
