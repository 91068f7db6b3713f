package metrics

import "github.com/prometheus/client_golang/prometheus"

// Company lookup outcomes.
const (
	OutcomeOK             = "ok"
	OutcomeRecordAbsent   = "record_absent"
	OutcomeDocumentAbsent = "document_absent"
	OutcomeError          = "error"
)

// Domain Prometheus metrics.
var (
	CompanyLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "finsight",
			Name:      "company_lookups_total",
			Help:      "Company detail lookups by outcome",
		},
		[]string{"outcome"},
	)

	AnalysisTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "finsight",
			Name:      "analysis_total",
			Help:      "Company analyses by classifier and result",
		},
		[]string{"classifier", "result"}, // "ok" / "error"
	)

	AnalysisStrengthTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "finsight",
			Name:      "analysis_strength_total",
			Help:      "Strength labels assigned by the analyzer",
		},
		[]string{"strength"},
	)

	ClassifierRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "finsight",
			Name:      "classifier_requests_total",
			Help:      "Total number of remote classifier requests",
		},
		[]string{"provider", "model", "status"},
	)

	ClassifierRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "finsight",
			Name:      "classifier_request_duration_seconds",
			Help:      "Remote classifier request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider", "model"},
	)

	FetchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "finsight",
			Name:      "fetch_requests_total",
			Help:      "Upstream company data requests by result",
		},
		[]string{"result"},
	)
)

var domainMetricsRegistered bool

// RegisterDomainMetrics registers lookup, analysis and fetch metrics. Must be called once from main.
func RegisterDomainMetrics() {
	if domainMetricsRegistered {
		return
	}
	prometheus.MustRegister(CompanyLookupsTotal)
	prometheus.MustRegister(AnalysisTotal)
	prometheus.MustRegister(AnalysisStrengthTotal)
	prometheus.MustRegister(ClassifierRequestsTotal)
	prometheus.MustRegister(ClassifierRequestDuration)
	prometheus.MustRegister(FetchRequestsTotal)
	domainMetricsRegistered = true
}
