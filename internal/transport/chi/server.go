package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/finsight/internal/domain"
	domcompany "github.com/kailas-cloud/finsight/internal/domain/company"
	"github.com/kailas-cloud/finsight/internal/logger"
	gen "github.com/kailas-cloud/finsight/internal/transport/api"
	companyuc "github.com/kailas-cloud/finsight/internal/usecase/company"
	healthuc "github.com/kailas-cloud/finsight/internal/usecase/health"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server implements api.ServerInterface for the chi router.
type Server struct {
	companies     *companyuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

var _ gen.ServerInterface = (*Server)(nil)

// NewServer creates an HTTP API server.
func NewServer(companies *companyuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		companies: companies,
		health:    health,
		logger:    logger,
	}
	// Order matters: the specific not-found causes come before anything broader.
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrRecordNotFound, http.StatusNotFound, gen.ErrorResponseCodeCompanyNotFound),
		sentinelHandler(domain.ErrDocumentNotFound, http.StatusNotFound, gen.ErrorResponseCodeCompanyDocumentNotFound),
		sentinelHandler(domain.ErrInvalidIdentifier, http.StatusBadRequest, gen.ErrorResponseCodeBadRequest),
	}
	return s
}

// ListCompanies handles GET /api/companies.
func (s *Server) ListCompanies(w http.ResponseWriter, r *http.Request) {
	items, err := s.companies.List(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	resp := make([]gen.CompanySummary, len(items))
	for i, it := range items {
		resp[i] = summaryToGen(it)
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetCompany handles GET /api/companies/{id}.
func (s *Server) GetCompany(w http.ResponseWriter, r *http.Request, id gen.CompanyId) {
	detail, err := s.companies.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, detailToGen(&detail))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]gen.HealthResponseChecks, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = gen.HealthResponseChecks(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, gen.HealthResponse{
		Status: gen.HealthResponseStatus(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// InvalidParamHandler renders path binding failures from the api wrapper.
func InvalidParamHandler(w http.ResponseWriter, _ *http.Request, _ error) {
	writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeBadRequest, "invalid request")
}

func summaryToGen(s domcompany.Summary) gen.CompanySummary {
	return gen.CompanySummary{
		Id:          s.ID,
		CompanyName: s.Name,
		Strength:    string(s.Strength),
	}
}

func detailToGen(d *domcompany.Detail) gen.CompanyDetail {
	out := gen.CompanyDetail(d.Fields())
	out[domcompany.FieldPros] = nonNil(d.Pros())
	out[domcompany.FieldCons] = nonNil(d.Cons())
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code gen.ErrorResponseCode, message string) {
	writeJSON(w, status, gen.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage maps an error to a client-safe message. Internal causes never leak.
func safeDomainMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		return "company not found"
	case errors.Is(err, domain.ErrDocumentNotFound):
		return "company document not found"
	case errors.Is(err, domain.ErrInvalidIdentifier):
		return domain.ErrInvalidIdentifier.Error()
	default:
		return "internal error"
	}
}

func sentinelHandler(sentinel error, status int, code gen.ErrorResponseCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContextOr(r.Context(), s.logger)

	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			log.Debug("domain error", zap.Error(err))
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, gen.ErrorResponseCodeInternalError, "internal error")
}
