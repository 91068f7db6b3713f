package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/finsight/internal/domain"
	domcompany "github.com/kailas-cloud/finsight/internal/domain/company"
	gen "github.com/kailas-cloud/finsight/internal/transport/api"
	companyuc "github.com/kailas-cloud/finsight/internal/usecase/company"
	healthuc "github.com/kailas-cloud/finsight/internal/usecase/health"
)

// --- Mocks ---

type mockRecords struct {
	records map[string]domcompany.Record
	err     error
}

func (m *mockRecords) Find(_ context.Context, id string) (domcompany.Record, error) {
	if m.err != nil {
		return domcompany.Record{}, m.err
	}
	rec, ok := m.records[id]
	if !ok {
		return domcompany.Record{}, domain.ErrRecordNotFound
	}
	return rec, nil
}

func (m *mockRecords) List(_ context.Context) ([]domcompany.Summary, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []domcompany.Summary{}
	for _, id := range []string{"INFY", "TCS"} {
		if rec, ok := m.records[id]; ok {
			out = append(out, domcompany.Summary{ID: rec.ID(), Name: rec.Name(), Strength: rec.Strength()})
		}
	}
	return out, nil
}

type mockDocs struct {
	docs map[string]string
}

func (m *mockDocs) Get(_ context.Context, id string) ([]byte, error) {
	raw, ok := m.docs[id]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	return []byte(raw), nil
}

type mockPinger struct{ err error }

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

// --- Helpers ---

func newTestRouter(records *mockRecords, docs *mockDocs) http.Handler {
	return newTestRouterDB(records, docs, nil)
}

func newTestRouterDB(records *mockRecords, docs *mockDocs, dbErr error) http.Handler {
	srv := NewServer(
		companyuc.New(records, docs),
		healthuc.New(&mockPinger{err: dbErr}, &mockPinger{}),
		zap.NewNop(),
	)
	return gen.HandlerWithOptions(srv, gen.ChiServerOptions{
		BaseRouter:       chi.NewRouter(),
		ErrorHandlerFunc: InvalidParamHandler,
	})
}

func fixtures() (*mockRecords, *mockDocs) {
	return &mockRecords{records: map[string]domcompany.Record{
			"TCS": domcompany.Reconstruct("TCS", "Tata Consultancy", domcompany.StrengthStrong,
				"High margin|Stable clients", "Valuation"),
			"INFY": domcompany.Reconstruct("INFY", "Infosys", domcompany.StrengthModerate, "", ""),
		}},
		&mockDocs{docs: map[string]string{
			"TCS": `{"company":{"company_logo":"url"}}`,
		}}
}

func do(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", path, http.NoBody))
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) gen.ErrorResponse {
	t.Helper()
	var resp gen.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	return resp
}

// --- Tests ---

func TestGetCompany_Merged(t *testing.T) {
	h := newTestRouter(fixtures())

	rr := do(t, h, "/api/companies/TCS")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	var got map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := map[string]any{
		"id":           "TCS",
		"company_name": "Tata Consultancy",
		"strength":     "Strong",
		"company_logo": "url",
		"pros":         []any{"High margin", "Stable clients"},
		"cons":         []any{"Valuation"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestGetCompany_NotFoundCauses(t *testing.T) {
	h := newTestRouter(fixtures())

	tests := []struct {
		path string
		code gen.ErrorResponseCode
	}{
		{"/api/companies/NOPE", gen.ErrorResponseCodeCompanyNotFound},
		{"/api/companies/INFY", gen.ErrorResponseCodeCompanyDocumentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rr := do(t, h, tt.path)
			if rr.Code != http.StatusNotFound {
				t.Fatalf("status = %d, want 404", rr.Code)
			}
			if resp := decodeError(t, rr); resp.Code != tt.code {
				t.Errorf("code = %q, want %q", resp.Code, tt.code)
			}
		})
	}
}

func TestGetCompany_MalformedDocumentIs500(t *testing.T) {
	records, docs := fixtures()
	docs.docs["TCS"] = `{"company": "secret-internal-detail"}`
	h := newTestRouter(records, docs)

	rr := do(t, h, "/api/companies/TCS")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	resp := decodeError(t, rr)
	if resp.Code != gen.ErrorResponseCodeInternalError {
		t.Errorf("code = %q", resp.Code)
	}
	if resp.Message != "internal error" {
		t.Errorf("internal detail leaked: %q", resp.Message)
	}
}

func TestGetCompany_StoreFailureIs500(t *testing.T) {
	records, docs := fixtures()
	records.err = errors.New("dial tcp 10.0.0.5:3306: connection refused")
	h := newTestRouter(records, docs)

	rr := do(t, h, "/api/companies/TCS")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if strings.Contains(rr.Body.String(), "10.0.0.5") {
		t.Error("store error leaked to client")
	}
}

func TestGetCompany_EmptyIdentifier(t *testing.T) {
	records, docs := fixtures()
	srv := NewServer(companyuc.New(records, docs), healthuc.New(&mockPinger{}, &mockPinger{}), zap.NewNop())

	rr := httptest.NewRecorder()
	srv.GetCompany(rr, httptest.NewRequest("GET", "/api/companies/", http.NoBody), "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if resp := decodeError(t, rr); resp.Code != gen.ErrorResponseCodeBadRequest {
		t.Errorf("code = %q", resp.Code)
	}
}

func TestListCompanies(t *testing.T) {
	h := newTestRouter(fixtures())

	rr := do(t, h, "/api/companies")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var got []gen.CompanySummary
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []gen.CompanySummary{
		{Id: "INFY", CompanyName: "Infosys", Strength: "Moderate"},
		{Id: "TCS", CompanyName: "Tata Consultancy", Strength: "Strong"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestListCompanies_EmptyIsArray(t *testing.T) {
	h := newTestRouter(&mockRecords{}, &mockDocs{})

	rr := do(t, h, "/api/companies")
	if strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Errorf("body = %q, want []", rr.Body.String())
	}
}

func TestHealthCheck(t *testing.T) {
	records, docs := fixtures()

	rr := do(t, newTestRouter(records, docs), "/health")
	if rr.Code != http.StatusOK {
		t.Errorf("healthy: status = %d", rr.Code)
	}

	rr = do(t, newTestRouterDB(records, docs, errors.New("down")), "/health")
	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("degraded: status = %d", rr.Code)
	}
	var resp gen.HealthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != gen.HealthResponseStatusDegraded || resp.Checks["database"] != gen.HealthResponseChecksError {
		t.Errorf("unexpected health: %+v", resp)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	rr := do(t, newTestRouter(fixtures()), "/metrics")
	if rr.Code != http.StatusOK {
		t.Errorf("status = %d", rr.Code)
	}
}
