// Package api holds the HTTP contract of the finsight API: wire types, the
// ServerInterface implemented by the transport layer and the chi wrapper that
// binds path parameters. It follows the shape oapi-codegen emits for
// api/openapi.yaml so the two can be kept side by side.
package api

// ErrorResponseCode is a machine-readable error code.
type ErrorResponseCode string

// Defines values for ErrorResponseCode.
const (
	ErrorResponseCodeBadRequest              ErrorResponseCode = "bad_request"
	ErrorResponseCodeUnauthorized            ErrorResponseCode = "unauthorized"
	ErrorResponseCodeCompanyNotFound         ErrorResponseCode = "company_not_found"
	ErrorResponseCodeCompanyDocumentNotFound ErrorResponseCode = "company_document_not_found"
	ErrorResponseCodeInternalError           ErrorResponseCode = "internal_error"
)

// HealthResponseStatus is the aggregated health status.
type HealthResponseStatus string

// Defines values for HealthResponseStatus.
const (
	HealthResponseStatusOk       HealthResponseStatus = "ok"
	HealthResponseStatusDegraded HealthResponseStatus = "degraded"
)

// HealthResponseChecks is a single component check outcome.
type HealthResponseChecks string

// Defines values for HealthResponseChecks.
const (
	HealthResponseChecksOk    HealthResponseChecks = "ok"
	HealthResponseChecksError HealthResponseChecks = "error"
)

// CompanyId is the company identifier path parameter.
type CompanyId = string

// CompanySummary is one entry of the company listing.
type CompanySummary struct {
	Id          string `json:"id"`
	CompanyName string `json:"company_name"`
	Strength    string `json:"strength"`
}

// CompanyDetail is the merged company view: the analysis row, every member of the
// document's company object, and the decoded pros and cons arrays.
type CompanyDetail map[string]interface{}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorResponseCode `json:"code"`
	Message string            `json:"message"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status HealthResponseStatus            `json:"status"`
	Checks map[string]HealthResponseChecks `json:"checks"`
}
