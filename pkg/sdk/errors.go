package finsight

import (
	"errors"
	"fmt"

	"github.com/kailas-cloud/finsight/internal/domain"
	gen "github.com/kailas-cloud/finsight/internal/transport/api"
)

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound          = domain.ErrNotFound
	ErrRecordNotFound    = domain.ErrRecordNotFound
	ErrDocumentNotFound  = domain.ErrDocumentNotFound
	ErrInvalidIdentifier = domain.ErrInvalidIdentifier

	// ErrUnauthorized is returned when the API rejects the bearer token.
	ErrUnauthorized = errors.New("finsight: unauthorized")
)

// APIError is a non-2xx response. It unwraps to the matching sentinel when the
// error code has one.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("finsight: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	switch gen.ErrorResponseCode(e.Code) {
	case gen.ErrorResponseCodeCompanyNotFound:
		return ErrRecordNotFound
	case gen.ErrorResponseCodeCompanyDocumentNotFound:
		return ErrDocumentNotFound
	case gen.ErrorResponseCodeBadRequest:
		return ErrInvalidIdentifier
	case gen.ErrorResponseCodeUnauthorized:
		return ErrUnauthorized
	default:
		return nil
	}
}
