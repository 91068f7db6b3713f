package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing resource. Cause-specific errors wrap it.
	ErrNotFound = errors.New("not found")
	// ErrRecordNotFound signals that no analysis row matches the identifier.
	ErrRecordNotFound = fmt.Errorf("company record: %w", ErrNotFound)
	// ErrDocumentNotFound signals that the companion document is absent.
	ErrDocumentNotFound = fmt.Errorf("company document: %w", ErrNotFound)

	// ErrInvalidIdentifier signals an empty company identifier.
	ErrInvalidIdentifier = errors.New("invalid company identifier")
	// ErrMalformedDocument signals a companion document that cannot be parsed.
	ErrMalformedDocument = errors.New("malformed company document")
	// ErrClassifierError signals a strength classifier failure.
	ErrClassifierError = errors.New("classifier error")
	// ErrUpstreamError signals a failure of the upstream company data API.
	ErrUpstreamError = errors.New("upstream error")
)
