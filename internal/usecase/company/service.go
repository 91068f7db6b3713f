package company

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/finsight/internal/domain"
	domcompany "github.com/kailas-cloud/finsight/internal/domain/company"
	"github.com/kailas-cloud/finsight/internal/logger"
	"github.com/kailas-cloud/finsight/internal/metrics"
)

// Service serves company listings and merged detail views.
type Service struct {
	records RecordReader
	docs    DocumentReader
}

// New creates a company service.
func New(records RecordReader, docs DocumentReader) *Service {
	return &Service{records: records, docs: docs}
}

// List returns every company summary ordered by identifier.
func (s *Service) List(ctx context.Context) ([]domcompany.Summary, error) {
	items, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return items, nil
}

// Get loads the analysis row and the companion document for id and merges them.
// The document store is not read when the row is absent.
func (s *Service) Get(ctx context.Context, id string) (domcompany.Detail, error) {
	if id == "" {
		return domcompany.Detail{}, domain.ErrInvalidIdentifier
	}

	detail, err := s.get(ctx, id)
	metrics.CompanyLookupsTotal.WithLabelValues(outcome(err)).Inc()
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		logger.FromContext(ctx).Error("company lookup failed",
			zap.String("company", id),
			zap.Error(err),
		)
	}
	return detail, err
}

func (s *Service) get(ctx context.Context, id string) (domcompany.Detail, error) {
	rec, err := s.records.Find(ctx, id)
	if err != nil {
		return domcompany.Detail{}, fmt.Errorf("find record %s: %w", id, err)
	}

	raw, err := s.docs.Get(ctx, id)
	if err != nil {
		return domcompany.Detail{}, fmt.Errorf("load document %s: %w", id, err)
	}

	doc, err := domcompany.ParseDocument(id, raw)
	if err != nil {
		return domcompany.Detail{}, err
	}

	return domcompany.Merge(rec, doc), nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, domain.ErrRecordNotFound):
		return metrics.OutcomeRecordAbsent
	case errors.Is(err, domain.ErrDocumentNotFound):
		return metrics.OutcomeDocumentAbsent
	default:
		return metrics.OutcomeError
	}
}
