package fetch

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	domcompany "github.com/kailas-cloud/finsight/internal/domain/company"
	"github.com/kailas-cloud/finsight/internal/metrics"
)

// Failure records why a single identifier was not stored.
type Failure struct {
	ID  string
	Err error
}

// Report summarizes a fetch run.
type Report struct {
	Stored []string
	Failed []Failure
}

// Service downloads company profiles and stores them as companion documents.
type Service struct {
	source Source
	docs   DocumentWriter
	logger *zap.Logger
}

// New creates a fetch service.
func New(source Source, docs DocumentWriter, logger *zap.Logger) *Service {
	return &Service{source: source, docs: docs, logger: logger}
}

// Fetch downloads ids sequentially. Pacing is owned by the source.
// A failed identifier is logged and counted; processing continues.
// Only context cancellation aborts the run.
func (s *Service) Fetch(ctx context.Context, ids []string) (Report, error) {
	var report Report

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("fetch: %w", err)
		}
		if err := s.fetchOne(ctx, id); err != nil {
			metrics.FetchRequestsTotal.WithLabelValues("error").Inc()
			s.logger.Warn("Company fetch failed", zap.String("company", id), zap.Error(err))
			report.Failed = append(report.Failed, Failure{ID: id, Err: err})
			continue
		}
		metrics.FetchRequestsTotal.WithLabelValues("ok").Inc()
		s.logger.Info("Company document stored", zap.String("company", id))
		report.Stored = append(report.Stored, id)
	}

	return report, nil
}

func (s *Service) fetchOne(ctx context.Context, id string) error {
	body, err := s.source.Fetch(ctx, id)
	if err != nil {
		return err
	}
	// Reject anything the detail view could not merge later.
	if _, err := domcompany.ParseDocument(id, body); err != nil {
		return err
	}
	if err := s.docs.Put(ctx, id, body); err != nil {
		return fmt.Errorf("store %s: %w", id, err)
	}
	return nil
}
