// Package docsync copies companion documents between stores.
package docsync

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Source enumerates and reads documents.
type Source interface {
	List(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id string) ([]byte, error)
}

// Target stores documents.
type Target interface {
	Put(ctx context.Context, id string, data []byte) error
}

// Report summarizes a sync run.
type Report struct {
	Copied int
	Failed map[string]error
}

// Service copies every document of a source into a target.
type Service struct {
	src    Source
	dst    Target
	logger *zap.Logger
}

// New creates a sync service.
func New(src Source, dst Target, logger *zap.Logger) *Service {
	return &Service{src: src, dst: dst, logger: logger}
}

// Sync copies all documents. Per-document failures are reported, not returned.
func (s *Service) Sync(ctx context.Context) (Report, error) {
	ids, err := s.src.List(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list source: %w", err)
	}

	report := Report{Failed: make(map[string]error)}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("sync: %w", err)
		}
		raw, err := s.src.Get(ctx, id)
		if err == nil {
			err = s.dst.Put(ctx, id, raw)
		}
		if err != nil {
			s.logger.Warn("Document sync failed", zap.String("company", id), zap.Error(err))
			report.Failed[id] = err
			continue
		}
		report.Copied++
	}

	s.logger.Info("Document sync finished",
		zap.Int("copied", report.Copied),
		zap.Int("failed", len(report.Failed)),
	)
	return report, nil
}
