package analysis

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	domanalysis "github.com/kailas-cloud/finsight/internal/domain/analysis"
	domcompany "github.com/kailas-cloud/finsight/internal/domain/company"
	"github.com/kailas-cloud/finsight/internal/metrics"
)

const defaultWorkers = 4

// Failure records why a single company could not be analyzed.
type Failure struct {
	ID  string
	Err error
}

// Report summarizes a batch analysis run.
type Report struct {
	Succeeded int
	Failed    []Failure
}

// Service derives analysis rows from companion documents.
type Service struct {
	docs       DocumentSource
	records    RecordWriter
	classifier Classifier
	workers    int
	logger     *zap.Logger
}

// New creates an analysis service. classifier defaults to RulesClassifier.
func New(docs DocumentSource, records RecordWriter, classifier Classifier, logger *zap.Logger) *Service {
	if classifier == nil {
		classifier = RulesClassifier{}
	}
	return &Service{
		docs:       docs,
		records:    records,
		classifier: classifier,
		workers:    defaultWorkers,
		logger:     logger,
	}
}

// WithWorkers bounds AnalyzeAll concurrency.
func (s *Service) WithWorkers(n int) *Service {
	if n > 0 {
		s.workers = n
	}
	return s
}

// Analyze loads the document for id, classifies it and upserts the row.
func (s *Service) Analyze(ctx context.Context, id string) (domcompany.Record, error) {
	rec, err := s.analyze(ctx, id)
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.AnalysisTotal.WithLabelValues(s.classifier.Name(), result).Inc()
	return rec, err
}

func (s *Service) analyze(ctx context.Context, id string) (domcompany.Record, error) {
	raw, err := s.docs.Get(ctx, id)
	if err != nil {
		return domcompany.Record{}, fmt.Errorf("load document %s: %w", id, err)
	}
	doc, err := domcompany.ParseDocument(id, raw)
	if err != nil {
		return domcompany.Record{}, err
	}

	features := domanalysis.ExtractFeatures(&doc)
	strength, err := s.classifier.Classify(ctx, features)
	if err != nil {
		return domcompany.Record{}, fmt.Errorf("classify %s: %w", id, err)
	}
	pros, cons := domanalysis.Summarize(&doc)

	name := doc.CompanyString("company_name")
	if name == "" {
		name = id
	}
	rec, err := domcompany.NewRecord(id, name, strength,
		domcompany.JoinList(pros), domcompany.JoinList(cons))
	if err != nil {
		return domcompany.Record{}, err
	}
	if err := s.records.Upsert(ctx, rec); err != nil {
		return domcompany.Record{}, fmt.Errorf("upsert %s: %w", id, err)
	}

	metrics.AnalysisStrengthTotal.WithLabelValues(string(strength)).Inc()
	s.logger.Debug("Company analyzed",
		zap.String("company", id),
		zap.String("strength", string(strength)),
		zap.Int("score", domanalysis.Score(features)),
		zap.Int("pros", len(pros)),
		zap.Int("cons", len(cons)),
	)
	return rec, nil
}

// AnalyzeAll analyzes ids, or every stored document when ids is empty.
// A failure is recorded in the report and does not stop the others.
func (s *Service) AnalyzeAll(ctx context.Context, ids []string) (Report, error) {
	if len(ids) == 0 {
		listed, err := s.docs.List(ctx)
		if err != nil {
			return Report{}, fmt.Errorf("list documents: %w", err)
		}
		ids = listed
	}

	var (
		mu     sync.Mutex
		report Report
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			_, err := s.Analyze(gctx, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.logger.Warn("Company analysis failed", zap.String("company", id), zap.Error(err))
				report.Failed = append(report.Failed, Failure{ID: id, Err: err})
				return nil
			}
			report.Succeeded++
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return report, fmt.Errorf("analyze all: %w", err)
	}
	return report, nil
}
