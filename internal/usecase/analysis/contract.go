package analysis

import (
	"context"

	domanalysis "github.com/kailas-cloud/finsight/internal/domain/analysis"
	domcompany "github.com/kailas-cloud/finsight/internal/domain/company"
)

// DocumentSource reads raw companion documents and enumerates them.
type DocumentSource interface {
	Get(ctx context.Context, id string) ([]byte, error)
	List(ctx context.Context) ([]string, error)
}

// RecordWriter persists analysis rows.
type RecordWriter interface {
	Upsert(ctx context.Context, rec domcompany.Record) error
}

// Classifier assigns a strength label to extracted features.
type Classifier interface {
	Name() string
	Classify(ctx context.Context, f domanalysis.Features) (domcompany.Strength, error)
}
