package company

import (
	"context"

	domcompany "github.com/kailas-cloud/finsight/internal/domain/company"
)

// RecordReader reads analysis rows from the relational store.
type RecordReader interface {
	Find(ctx context.Context, id string) (domcompany.Record, error)
	List(ctx context.Context) ([]domcompany.Summary, error)
}

// DocumentReader reads raw companion documents.
type DocumentReader interface {
	Get(ctx context.Context, id string) ([]byte, error)
}
