package fetch

import "context"

// Source returns raw company profiles from the upstream API.
type Source interface {
	Fetch(ctx context.Context, id string) ([]byte, error)
}

// DocumentWriter stores raw companion documents.
type DocumentWriter interface {
	Put(ctx context.Context, id string, data []byte) error
}
