package document

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/kailas-cloud/finsight/internal/db"
	"github.com/kailas-cloud/finsight/internal/domain"
)

// jsonStore is the consumer interface for RedisJSON documents (ISP).
type jsonStore interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
	Ping(ctx context.Context) error
}

// RedisRepo keeps documents as RedisJSON values under <prefix>company:<identifier>.
type RedisRepo struct {
	store  jsonStore
	prefix string
}

// NewRedisRepo creates a RedisJSON-backed document repository.
func NewRedisRepo(s jsonStore, keyPrefix string) *RedisRepo {
	return &RedisRepo{store: s, prefix: keyPrefix + "company:"}
}

// Get returns the raw document for id, or domain.ErrDocumentNotFound.
func (r *RedisRepo) Get(ctx context.Context, id string) ([]byte, error) {
	if id == "" {
		return nil, domain.ErrDocumentNotFound
	}
	// No path: JSON.GET returns the root value itself rather than a one-element array.
	raw, err := r.store.JSONGet(ctx, r.key(id))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("json.get %s: %w", id, err)
	}
	return raw, nil
}

// Put stores the raw document for id.
func (r *RedisRepo) Put(ctx context.Context, id string, data []byte) error {
	if id == "" {
		return fmt.Errorf("empty document identifier: %w", domain.ErrInvalidIdentifier)
	}
	if err := r.store.JSONSet(ctx, r.key(id), "$", data); err != nil {
		return fmt.Errorf("json.set %s: %w", id, err)
	}
	return nil
}

// List returns the identifiers of all stored documents, sorted.
func (r *RedisRepo) List(ctx context.Context) ([]string, error) {
	keys, err := r.store.Scan(ctx, r.prefix+"*")
	if err != nil {
		return nil, fmt.Errorf("scan %s*: %w", r.prefix, err)
	}
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, r.prefix))
	}
	sort.Strings(ids)
	// SCAN may return a key more than once.
	return slices.Compact(ids), nil
}

// Ping checks connectivity.
func (r *RedisRepo) Ping(ctx context.Context) error {
	if err := r.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping documents: %w", err)
	}
	return nil
}

func (r *RedisRepo) key(id string) string {
	return r.prefix + id
}
