package document

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kailas-cloud/finsight/internal/db"
	"github.com/kailas-cloud/finsight/internal/domain"
)

const fileExt = ".json"

// FileRepo keeps one <identifier>.json file per company in a directory.
type FileRepo struct {
	dir string
}

// NewFileRepo creates a directory-backed document repository.
func NewFileRepo(dir string) *FileRepo {
	return &FileRepo{dir: dir}
}

// Get returns the raw document for id, or domain.ErrDocumentNotFound.
func (r *FileRepo) Get(ctx context.Context, id string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, ok := r.path(id)
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("read %s: %w", id, &db.Error{Op: db.OpReadFile, Err: err})
	}
	return data, nil
}

// Put writes the raw document for id, replacing any previous version atomically.
func (r *FileRepo) Put(ctx context.Context, id string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, ok := r.path(id)
	if !ok {
		return fmt.Errorf("invalid document identifier %q: %w", id, domain.ErrInvalidIdentifier)
	}

	if err := os.MkdirAll(r.dir, 0o750); err != nil {
		return fmt.Errorf("create %s: %w", r.dir, &db.Error{Op: db.OpWrite, Err: err})
	}

	tmp, err := os.CreateTemp(r.dir, "."+id+"-*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", id, &db.Error{Op: db.OpWrite, Err: err})
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", id, &db.Error{Op: db.OpWrite, Err: err})
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", id, &db.Error{Op: db.OpWrite, Err: err})
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write %s: %w", id, &db.Error{Op: db.OpWrite, Err: err})
	}
	return nil
}

// List returns the identifiers of all stored documents, sorted.
func (r *FileRepo) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.dir, &db.Error{Op: db.OpReadDir, Err: err})
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, fileExt) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, fileExt))
	}
	sort.Strings(ids)
	return ids, nil
}

// Ping checks that the document directory is readable.
func (r *FileRepo) Ping(_ context.Context) error {
	info, err := os.Stat(r.dir)
	if err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	if !info.IsDir() {
		return &db.Error{Op: db.OpPing, Err: fmt.Errorf("%s is not a directory", r.dir)}
	}
	return nil
}

// path maps an identifier to its file. Identifiers that would leave the
// directory cannot name a document, and neither can dot-prefixed ones: those
// names are reserved for Put's temp files and are never listed.
func (r *FileRepo) path(id string) (string, bool) {
	if id == "" || strings.HasPrefix(id, ".") || strings.ContainsAny(id, `/\`) || strings.ContainsRune(id, 0) {
		return "", false
	}
	return filepath.Join(r.dir, id+fileExt), true
}
