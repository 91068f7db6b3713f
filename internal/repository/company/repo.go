package company

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kailas-cloud/finsight/internal/db/sqldb"
	"github.com/kailas-cloud/finsight/internal/domain"
	domcompany "github.com/kailas-cloud/finsight/internal/domain/company"
)

const table = "company_analysis"

// store is the consumer interface for analysis rows (ISP).
type store interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	Dialect() sqldb.Dialect
}

// Repo implements usecase/company.RecordReader and usecase/analysis.RecordWriter.
type Repo struct {
	store store
}

// New creates a company analysis repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Find returns the row whose identifier matches id exactly, case included.
// When several rows match, the first one returned by the database wins.
func (r *Repo) Find(ctx context.Context, id string) (domcompany.Record, error) {
	rows, err := r.store.QueryContext(ctx,
		"SELECT company, company_name, strength, pros, cons FROM "+table+
			" WHERE "+r.store.Dialect().ExactMatch("company"), id)
	if err != nil {
		return domcompany.Record{}, fmt.Errorf("query %s: %w", id, err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domcompany.Record{}, fmt.Errorf("read %s: %w", id, err)
		}
		return domcompany.Record{}, domain.ErrRecordNotFound
	}

	var row recordRow
	if err := rows.Scan(&row.ID, &row.Name, &row.Strength, &row.Pros, &row.Cons); err != nil {
		return domcompany.Record{}, fmt.Errorf("scan %s: %w", id, err)
	}
	return row.toDomain(), nil
}

// List returns every company's listing projection ordered by identifier.
func (r *Repo) List(ctx context.Context) ([]domcompany.Summary, error) {
	rows, err := r.store.QueryContext(ctx,
		"SELECT company, company_name, strength FROM "+table+" ORDER BY company")
	if err != nil {
		return nil, fmt.Errorf("query companies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]domcompany.Summary, 0)
	for rows.Next() {
		var row recordRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Strength); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		out = append(out, row.toSummary())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read companies: %w", err)
	}
	return out, nil
}

// Upsert inserts the row or replaces the existing row with the same identifier.
func (r *Repo) Upsert(ctx context.Context, rec domcompany.Record) error {
	query := "INSERT INTO " + table + " (company, company_name, strength, pros, cons, updated_at) " +
		"VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP) " +
		r.store.Dialect().UpsertClause("company", "company_name", "strength", "pros", "cons", "updated_at")

	_, err := r.store.ExecContext(ctx, query,
		rec.ID(), rec.Name(), string(rec.Strength()), rec.ProsText(), rec.ConsText())
	if err != nil {
		return fmt.Errorf("upsert %s: %w", rec.ID(), err)
	}
	return nil
}
