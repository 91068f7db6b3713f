package company

import (
	"database/sql"

	domcompany "github.com/kailas-cloud/finsight/internal/domain/company"
)

// recordRow mirrors a company_analysis row. Pros and cons are nullable.
type recordRow struct {
	ID       string
	Name     sql.NullString
	Strength sql.NullString
	Pros     sql.NullString
	Cons     sql.NullString
}

func (r recordRow) toDomain() domcompany.Record {
	return domcompany.Reconstruct(
		r.ID,
		r.Name.String,
		domcompany.Strength(r.Strength.String),
		r.Pros.String,
		r.Cons.String,
	)
}

func (r recordRow) toSummary() domcompany.Summary {
	return domcompany.Summary{
		ID:       r.ID,
		Name:     r.Name.String,
		Strength: domcompany.Strength(r.Strength.String),
	}
}
