package company

import (
	"fmt"

	"github.com/kailas-cloud/finsight/internal/domain"
)

// Strength is the categorical financial strength label of a company.
type Strength string

// Known strength labels produced by the analyzer. Stored rows may carry other values.
const (
	StrengthStrong   Strength = "Strong"
	StrengthModerate Strength = "Moderate"
	StrengthWeak     Strength = "Weak"
)

// ParseStrength validates a label produced by a classifier.
func ParseStrength(s string) (Strength, error) {
	switch st := Strength(s); st {
	case StrengthStrong, StrengthModerate, StrengthWeak:
		return st, nil
	default:
		return "", fmt.Errorf("unknown strength label %q", s)
	}
}

// Record is one row of the analysis table (immutable value object).
type Record struct {
	id       string
	name     string
	strength Strength
	pros     string
	cons     string
}

// NewRecord validates and creates a Record. Pros and cons are delimited text.
func NewRecord(id, name string, strength Strength, pros, cons string) (Record, error) {
	if id == "" {
		return Record{}, fmt.Errorf("company identifier is required: %w", domain.ErrInvalidIdentifier)
	}
	return Record{id: id, name: name, strength: strength, pros: pros, cons: cons}, nil
}

// Reconstruct creates a Record without validation (storage hydration).
func Reconstruct(id, name string, strength Strength, pros, cons string) Record {
	return Record{id: id, name: name, strength: strength, pros: pros, cons: cons}
}

// ID returns the company identifier (e.g. "TCS").
func (r *Record) ID() string { return r.id }

// Name returns the display name.
func (r *Record) Name() string { return r.name }

// Strength returns the strength label.
func (r *Record) Strength() Strength { return r.strength }

// ProsText returns the raw delimited pros field.
func (r *Record) ProsText() string { return r.pros }

// ConsText returns the raw delimited cons field.
func (r *Record) ConsText() string { return r.cons }

// Pros returns the decoded pros list.
func (r *Record) Pros() []string { return SplitList(r.pros) }

// Cons returns the decoded cons list.
func (r *Record) Cons() []string { return SplitList(r.cons) }

// Summary is the listing projection of a Record.
type Summary struct {
	ID       string   `json:"id"`
	Name     string   `json:"company_name"`
	Strength Strength `json:"strength"`
}
