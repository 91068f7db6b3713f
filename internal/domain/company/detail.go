package company

import (
	"encoding/json"
	"maps"
)

// Field names of the merged detail view. The record supplies these first;
// the document's company object may overwrite any of them except pros and cons.
const (
	FieldID       = "id"
	FieldName     = "company_name"
	FieldStrength = "strength"
	FieldPros     = "pros"
	FieldCons     = "cons"
)

// Detail is the flattened view of a record merged with its companion document.
type Detail struct {
	fields map[string]any
	pros   []string
	cons   []string
}

// Merge combines a record with its companion document.
//
// Precedence, lowest to highest:
//  1. record scalars (id, company_name, strength)
//  2. members of the document's company object (overlay wins on collision)
//  3. pros and cons, always decoded from the record's delimited fields
func Merge(rec Record, doc Document) Detail {
	fields := make(map[string]any, len(doc.company)+3)
	fields[FieldID] = rec.id
	fields[FieldName] = rec.name
	fields[FieldStrength] = string(rec.strength)

	for k, v := range doc.company {
		if k == FieldPros || k == FieldCons {
			continue
		}
		fields[k] = v
	}

	return Detail{
		fields: fields,
		pros:   rec.Pros(),
		cons:   rec.Cons(),
	}
}

// Fields returns a copy of the scalar and overlay fields (without pros and cons).
func (d *Detail) Fields() map[string]any { return maps.Clone(d.fields) }

// Get returns a single merged field.
func (d *Detail) Get(key string) (any, bool) {
	v, ok := d.fields[key]
	return v, ok
}

// Pros returns the decoded pros list.
func (d *Detail) Pros() []string { return d.pros }

// Cons returns the decoded cons list.
func (d *Detail) Cons() []string { return d.cons }

// MarshalJSON renders the detail as a single flat JSON object.
func (d Detail) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.fields)+2)
	maps.Copy(out, d.fields)
	out[FieldPros] = nonNil(d.pros)
	out[FieldCons] = nonNil(d.cons)
	return json.Marshal(out)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
