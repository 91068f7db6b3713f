package company

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/kailas-cloud/finsight/internal/domain"
)

// Document is the companion profile of a company as delivered by the upstream API.
// Numbers are kept as json.Number so they serialize back unchanged.
type Document struct {
	id       string
	company  map[string]any
	analysis map[string]any
	data     map[string]any
}

// ParseDocument decodes a raw companion document.
// The root must be a JSON object; "company", when present and not null, must be an object.
// Any violation wraps domain.ErrMalformedDocument.
func ParseDocument(id string, raw []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var root map[string]any
	if err := dec.Decode(&root); err != nil {
		return Document{}, fmt.Errorf("document %s: %w: %w", id, domain.ErrMalformedDocument, err)
	}
	if root == nil {
		return Document{}, fmt.Errorf("document %s: root is null: %w", id, domain.ErrMalformedDocument)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Document{}, fmt.Errorf("document %s: trailing data: %w", id, domain.ErrMalformedDocument)
	}

	doc := Document{id: id}

	switch c := root["company"].(type) {
	case nil:
	case map[string]any:
		doc.company = c
	default:
		return Document{}, fmt.Errorf("document %s: company must be an object, got %T: %w",
			id, c, domain.ErrMalformedDocument)
	}

	// analysis and data are only read by the analyzer, which tolerates gaps.
	doc.analysis, _ = root["analysis"].(map[string]any)
	doc.data, _ = root["data"].(map[string]any)

	return doc, nil
}

// NewDocument builds a Document from already-decoded sections (tests, fixtures).
func NewDocument(id string, company, analysis, data map[string]any) Document {
	return Document{id: id, company: company, analysis: analysis, data: data}
}

// ID returns the identifier the document was loaded for.
func (d *Document) ID() string { return d.id }

// Company returns the descriptive "company" object. Nil when absent.
func (d *Document) Company() map[string]any { return d.company }

// Analysis returns the "analysis" object. Nil when absent.
func (d *Document) Analysis() map[string]any { return d.analysis }

// Data returns the "data" object holding the financial statements. Nil when absent.
func (d *Document) Data() map[string]any { return d.data }

// CompanyString returns a string member of the company object, or "" when absent or not a string.
func (d *Document) CompanyString(key string) string {
	s, _ := d.company[key].(string)
	return s
}
