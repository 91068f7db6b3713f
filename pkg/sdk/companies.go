package finsight

import (
	"context"
	"net/url"
	"time"

	gen "github.com/kailas-cloud/finsight/internal/transport/api"
)

// CompanyService reads companies.
type CompanyService struct {
	c *Client
}

// List returns every analysed company ordered by identifier.
func (s *CompanyService) List(ctx context.Context) (_ []Company, err error) {
	start := time.Now()
	defer func() { s.c.obs.observe("companies.list", start, err) }()

	var resp []gen.CompanySummary
	if err = s.c.do(ctx, "/api/companies", &resp); err != nil {
		return nil, err
	}
	out := make([]Company, 0, len(resp))
	for _, cs := range resp {
		out = append(out, Company{ID: cs.Id, Name: cs.CompanyName, Strength: Strength(cs.Strength)})
	}
	return out, nil
}

// Get returns the merged detail of one company. A missing analysis row yields
// ErrRecordNotFound; a missing profile document yields ErrDocumentNotFound.
// Both match ErrNotFound.
func (s *CompanyService) Get(ctx context.Context, id string) (_ Detail, err error) {
	start := time.Now()
	defer func() { s.c.obs.observe("companies.get", start, err) }()

	if id == "" {
		return nil, ErrInvalidIdentifier
	}
	var resp gen.CompanyDetail
	if err = s.c.do(ctx, "/api/companies/"+url.PathEscape(id), &resp); err != nil {
		return nil, err
	}
	return Detail(resp), nil
}
