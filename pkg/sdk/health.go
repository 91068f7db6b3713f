package finsight

import (
	"context"
	"net/http"
	"time"

	gen "github.com/kailas-cloud/finsight/internal/transport/api"
)

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status string            // "ok", "degraded"
	Checks map[string]string // component → "ok"/"error"
}

// Health checks the health of all server components. A degraded server
// answers 503 with a body, so that case is not an error.
func (c *Client) Health(ctx context.Context) (hs HealthStatus, err error) {
	start := time.Now()
	defer func() { c.obs.observe("health", start, err) }()

	var resp gen.HealthResponse
	if err = c.do(ctx, "/health", &resp, http.StatusServiceUnavailable); err != nil {
		return HealthStatus{}, err
	}
	checks := make(map[string]string, len(resp.Checks))
	for k, v := range resp.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{Status: string(resp.Status), Checks: checks}, nil
}
