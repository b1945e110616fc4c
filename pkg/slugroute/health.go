package slugroute

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"

	defaultHealthTimeout = 5 * time.Second
)

// Checks maps a dependency name to its probe, e.g. pgstore.Healthcheck(pool).
type Checks map[string]func(context.Context) error

// HealthResponse is the JSON body written by Readiness.
type HealthResponse struct {
	Checks map[string]CheckResult `json:"checks,omitempty"`
	Status string                 `json:"status"`
}

type CheckResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Liveness always answers 200.
func Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: StatusHealthy})
}

// Readiness runs every check in parallel and answers 503 when any fails.
func Readiness(checks Checks, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), defaultHealthTimeout)
		defer cancel()

		resp := HealthResponse{Status: StatusHealthy, Checks: make(map[string]CheckResult, len(checks))}
		var mu sync.Mutex

		// Checks never return their error to the group, so every probe runs to completion.
		var g errgroup.Group
		for name, check := range checks {
			g.Go(func() error {
				result := CheckResult{Status: StatusHealthy}
				if err := check(ctx); err != nil {
					result = CheckResult{Status: StatusUnhealthy, Error: err.Error()}
					if log != nil {
						log.WarnContext(ctx, "health check failed", slog.String("check", name), slog.Any("error", err))
					}
				}

				mu.Lock()
				defer mu.Unlock()
				resp.Checks[name] = result
				if result.Status == StatusUnhealthy {
					resp.Status = StatusUnhealthy
				}
				return nil
			})
		}
		_ = g.Wait()

		status := http.StatusOK
		if resp.Status == StatusUnhealthy {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, resp)
	}
}
