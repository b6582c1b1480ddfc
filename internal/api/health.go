// Copyright (c) 2026 GuestRadar. All rights reserved.

// Package api wires the HTTP router, middleware chain, and domain handlers
// into a runnable server, and exposes the orchestration health probes.
package api

import (
	"log/slog"
	"net/http"

	"github.com/guestradar/guestradar/internal/platform/respond"
)

// DependencyCheck pings one backing service. A nil check is skipped, which
// lets a deployment without Redis still report ready.
type DependencyCheck struct {
	Name  string
	Check func() error
}

type healthHandler struct {
	checks []DependencyCheck
	logger *slog.Logger
}

// NewHealthHandlers creates the /health and /ready http.HandlerFuncs.
func NewHealthHandlers(checks []DependencyCheck, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{checks: checks, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness handles GET /health: 200 whenever the process is serving.
func (handler *healthHandler) liveness(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{"status": "ok"})
}

// readiness handles GET /ready: 200 only when every dependency answers.
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	type probeResult struct {
		Name  string `json:"name"`
		IsOK  bool   `json:"ok"`
		Error string `json:"error,omitempty"`
	}

	results := make([]probeResult, 0, len(handler.checks))
	ready := true

	for _, dependency := range handler.checks {
		if dependency.Check == nil {
			continue
		}

		result := probeResult{Name: dependency.Name, IsOK: true}
		if err := dependency.Check(); err != nil {
			result.IsOK = false
			result.Error = err.Error()
			ready = false
			handler.logger.Error("readiness_check_failed",
				slog.String("dependency", dependency.Name),
				slog.Any("error", err),
			)
		}
		results = append(results, result)
	}

	status := "ready"
	if !ready {
		status = "degraded"
		// respond.OK always sends 200, so write the 503 header here first.
		writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		writer.WriteHeader(http.StatusServiceUnavailable)
	}

	respond.OK(writer, map[string]any{
		"status": status,
		"checks": results,
	})
}
