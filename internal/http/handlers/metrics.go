package handlers

import "net/http"

// ComplianceStats reports the 24h retry and residual non-compliance rates
// from the render log.
func (a *App) ComplianceStats(w http.ResponseWriter, r *http.Request) {
	if a.RenderLog == nil {
		a.error(w, http.StatusServiceUnavailable, "telemetry_disabled", "render log is not configured")
		return
	}
	stats, err := a.RenderLog.Stats(r.Context())
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to query compliance stats")
		return
	}
	a.json(w, http.StatusOK, stats)
}
