package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

const healthCheckTimeout = 5 * time.Second

// Health returns the health status of the API and its dependencies,
// including current rate-limiter usage.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	rate := h.limiter.Snapshot()

	status := map[string]interface{}{
		"status":               "healthy",
		"checks":               map[string]string{"api": "ok"},
		"ai_configured":        h.aiEnabled(),
		"requests_this_minute": rate.Current,
		"limit":                rate.Limit,
	}
	statusCode := http.StatusOK

	if err := h.repo.Ping(ctx); err != nil {
		slog.Error("Health check failed", "error", err)
		status["status"] = "degraded"
		status["checks"].(map[string]string)["database"] = "unreachable"
		statusCode = http.StatusServiceUnavailable
	} else {
		status["checks"].(map[string]string)["database"] = "ok"
	}

	JSON(w, statusCode, status)
}

// Info returns a capability description of the service plus usage counters.
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	model := ""
	if h.aiEnabled() {
		model = h.gateway.ModelName()
	}

	stored, err := h.repo.CountTopics(r.Context())
	if err != nil {
		slog.Error("Failed to count stored topics", "error", err)
		stored = -1
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"name":        "guidepost",
		"description": "turns a free-text topic into a structured learning guide",
		"endpoints":   availableEndpoints,
		"ai": map[string]interface{}{
			"configured": h.aiEnabled(),
			"model":      model,
		},
		"rate_limit": map[string]interface{}{
			"limit":          h.cfg.RateLimitMax,
			"window_seconds": int(h.cfg.RateLimitWindow.Seconds()),
		},
		"stats": map[string]int64{
			"requests_total":  h.stats.Total.Load(),
			"ai_generated":    h.stats.AIGenerated.Load(),
			"fallback_served": h.stats.FallbackServed.Load(),
			"store_hits":      h.stats.StoreHits.Load(),
			"topics_stored":   stored,
		},
	})
}
