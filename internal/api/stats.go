package api

import (
	"log/slog"
	"sync/atomic"
)

// Stats counts request outcomes for the session summary and /api/info.
type Stats struct {
	Total          atomic.Int64
	AIGenerated    atomic.Int64
	FallbackServed atomic.Int64
	StoreHits      atomic.Int64
	RateLimited    atomic.Int64
}

// LogSummary writes the session counters, called once at shutdown.
func (s *Stats) LogSummary() {
	slog.Info("Session summary",
		"requests_total", s.Total.Load(),
		"ai_generated", s.AIGenerated.Load(),
		"fallback_served", s.FallbackServed.Load(),
		"store_hits", s.StoreHits.Load(),
		"rate_limited", s.RateLimited.Load(),
	)
}
