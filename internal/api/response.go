package api

import (
	"time"

	"github.com/ashureev/guidepost/internal/domain"
	"github.com/ashureev/guidepost/internal/ratelimit"
)

// Guide source tags as they appear in responses.
const (
	sourceAI    = "ai"
	sourceStore = "store"
)

// Stable machine-readable error kinds.
const (
	errMissingTopic      = "missing_topic"
	errMissingFields     = "missing_fields"
	errInvalidBody       = "invalid_body"
	errRateLimitExceeded = "rate_limit_exceeded"
	errAINotConfigured   = "ai_not_configured"
	errStorageFailed     = "storage_failed"
	errNotFound          = "not_found"
)

// serverInfo describes the serving process in every success payload.
type serverInfo struct {
	AIEnabled bool   `json:"ai_enabled"`
	Timestamp string `json:"timestamp"`
}

// guideResponse is the success payload for guide requests.
type guideResponse struct {
	Success   bool                  `json:"success"`
	Topic     string                `json:"topic"`
	Guide     *domain.LearningGuide `json:"guide"`
	Source    string                `json:"source"`
	Model     string                `json:"model,omitempty"`
	RateLimit ratelimit.State       `json:"rate_limit"`
	Server    serverInfo            `json:"server"`
}

// errorResponse is the payload for every non-200 status. When the request
// carried a topic it also ships a fallback guide, so clients always have
// something to render.
type errorResponse struct {
	Error      string                `json:"error"`
	Message    string                `json:"message,omitempty"`
	RetryAfter int                   `json:"retry_after,omitempty"`
	Fallback   *domain.LearningGuide `json:"fallback,omitempty"`
	Available  []string              `json:"available,omitempty"`
}

// assembleGuide merges a guide with rate-limit and server metadata into
// the final payload.
func (h *Handler) assembleGuide(topic string, guide *domain.LearningGuide, source, model string, rate ratelimit.State) guideResponse {
	return guideResponse{
		Success:   true,
		Topic:     topic,
		Guide:     guide,
		Source:    source,
		Model:     model,
		RateLimit: rate,
		Server: serverInfo{
			AIEnabled: h.aiEnabled(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}
}
