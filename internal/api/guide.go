package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ashureev/guidepost/internal/domain"
	"github.com/ashureev/guidepost/internal/ratelimit"
)

// maxRequestBodySize bounds POST bodies; guides are text, not uploads.
const maxRequestBodySize = 1 << 20

// availableEndpoints is returned on unmatched API routes.
var availableEndpoints = []string{
	"GET /api/topic?q=<topic>",
	"GET /api/topic/{slug}",
	"POST /api/topic",
	"GET /api/learn?topic=<topic>",
	"GET /api/health",
	"GET /api/info",
}

// RegisterRoutes registers all API routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/", h.Info)
		r.Get("/info", h.Info)
		r.Get("/health", h.Health)
		r.Get("/topic", h.GetGuide)
		r.Get("/topic/{slug}", h.GetStoredTopic)
		r.Post("/topic", h.CreateTopic)
		r.Get("/learn", h.Learn)
		r.NotFound(h.NotFound)
	})
}

// GetGuide produces a learning guide for ?q=<topic>. The pipeline is
// store lookup, then AI, then fallback; every step that fails hands over
// to the next, so a valid topic always gets a 200 with a guide.
func (h *Handler) GetGuide(w http.ResponseWriter, r *http.Request) {
	topic := strings.TrimSpace(r.URL.Query().Get("q"))
	if topic == "" {
		JSON(w, http.StatusBadRequest, errorResponse{
			Error:   errMissingTopic,
			Message: "query parameter q is required",
		})
		return
	}

	ok, rate := h.limiter.Admit()
	if !ok {
		h.rejectRateLimited(w, topic, rate)
		return
	}
	h.stats.Total.Add(1)

	// Serve a previously stored topic when one matches exactly.
	if stored, err := h.repo.GetTopicBySlug(r.Context(), domain.Slugify(topic)); err != nil {
		slog.Warn("store lookup failed, continuing without it", "topic", topic, "error", err)
	} else if stored != nil {
		h.stats.StoreHits.Add(1)
		JSON(w, http.StatusOK, h.assembleGuide(topic, stored.Guide(), sourceStore, "", rate))
		return
	}

	if h.aiEnabled() {
		res, err := h.gateway.Generate(r.Context(), topic)
		if err == nil {
			h.stats.AIGenerated.Add(1)
			JSON(w, http.StatusOK, h.assembleGuide(topic, res.Guide, sourceAI, res.Model, rate))
			return
		}
		slog.Warn("ai generation failed, serving fallback", "topic", topic, "error", err)
	}

	guide, source := h.fb.Generate(topic)
	h.stats.FallbackServed.Add(1)
	JSON(w, http.StatusOK, h.assembleGuide(topic, guide, source, "", rate))
}

// Learn is the strict variant of GetGuide: it requires the AI credential
// and reports 503 rather than silently degrading, though the payload still
// carries a fallback guide.
func (h *Handler) Learn(w http.ResponseWriter, r *http.Request) {
	topic := strings.TrimSpace(r.URL.Query().Get("topic"))
	if topic == "" {
		JSON(w, http.StatusBadRequest, errorResponse{
			Error:   errMissingTopic,
			Message: "query parameter topic is required",
		})
		return
	}

	ok, rate := h.limiter.Admit()
	if !ok {
		h.rejectRateLimited(w, topic, rate)
		return
	}
	h.stats.Total.Add(1)

	if !h.aiEnabled() {
		guide, _ := h.fb.Generate(topic)
		h.stats.FallbackServed.Add(1)
		JSON(w, http.StatusServiceUnavailable, errorResponse{
			Error:    errAINotConfigured,
			Message:  "no AI credential is configured; a fallback guide is included",
			Fallback: guide,
		})
		return
	}

	res, err := h.gateway.Generate(r.Context(), topic)
	if err != nil {
		slog.Warn("ai generation failed, serving fallback", "topic", topic, "error", err)
		guide, source := h.fb.Generate(topic)
		h.stats.FallbackServed.Add(1)
		JSON(w, http.StatusOK, h.assembleGuide(topic, guide, source, "", rate))
		return
	}

	h.stats.AIGenerated.Add(1)
	JSON(w, http.StatusOK, h.assembleGuide(topic, res.Guide, sourceAI, res.Model, rate))
}

// createTopicRequest is the POST /api/topic body.
type createTopicRequest struct {
	Title       string        `json:"title"`
	Explanation string        `json:"explanation"`
	Tasks       []domain.Task `json:"tasks"`
	Stream      string        `json:"stream,omitempty"`
	Category    string        `json:"category,omitempty"`
}

// CreateTopic persists a topic with its tasks.
func (h *Handler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var req createTopicRequest
	if err := decodeJSON(r, &req); err != nil {
		JSON(w, http.StatusBadRequest, errorResponse{
			Error:   errInvalidBody,
			Message: "request body must be a JSON topic object",
		})
		return
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Explanation) == "" {
		JSON(w, http.StatusBadRequest, errorResponse{
			Error:   errMissingFields,
			Message: "title and explanation are required",
		})
		return
	}

	tasks := req.Tasks
	for i := range tasks {
		if !domain.ValidDifficulty(tasks[i].Difficulty) {
			tasks[i].Difficulty = domain.DifficultyIntermediate
		}
	}

	id, slug, err := h.repo.CreateTopic(r.Context(), &domain.Topic{
		Title:       req.Title,
		Explanation: req.Explanation,
		Stream:      req.Stream,
		Category:    req.Category,
		Tasks:       tasks,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		slog.Error("Failed to store topic", "title", req.Title, "error", err)
		JSON(w, http.StatusInternalServerError, errorResponse{
			Error:   errStorageFailed,
			Message: "could not store the topic",
		})
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"topic_id": id,
		"slug":     slug,
	})
}

// GetStoredTopic serves a persisted topic by slug.
func (h *Handler) GetStoredTopic(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	topic, err := h.repo.GetTopicBySlug(r.Context(), slug)
	if err != nil {
		slog.Error("Failed to load topic", "slug", slug, "error", err)
		JSON(w, http.StatusInternalServerError, errorResponse{
			Error:   errStorageFailed,
			Message: "could not load the topic",
		})
		return
	}
	if topic == nil {
		JSON(w, http.StatusNotFound, errorResponse{
			Error:   errNotFound,
			Message: "no topic with slug " + slug,
		})
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"topic":   topic,
	})
}

// NotFound answers unmatched API routes with the endpoint catalog.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusNotFound, errorResponse{
		Error:     errNotFound,
		Message:   r.Method + " " + r.URL.Path + " is not a known endpoint",
		Available: availableEndpoints,
	})
}

// rejectRateLimited answers 429 with a retry hint and a fallback guide, so
// even throttled clients get content to render.
func (h *Handler) rejectRateLimited(w http.ResponseWriter, topic string, rate ratelimit.State) {
	h.stats.RateLimited.Add(1)
	guide, _ := h.fb.Generate(topic)
	JSON(w, http.StatusTooManyRequests, errorResponse{
		Error:      errRateLimitExceeded,
		Message:    fmt.Sprintf("limit of %d requests per window reached; retry in %d seconds", rate.Limit, rate.RetryAfter),
		RetryAfter: rate.RetryAfter,
		Fallback:   guide,
	})
}

func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
