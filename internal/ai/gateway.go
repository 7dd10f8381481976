// Package ai calls the Gemini API and normalizes its free-text output into
// the canonical learning-guide shape. Every error from this package is
// advisory: callers must degrade to the fallback generator.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/ashureev/guidepost/internal/domain"
	"github.com/ashureev/guidepost/internal/fallback"
	"github.com/ashureev/guidepost/internal/prompt"
)

// Error kinds callers branch on with errors.Is. All three mean "use the
// fallback generator"; they differ only for logging and the health surface.
var (
	// ErrNotConfigured means no API credential is available.
	ErrNotConfigured = errors.New("ai not configured")
	// ErrGeneration means the upstream call itself failed.
	ErrGeneration = errors.New("ai generation failed")
	// ErrParse means the model responded but not with usable JSON.
	ErrParse = errors.New("ai response is not valid json")
)

// textGenerator abstracts the model call so tests can stub it.
type textGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Result is a normalized guide plus generation metadata.
type Result struct {
	Guide       *domain.LearningGuide
	Model       string
	GeneratedAt time.Time
}

// Gateway generates learning guides through the Gemini API.
type Gateway struct {
	client    *genai.Client
	model     textGenerator
	modelName string
	prompts   *prompt.Builder
	fb        *fallback.Generator
}

// NewGateway creates a gateway backed by the Gemini API. Returns
// ErrNotConfigured when apiKey is empty so main can run without AI.
func NewGateway(ctx context.Context, apiKey, modelName string, prompts *prompt.Builder, fb *fallback.Generator) (*Gateway, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.4)

	return &Gateway{
		client:    client,
		model:     &geminiModel{model: model},
		modelName: modelName,
		prompts:   prompts,
		fb:        fb,
	}, nil
}

// Close releases the underlying API client.
func (g *Gateway) Close() {
	if g.client != nil {
		if err := g.client.Close(); err != nil {
			slog.Warn("failed to close gemini client", "error", err)
		}
	}
}

// ModelName returns the configured model identifier.
func (g *Gateway) ModelName() string {
	return g.modelName
}

// Generate asks the model for a guide on the topic and normalizes the
// response. Missing fields are backfilled from the fallback generator
// rather than rejected; availability wins over strict validation.
func (g *Gateway) Generate(ctx context.Context, topic string) (*Result, error) {
	if g == nil || g.model == nil {
		return nil, ErrNotConfigured
	}

	raw, err := g.model.GenerateText(ctx, g.prompts.Build(topic))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	// Extraction is the identity when the stripped text is already an exact
	// object, and discards surrounding prose otherwise.
	text := ExtractJSONObject(StripCodeFence(raw))
	if text == "" {
		return nil, fmt.Errorf("%w: no json object in response", ErrParse)
	}

	var guide domain.LearningGuide
	if err := json.Unmarshal([]byte(text), &guide); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	g.normalize(topic, &guide)

	return &Result{
		Guide:       &guide,
		Model:       g.modelName,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// normalize backfills missing fields from the fallback guide for the same
// topic and clamps the task list to the schema bounds.
func (g *Gateway) normalize(topic string, guide *domain.LearningGuide) {
	defaults, _ := g.fb.Generate(topic)

	if strings.TrimSpace(guide.Title) == "" {
		guide.Title = defaults.Title
	}
	if strings.TrimSpace(guide.Explanation) == "" {
		guide.Explanation = defaults.Explanation
	}
	if len(guide.Tasks) == 0 {
		guide.Tasks = defaults.Tasks
	}
	if len(guide.Tasks) > 4 {
		guide.Tasks = guide.Tasks[:4]
	}
	for i := range guide.Tasks {
		if !domain.ValidDifficulty(guide.Tasks[i].Difficulty) {
			guide.Tasks[i].Difficulty = domain.DifficultyIntermediate
		}
	}
}

// geminiModel adapts the genai SDK to the textGenerator interface.
type geminiModel struct {
	model *genai.GenerativeModel
}

func (m *geminiModel) GenerateText(ctx context.Context, p string) (string, error) {
	resp, err := m.model.GenerateContent(ctx, genai.Text(p))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
	}
	return b.String(), nil
}
