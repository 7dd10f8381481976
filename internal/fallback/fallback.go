// Package fallback produces deterministic, schema-valid learning guides
// without calling any external service. It is the path of last resort and
// therefore never fails.
package fallback

import (
	"fmt"
	"strings"

	"github.com/ashureev/guidepost/internal/domain"
)

// Source tags distinguish hand-authored from templated content.
const (
	SourceCurated     = "curated"
	SourceSynthesized = "synthesized"
)

// Generator turns any topic string into a complete learning guide.
// Same topic in, identical guide out: no randomness, no clock.
type Generator struct{}

// NewGenerator creates a fallback content generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate returns a guide for the topic and a source tag. The normalized
// topic is matched as a case-insensitive substring against the curated
// table, first entry wins; anything else gets a synthesized guide.
func (g *Generator) Generate(topic string) (*domain.LearningGuide, string) {
	needle := strings.ToLower(strings.TrimSpace(topic))

	for _, e := range curated {
		if strings.Contains(needle, e.key) {
			guide := e.guide
			guide.Tasks = append([]domain.Task(nil), e.guide.Tasks...)
			guide.RelatedTopics = append([]string(nil), e.guide.RelatedTopics...)
			return &guide, SourceCurated
		}
	}

	return synthesize(topic), SourceSynthesized
}

// synthesize builds a generic guide with the topic interpolated into a
// fixed multi-section template.
func synthesize(topic string) *domain.LearningGuide {
	display := strings.TrimSpace(topic)
	title := titleCase(display)

	explanation := fmt.Sprintf(
		"## What is %[1]s?\n\n"+
			"%[2]s is a subject worth a structured approach: a clear definition, the "+
			"handful of ideas everything else builds on, and steady practice.\n\n"+
			"## Core concepts\n\n"+
			"Start by collecting the vocabulary of %[1]s. Every field has five to ten "+
			"terms that appear in almost every explanation; list them, define each in "+
			"your own words, and note how they relate.\n\n"+
			"## Learning path\n\n"+
			"1. **Orient**: read two or three overviews of %[1]s from different sources "+
			"and note where they agree.\n"+
			"2. **Ground**: work through one introductory resource end to end, taking "+
			"notes in your own words.\n"+
			"3. **Apply**: build or do something small that uses %[1]s for real.\n"+
			"4. **Deepen**: pick the sub-area of %[1]s that interested you most and "+
			"repeat the cycle there.\n\n"+
			"## Use cases\n\n"+
			"Look for where %[1]s shows up in practice: who uses it daily, what "+
			"problems it solves, and what people did before it existed.\n\n"+
			"## Tools\n\n"+
			"Identify the standard tools practitioners of %[1]s reach for and get one "+
			"of them working early, even superficially.\n\n"+
			"## Tips\n\n"+
			"Spaced repetition beats cramming, and explaining %[1]s to someone else is "+
			"the fastest way to find the gaps in your understanding.\n\n"+
			"## Next steps\n\n"+
			"Find an active community around %[1]s and read what practitioners argue "+
			"about; the arguments mark the edges of the field.",
		display, title)

	return &domain.LearningGuide{
		Title:       title,
		Explanation: explanation,
		Tasks: []domain.Task{
			{
				Title:       "Research and define",
				Description: fmt.Sprintf("Research %s and write a one-page summary: what it is, why it exists, and the three most important terms with definitions in your own words.", display),
				Difficulty:  domain.DifficultyBeginner,
				Hint:        fmt.Sprintf("Compare at least two independent sources on %s; where they disagree is worth a note.", display),
			},
			{
				Title:       "Build a concept map",
				Description: fmt.Sprintf("Draw a concept map of %s: the core ideas as nodes, labeled arrows for how they relate, and at least two links out to neighboring subjects.", display),
				Difficulty:  domain.DifficultyIntermediate,
				Hint:        fmt.Sprintf("Start from the term that appears most often in material about %s and work outward.", display),
			},
			{
				Title:       "Design a practical application",
				Description: fmt.Sprintf("Design a small, concrete project that applies %s, including what you would build, what success looks like, and what you expect to find hard.", display),
				Difficulty:  domain.DifficultyAdvanced,
				Hint:        fmt.Sprintf("Scope it to a weekend; the goal is contact with the real difficulties of %s, not a finished product.", display),
			},
		},
	}
}

// titleCase uppercases the first letter of each space-separated word.
// strings.Title is deprecated and unicode-aware casing is overkill for
// display titles, so this is done by hand.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		if len(r) > 0 {
			r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
