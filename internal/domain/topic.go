package domain

import (
	"strings"
	"time"
)

// Topic is a persisted learning topic with its owned tasks.
type Topic struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Stream      string    `json:"stream,omitempty"`
	Category    string    `json:"category,omitempty"`
	Explanation string    `json:"explanation"`
	Tasks       []Task    `json:"tasks"`
	CreatedAt   time.Time `json:"created_at"`
}

// Guide converts a persisted topic into the canonical guide shape.
func (t *Topic) Guide() *LearningGuide {
	return &LearningGuide{
		Title:       t.Title,
		Explanation: t.Explanation,
		Tasks:       t.Tasks,
		Stream:      t.Stream,
		Category:    t.Category,
	}
}

// Slugify derives a URL-safe slug from a title: lowercase, runs of
// non-alphanumeric characters collapsed to a single hyphen.
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	pendingSep := false
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			pendingSep = true
		}
	}
	return b.String()
}
