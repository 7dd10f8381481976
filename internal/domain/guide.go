// Package domain defines the core types shared across the service.
package domain

// Task difficulty labels. Every task carries exactly one of these.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Task is a single practice exercise inside a learning guide.
type Task struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	Hint        string `json:"hint"`
}

// LearningGuide is the canonical output record every code path produces:
// a title, a structured explanation, and 3-4 tasks spanning difficulty levels.
type LearningGuide struct {
	Title         string   `json:"title"`
	Explanation   string   `json:"explanation"`
	Tasks         []Task   `json:"tasks"`
	Stream        string   `json:"stream,omitempty"`
	Category      string   `json:"category,omitempty"`
	RelatedTopics []string `json:"related_topics,omitempty"`
}

// ValidDifficulty reports whether s is one of the known difficulty labels.
func ValidDifficulty(s string) bool {
	return s == DifficultyBeginner || s == DifficultyIntermediate || s == DifficultyAdvanced
}
