// Package prompt builds the instruction text sent to the language model.
package prompt

import (
	"strconv"
	"strings"
)

// placeholder is replaced with the user's topic everywhere it appears.
const placeholder = "%TOPIC%"

// taskCountPlaceholder is replaced with the configured task count.
const taskCountPlaceholder = "%TASK_COUNT%"

const template = `You are an expert tutor. Create a learning guide for the topic "%TOPIC%".

Title: a concise title in Title Case that names %TOPIC% directly.

Explanation: a thorough explanation of %TOPIC% for a motivated beginner. Use short
markdown sections: what it is, why it matters, core concepts, and how the pieces
fit together. Prefer concrete examples over abstractions.

Tasks: exactly %TASK_COUNT% practice tasks about %TOPIC%. Tag each task with a
difficulty of "beginner", "intermediate", or "advanced", covering all three levels.
Each task needs a short title, a one-paragraph description, and a single hint that
nudges without giving the answer away.

Respond with ONLY a valid JSON object in this exact shape, no markdown fences and
no prose before or after it:
{"title": "string", "explanation": "string", "tasks": [{"title": "string", "description": "string", "difficulty": "beginner|intermediate|advanced", "hint": "string"}], "related_topics": ["string"]}`

// Builder substitutes a topic into the fixed instruction template.
type Builder struct {
	taskCount int
}

// NewBuilder creates a builder that asks for taskCount tasks per guide.
func NewBuilder(taskCount int) *Builder {
	return &Builder{taskCount: taskCount}
}

// Build returns the full prompt for a topic. Pure string substitution;
// the template's only job is to bias the model toward the output shape.
func (b *Builder) Build(topic string) string {
	p := strings.ReplaceAll(template, placeholder, topic)
	return strings.ReplaceAll(p, taskCountPlaceholder, strconv.Itoa(b.taskCount))
}
