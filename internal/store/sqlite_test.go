package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ashureev/guidepost/internal/domain"
)

func newTestStore(t *testing.T) Repository {
	t.Helper()
	repo, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return repo
}

func testTopic(title string) *domain.Topic {
	return &domain.Topic{
		Title:       title,
		Stream:      "programming",
		Category:    "languages",
		Explanation: "A long-form explanation.",
		Tasks: []domain.Task{
			{Title: "First", Description: "Do the first thing", Difficulty: domain.DifficultyBeginner, Hint: "start small"},
			{Title: "Second", Description: "Do the harder thing", Difficulty: domain.DifficultyAdvanced, Hint: "read docs"},
		},
	}
}

func TestCreateAndGetTopic(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	id, slug, err := repo.CreateTopic(ctx, testTopic("Go Basics"))
	if err != nil {
		t.Fatalf("CreateTopic: %v", err)
	}
	if id == 0 {
		t.Error("Expected a non-zero topic id")
	}
	if slug != "go-basics" {
		t.Errorf("Expected slug go-basics, got %q", slug)
	}

	topic, err := repo.GetTopicBySlug(ctx, "go-basics")
	if err != nil {
		t.Fatalf("GetTopicBySlug: %v", err)
	}
	if topic == nil {
		t.Fatal("Expected a stored topic")
	}
	if topic.Title != "Go Basics" {
		t.Errorf("Expected title Go Basics, got %q", topic.Title)
	}
	if len(topic.Tasks) != 2 {
		t.Fatalf("Expected 2 tasks with the topic, got %d", len(topic.Tasks))
	}
	if topic.Tasks[0].Difficulty != domain.DifficultyBeginner {
		t.Errorf("Tasks should come back in insert order, got %q first", topic.Tasks[0].Difficulty)
	}
	if topic.CreatedAt.IsZero() {
		t.Error("Expected a created_at timestamp")
	}
}

func TestGetMissingTopic(t *testing.T) {
	repo := newTestStore(t)

	topic, err := repo.GetTopicBySlug(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetTopicBySlug: %v", err)
	}
	if topic != nil {
		t.Errorf("Expected nil for a missing slug, got %+v", topic)
	}
}

// Duplicate titles must produce distinct slugs via a numeric suffix. This
// pins the collision policy.
func TestDuplicateTitleGetsDistinctSlug(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	_, first, err := repo.CreateTopic(ctx, testTopic("Go Basics"))
	if err != nil {
		t.Fatalf("First CreateTopic: %v", err)
	}
	_, second, err := repo.CreateTopic(ctx, testTopic("Go Basics"))
	if err != nil {
		t.Fatalf("Second CreateTopic: %v", err)
	}
	_, third, err := repo.CreateTopic(ctx, testTopic("Go Basics"))
	if err != nil {
		t.Fatalf("Third CreateTopic: %v", err)
	}

	if first != "go-basics" || second != "go-basics-2" || third != "go-basics-3" {
		t.Errorf("Expected go-basics, go-basics-2, go-basics-3; got %q, %q, %q", first, second, third)
	}

	// Both rows must be retrievable independently.
	for _, slug := range []string{first, second, third} {
		topic, err := repo.GetTopicBySlug(ctx, slug)
		if err != nil || topic == nil {
			t.Errorf("Slug %q should resolve to a topic, got %v / %v", slug, topic, err)
		}
	}
}

func TestCountTopics(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	n, err := repo.CountTopics(ctx)
	if err != nil {
		t.Fatalf("CountTopics: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected 0 topics in a fresh store, got %d", n)
	}

	if _, _, err := repo.CreateTopic(ctx, testTopic("One")); err != nil {
		t.Fatalf("CreateTopic: %v", err)
	}
	if _, _, err := repo.CreateTopic(ctx, testTopic("Two")); err != nil {
		t.Fatalf("CreateTopic: %v", err)
	}

	n, err = repo.CountTopics(ctx)
	if err != nil {
		t.Fatalf("CountTopics: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 topics, got %d", n)
	}
}

func TestSlugFallsBackForSymbolOnlyTitle(t *testing.T) {
	repo := newTestStore(t)

	_, slug, err := repo.CreateTopic(context.Background(), testTopic("!!!"))
	if err != nil {
		t.Fatalf("CreateTopic: %v", err)
	}
	if slug != "topic" {
		t.Errorf("Expected fallback slug topic, got %q", slug)
	}
}
