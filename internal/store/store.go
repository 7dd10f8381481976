// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"

	"github.com/ashureev/guidepost/internal/domain"
)

// Repository defines the interface for persisting topics and their tasks.
type Repository interface {
	// CreateTopic inserts a topic and its tasks in a single transaction.
	// The topic's slug is derived from the title; duplicate titles get a
	// numeric suffix so every stored slug is unique.
	CreateTopic(ctx context.Context, topic *domain.Topic) (id int64, slug string, err error)

	// GetTopicBySlug retrieves a topic with its tasks, or nil if absent.
	GetTopicBySlug(ctx context.Context, slug string) (*domain.Topic, error)

	// CountTopics returns the number of stored topics.
	CountTopics(ctx context.Context) (int64, error)

	// Ping verifies database connectivity.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}
