package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ashureev/guidepost/internal/domain"
	"github.com/ashureev/guidepost/internal/shared"
	_ "modernc.org/sqlite"
)

// maxSlugAttempts bounds the suffix search for duplicate titles.
const maxSlugAttempts = 50

// SQLiteStore implements Repository using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed repository.
func NewSQLite(dbPath string) (Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	PRAGMA foreign_keys = ON;
	CREATE TABLE IF NOT EXISTS topics (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		stream TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		explanation TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_topics_slug ON topics(slug);

	CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		topic_id INTEGER NOT NULL REFERENCES topics(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		difficulty TEXT NOT NULL,
		hint TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_tasks_topic ON tasks(topic_id);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// CreateTopic inserts a topic and its tasks in one transaction so a failed
// task insert cannot leave an orphaned topic behind. Duplicate titles get
// a "-2", "-3", ... slug suffix until the insert succeeds. Retries with
// exponential backoff when SQLite reports the database as busy.
func (s *SQLiteStore) CreateTopic(ctx context.Context, topic *domain.Topic) (int64, string, error) {
	maxRetries := 3
	baseDelay := 100 * time.Millisecond

	var id int64
	var slug string
	var err error
	for i := 0; i < maxRetries; i++ {
		id, slug, err = s.createTopicOnce(ctx, topic)
		if err == nil {
			return id, slug, nil
		}
		if shared.IsSQLiteConflictError(err) && i < maxRetries-1 {
			delay := baseDelay * time.Duration(1<<i)
			slog.Debug("CreateTopic hit a busy database, retrying",
				"title", topic.Title,
				"attempt", i+1,
				"delay", delay)
			time.Sleep(delay)
			continue
		}
		break
	}
	return 0, "", err
}

func (s *SQLiteStore) createTopicOnce(ctx context.Context, topic *domain.Topic) (int64, string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, "", fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			slog.Warn("failed to roll back topic insert", "error", rbErr)
		}
	}()

	base := domain.Slugify(topic.Title)
	if base == "" {
		base = "topic"
	}

	createdAt := topic.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	var id int64
	var slug string
	for i := 1; i <= maxSlugAttempts; i++ {
		slug = base
		if i > 1 {
			slug = fmt.Sprintf("%s-%d", base, i)
		}

		res, insErr := tx.ExecContext(ctx,
			`INSERT INTO topics (title, slug, stream, category, explanation, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			topic.Title, slug, topic.Stream, topic.Category, topic.Explanation, createdAt.Unix(),
		)
		if insErr == nil {
			id, err = res.LastInsertId()
			if err != nil {
				return 0, "", fmt.Errorf("topic insert id: %w", err)
			}
			break
		}
		if !shared.IsSQLiteUniqueConstraintError(insErr) {
			return 0, "", fmt.Errorf("insert topic: %w", insErr)
		}
		if i == maxSlugAttempts {
			return 0, "", fmt.Errorf("insert topic: no free slug for %q after %d attempts", base, maxSlugAttempts)
		}
	}

	for _, task := range topic.Tasks {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO tasks (topic_id, title, description, difficulty, hint)
			 VALUES (?, ?, ?, ?, ?)`,
			id, task.Title, task.Description, task.Difficulty, task.Hint,
		); err != nil {
			return 0, "", fmt.Errorf("insert task: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, "", fmt.Errorf("commit topic insert: %w", err)
	}

	return id, slug, nil
}

// GetTopicBySlug retrieves a topic and its tasks. Returns nil, nil when no
// topic has the slug.
func (s *SQLiteStore) GetTopicBySlug(ctx context.Context, slug string) (*domain.Topic, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, slug, stream, category, explanation, created_at
		 FROM topics WHERE slug = ?`, slug)

	var topic domain.Topic
	var createdAt int64
	err := row.Scan(&topic.ID, &topic.Title, &topic.Slug, &topic.Stream,
		&topic.Category, &topic.Explanation, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan topic row: %w", err)
	}
	topic.CreatedAt = time.Unix(createdAt, 0)

	rows, err := s.db.QueryContext(ctx,
		`SELECT title, description, difficulty, hint
		 FROM tasks WHERE topic_id = ? ORDER BY id`, topic.ID)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close task rows", "error", closeErr)
		}
	}()

	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(&task.Title, &task.Description, &task.Difficulty, &task.Hint); err != nil {
			return nil, fmt.Errorf("scan task row: %w", err)
		}
		topic.Tasks = append(topic.Tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}

	return &topic, nil
}

// CountTopics returns the number of stored topics.
func (s *SQLiteStore) CountTopics(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM topics`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count topics: %w", err)
	}
	return n, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
