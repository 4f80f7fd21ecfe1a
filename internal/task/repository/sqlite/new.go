package sqlite

import (
	"context"
	"database/sql"

	"daily-task-scheduler/internal/task/repository"
	"daily-task-scheduler/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id               TEXT PRIMARY KEY,
	title            TEXT NOT NULL,
	source           TEXT NOT NULL DEFAULT 'new',
	duration_minutes INTEGER NOT NULL DEFAULT 0,
	deadline         TEXT,
	importance       INTEGER NOT NULL DEFAULT 1,
	depends_on       TEXT NOT NULL DEFAULT '',
	status           TEXT NOT NULL DEFAULT 'pending',
	created_at       TEXT NOT NULL,
	updated_at       TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);
`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the task domain and ensures the
// schema exists.
func New(db *sql.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		panic("task/repository/sqlite: db is required")
	}
	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		return nil, err
	}
	return &implRepository{db: db, l: l}, nil
}
