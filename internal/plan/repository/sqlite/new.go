package sqlite

import (
	"context"
	"database/sql"

	"daily-task-scheduler/internal/plan/repository"
	"daily-task-scheduler/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed settings Repository for the plan domain and
// ensures the schema exists.
func New(db *sql.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		panic("plan/repository/sqlite: db is required")
	}
	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		return nil, err
	}
	return &implRepository{db: db, l: l}, nil
}
