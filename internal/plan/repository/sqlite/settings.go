package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"daily-task-scheduler/internal/plan/repository"
)

func (r *implRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		r.l.Errorf(ctx, "plan.repository.sqlite.GetSetting: %v", err)
		return "", repository.ErrFailedToGetSetting
	}
	return value, nil
}

func (r *implRepository) SetSetting(ctx context.Context, key, value string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, now)
	if err != nil {
		r.l.Errorf(ctx, "plan.repository.sqlite.SetSetting: %v", err)
		return repository.ErrFailedToSetSetting
	}
	return nil
}
