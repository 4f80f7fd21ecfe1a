package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"daily-task-scheduler/internal/task"
	repo "daily-task-scheduler/internal/task/repository"
)

const taskColumns = `id, title, source, duration_minutes, deadline, importance, depends_on, status, created_at, updated_at`

// CreateTask inserts a new task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (task.Task, error) {
	now := time.Now().UTC()

	const query = `
		INSERT INTO tasks (id, title, source, duration_minutes, deadline, importance, depends_on, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, 'pending', ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		opt.ID, opt.Title, opt.Source, opt.DurationMinutes,
		nullTime(opt.Deadline), opt.Importance, strings.Join(opt.DependsOn, ","),
		now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.CreateTask: %v", err)
		return task.Task{}, repo.ErrFailedToInsert
	}

	return r.GetOneTask(ctx, opt.ID)
}

// GetOneTask retrieves a single task by id.
// Returns zero-value Task (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneTask(ctx context.Context, id string) (task.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = ? LIMIT 1`, taskColumns)

	t, err := r.scanTask(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return task.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.GetOneTask: %v", err)
		return task.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns a paginated list of tasks and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]task.Task, int, error) {
	where := "1=1"
	args := []any{}
	if opt.Status != "" {
		where = "status = ?"
		args = append(args, opt.Status)
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM tasks WHERE %s`, where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.ListTasks count: %v", err)
		return nil, 0, repo.ErrFailedToList
	}

	limit := opt.Limit
	if limit <= 0 {
		limit = 20
	}
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE %s ORDER BY created_at, id LIMIT ? OFFSET ?`, taskColumns, where)
	args = append(args, limit, opt.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.ListTasks: %v", err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks, err := r.collectTasks(rows)
	if err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.ListTasks scan: %v", err)
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

// ListSchedulable returns all pending and outstanding tasks in creation order.
func (r *implRepository) ListSchedulable(ctx context.Context) ([]task.Task, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM tasks WHERE status = 'pending' ORDER BY created_at, id`, taskColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.ListSchedulable: %v", err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks, err := r.collectTasks(rows)
	if err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.ListSchedulable scan: %v", err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateStatus sets the status for the given task ids.
func (r *implRepository) UpdateStatus(ctx context.Context, ids []string, status task.Status) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]
	query := fmt.Sprintf(`UPDATE tasks SET status = ?, updated_at = ? WHERE id IN (%s)`, placeholders)

	args := make([]any, 0, len(ids)+2)
	args = append(args, string(status), time.Now().UTC().Format(time.RFC3339))
	for _, id := range ids {
		args = append(args, id)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.UpdateStatus: %v", err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// MarkOutstanding flips pending tasks created before the cutoff to the
// outstanding source so the scorer can boost them. Tasks placed on an
// earlier plan but never completed are revived the same way, so nothing
// drops off the list until it is done.
func (r *implRepository) MarkOutstanding(ctx context.Context, before time.Time) (int64, error) {
	const query = `
		UPDATE tasks SET source = 'outstanding', status = 'pending', updated_at = ?
		WHERE (status = 'pending' AND source = 'new' AND created_at < ?)
		   OR (status = 'scheduled' AND updated_at < ?)`

	cutoff := before.UTC().Format(time.RFC3339)
	res, err := r.db.ExecContext(ctx, query,
		time.Now().UTC().Format(time.RFC3339), cutoff, cutoff)
	if err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.MarkOutstanding: %v", err)
		return 0, repo.ErrFailedToUpdate
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// DeleteTask removes a task by id.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.DeleteTask: %v", err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// DeleteNotDone removes every task that has not been completed.
func (r *implRepository) DeleteNotDone(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE status != 'done'`)
	if err != nil {
		r.l.Errorf(ctx, "task/repository/sqlite.DeleteNotDone: %v", err)
		return 0, repo.ErrFailedToDelete
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// --- row helpers ---

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanTask(row rowScanner) (task.Task, error) {
	var (
		t         task.Task
		source    string
		status    string
		deadline  sql.NullString
		dependsOn string
		createdAt string
		updatedAt string
	)
	err := row.Scan(&t.ID, &t.Title, &source, &t.DurationMinutes, &deadline,
		&t.Importance, &dependsOn, &status, &createdAt, &updatedAt)
	if err != nil {
		return task.Task{}, err
	}

	t.Source = task.Source(source)
	t.Status = task.Status(status)
	if deadline.Valid && deadline.String != "" {
		if d, perr := time.Parse(time.RFC3339, deadline.String); perr == nil {
			t.Deadline = &d
		}
	}
	if dependsOn != "" {
		t.DependsOn = strings.Split(dependsOn, ",")
	}
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	t.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return t, nil
}

func (r *implRepository) collectTasks(rows *sql.Rows) ([]task.Task, error) {
	var tasks []task.Task
	for rows.Next() {
		t, err := r.scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
