package repository

import (
	"context"
	"time"

	"daily-task-scheduler/internal/task"
)

// Repository defines all data access methods for the Task entity.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (task.Task, error)
	// GetOneTask returns the zero-value Task (ID == "") when not found —
	// not-found is not an error at this layer.
	GetOneTask(ctx context.Context, id string) (task.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]task.Task, int, error)
	// ListSchedulable returns every pending and outstanding task in creation
	// order, which becomes the engine's stable input order.
	ListSchedulable(ctx context.Context) ([]task.Task, error)
	UpdateStatus(ctx context.Context, ids []string, status task.Status) error
	// MarkOutstanding flips pending tasks created before the cutoff to the
	// outstanding source and revives stale scheduled tasks the same way;
	// returns how many rows changed.
	MarkOutstanding(ctx context.Context, before time.Time) (int64, error)
	DeleteTask(ctx context.Context, id string) error
	DeleteNotDone(ctx context.Context) (int64, error)
}
