package task

import (
	"context"

	"daily-task-scheduler/internal/model"
)

// UseCase is the business interface of the task domain.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (Task, error)
	List(ctx context.Context, sc model.Scope, input ListInput) ([]Task, int, error)
	Detail(ctx context.Context, sc model.Scope, id string) (Task, error)
	Complete(ctx context.Context, sc model.Scope, id string) (Task, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	// ClearPending removes every not-yet-done task; returns how many were removed.
	ClearPending(ctx context.Context, sc model.Scope) (int64, error)
}
