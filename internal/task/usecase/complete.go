package usecase

import (
	"context"

	"daily-task-scheduler/internal/model"
	"daily-task-scheduler/internal/task"
)

// Complete marks a task done so it stops carrying over to new plans.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, id string) (task.Task, error) {
	got, err := uc.repo.GetOneTask(ctx, id)
	if err != nil {
		return task.Task{}, err
	}
	if got.ID == "" {
		return task.Task{}, task.ErrNotFound
	}

	if err := uc.repo.UpdateStatus(ctx, []string{id}, task.StatusDone); err != nil {
		return task.Task{}, err
	}
	got.Status = task.StatusDone

	uc.l.Infof(ctx, "task.Complete: user=%s id=%s", sc.UserID, id)
	return got, nil
}

// Delete permanently removes a task.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	got, err := uc.repo.GetOneTask(ctx, id)
	if err != nil {
		return err
	}
	if got.ID == "" {
		return task.ErrNotFound
	}
	return uc.repo.DeleteTask(ctx, id)
}

// ClearPending wipes every not-yet-done task, mirroring the "start the list
// over" action after a schedule has been written out.
func (uc *implUseCase) ClearPending(ctx context.Context, sc model.Scope) (int64, error) {
	n, err := uc.repo.DeleteNotDone(ctx)
	if err != nil {
		return 0, err
	}
	uc.l.Infof(ctx, "task.ClearPending: user=%s removed=%d", sc.UserID, n)
	return n, nil
}
