package usecase

import (
	"context"

	"daily-task-scheduler/internal/model"
	"daily-task-scheduler/internal/task"
	"daily-task-scheduler/internal/task/repository"
)

// List returns a page of tasks with the total count.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) ([]task.Task, int, error) {
	return uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		Status: input.Status,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
}

// Detail returns a single task by id.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.Task, error) {
	got, err := uc.repo.GetOneTask(ctx, id)
	if err != nil {
		return task.Task{}, err
	}
	if got.ID == "" {
		return task.Task{}, task.ErrNotFound
	}
	return got, nil
}
