package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"daily-task-scheduler/internal/model"
	"daily-task-scheduler/internal/task"
	"daily-task-scheduler/internal/task/repository"
)

// Create validates and stores a newly captured task.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return task.Task{}, task.ErrEmptyTitle
	}
	if input.Importance != 0 && (input.Importance < 1 || input.Importance > 5) {
		return task.Task{}, task.ErrBadImportance
	}
	if input.DurationMinutes < 0 {
		return task.Task{}, task.ErrBadDuration
	}

	created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		ID:              uuid.NewString(),
		Title:           strings.TrimSpace(input.Title),
		Source:          string(task.SourceNew),
		DurationMinutes: input.DurationMinutes,
		Deadline:        input.Deadline,
		Importance:      input.Importance,
		DependsOn:       input.DependsOn,
	})
	if err != nil {
		return task.Task{}, err
	}

	uc.l.Infof(ctx, "task.Create: user=%s id=%s title=%q", sc.UserID, created.ID, created.Title)
	return created, nil
}
