package usecase

import (
	"context"
	"strings"

	"daily-task-scheduler/internal/model"
	"daily-task-scheduler/internal/plan"
	"daily-task-scheduler/internal/plan/repository"
	"daily-task-scheduler/internal/task"
	taskRepoPkg "daily-task-scheduler/internal/task/repository"
)

func (uc *implUseCase) SetDefaultDoc(ctx context.Context, sc model.Scope, docID string) error {
	docID = strings.TrimSpace(docID)
	if docID == "" {
		return plan.ErrEmptyDocID
	}
	if err := uc.repo.SetSetting(ctx, repository.KeyDefaultDocID, docID); err != nil {
		uc.l.Errorf(ctx, "plan.uc.SetDefaultDoc: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) DefaultDoc(ctx context.Context, sc model.Scope) (string, error) {
	docID, err := uc.repo.GetSetting(ctx, repository.KeyDefaultDocID)
	if err != nil {
		uc.l.Errorf(ctx, "plan.uc.DefaultDoc: %v", err)
		return "", err
	}
	return docID, nil
}

func (uc *implUseCase) DocContent(ctx context.Context, sc model.Scope, docID string) (plan.DocContent, error) {
	if uc.docs == nil {
		return plan.DocContent{}, plan.ErrDocsNotConfigured
	}

	docID = strings.TrimSpace(docID)
	if docID == "" {
		stored, err := uc.repo.GetSetting(ctx, repository.KeyDefaultDocID)
		if err != nil {
			uc.l.Errorf(ctx, "plan.uc.DocContent.GetSetting: %v", err)
			return plan.DocContent{}, err
		}
		docID = stored
	}
	if docID == "" {
		return plan.DocContent{}, plan.ErrEmptyDocID
	}

	doc, err := uc.docs.ReadDocument(ctx, docID)
	if err != nil {
		uc.l.Errorf(ctx, "plan.uc.DocContent.ReadDocument: %v", err)
		return plan.DocContent{}, err
	}
	return plan.DocContent{DocID: doc.ID, Title: doc.Title, Body: doc.Body}, nil
}

func (uc *implUseCase) Status(ctx context.Context, sc model.Scope) (plan.SetupStatus, error) {
	docID, err := uc.repo.GetSetting(ctx, repository.KeyDefaultDocID)
	if err != nil {
		uc.l.Errorf(ctx, "plan.uc.Status.GetSetting: %v", err)
		return plan.SetupStatus{}, err
	}

	_, pending, err := uc.taskRepo.ListTasks(ctx, taskRepoPkg.ListTasksOptions{
		Status: string(task.StatusPending),
		Limit:  1,
	})
	if err != nil {
		uc.l.Errorf(ctx, "plan.uc.Status.ListTasks: %v", err)
		return plan.SetupStatus{}, err
	}

	return plan.SetupStatus{
		CalendarConfigured: uc.calendar != nil,
		DocsConfigured:     uc.docs != nil,
		TelegramConfigured: uc.cfg.TelegramEnabled,
		DefaultDocID:       docID,
		PendingTasks:       pending,
	}, nil
}
