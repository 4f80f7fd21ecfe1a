package usecase

import (
	"context"
	"fmt"
	"time"

	"daily-task-scheduler/internal/model"
	"daily-task-scheduler/internal/plan"
	"daily-task-scheduler/internal/plan/repository"
	"daily-task-scheduler/internal/planner"
	"daily-task-scheduler/internal/task"
	"daily-task-scheduler/pkg/gcalendar"
)

func (uc *implUseCase) Generate(ctx context.Context, sc model.Scope, input plan.GenerateInput) (plan.GenerateOutput, error) {
	day, err := uc.resolveDay(input.Date)
	if err != nil {
		return plan.GenerateOutput{}, err
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), uc.cfg.WorkStartHour, 0, 0, 0, uc.cfg.Location)
	dayEnd := time.Date(day.Year(), day.Month(), day.Day(), uc.cfg.WorkEndHour, 0, 0, 0, uc.cfg.Location)

	// Tasks captured or placed before today that are still not done carry
	// over as outstanding.
	today := startOfDay(uc.now().In(uc.cfg.Location))
	carried, err := uc.taskRepo.MarkOutstanding(ctx, today)
	if err != nil {
		uc.l.Errorf(ctx, "plan.uc.Generate.MarkOutstanding: %v", err)
		return plan.GenerateOutput{}, err
	}
	if carried > 0 {
		uc.l.Infof(ctx, "plan.uc.Generate: carried over %d task(s)", carried)
	}

	tasks, err := uc.taskRepo.ListSchedulable(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "plan.uc.Generate.ListSchedulable: %v", err)
		return plan.GenerateOutput{}, err
	}

	events := uc.fetchEvents(ctx, day)

	raw := make([]planner.RawTask, len(tasks))
	byID := make(map[string]task.Task, len(tasks))
	for i, t := range tasks {
		raw[i] = planner.RawTask{
			Kind:            planner.Source(t.Source),
			ID:              t.ID,
			Title:           t.Title,
			DurationMinutes: t.DurationMinutes,
			Deadline:        t.Deadline,
			Importance:      t.Importance,
			DependsOn:       t.DependsOn,
		}
		byID[t.ID] = t
	}

	engine := planner.New(uc.cfg.Engine)
	result, err := engine.Plan(dayStart, dayEnd, events, raw)
	if err != nil {
		uc.l.Errorf(ctx, "plan.uc.Generate.Plan: %v", err)
		return plan.GenerateOutput{}, err
	}

	rendered := render(uc.cfg.Location, result, byID, events)

	out := plan.GenerateOutput{
		Date:        day.Format(plan.DateFormat),
		Rendered:    rendered,
		Scheduled:   len(result.Blocks),
		Unscheduled: len(result.Unscheduled),
		Summary: fmt.Sprintf("Schedule created! %d tasks scheduled, %d on waitlist.",
			len(result.Blocks), len(result.Unscheduled)),
		Result: result,
	}

	// Append to the target document, best effort.
	docID := input.DocID
	if docID == "" {
		docID, err = uc.repo.GetSetting(ctx, repository.KeyDefaultDocID)
		if err != nil {
			uc.l.Warnf(ctx, "plan.uc.Generate.GetSetting: %v", err)
			docID = ""
		}
	}
	if uc.docs != nil && docID != "" {
		if err := uc.docs.AppendText(ctx, docID, rendered); err != nil {
			uc.l.Warnf(ctx, "plan.uc.Generate.AppendText: %v", err)
		} else {
			out.DocID = docID
			out.Appended = true
		}
	}

	if len(result.Blocks) > 0 {
		ids := make([]string, len(result.Blocks))
		for i, b := range result.Blocks {
			ids[i] = b.TaskID
		}
		if err := uc.taskRepo.UpdateStatus(ctx, ids, task.StatusScheduled); err != nil {
			uc.l.Errorf(ctx, "plan.uc.Generate.UpdateStatus: %v", err)
			return plan.GenerateOutput{}, err
		}
	}

	uc.cache.Add(out.Date, out)
	return out, nil
}

func (uc *implUseCase) Cached(ctx context.Context, sc model.Scope, date string) (plan.GenerateOutput, error) {
	day, err := uc.resolveDay(date)
	if err != nil {
		return plan.GenerateOutput{}, err
	}
	out, ok := uc.cache.Get(day.Format(plan.DateFormat))
	if !ok {
		return plan.GenerateOutput{}, plan.ErrPlanNotFound
	}
	return out, nil
}

// resolveDay turns the wire date into midnight of the planning day.
// An empty date means tomorrow.
func (uc *implUseCase) resolveDay(date string) (time.Time, error) {
	if date == "" {
		return startOfDay(uc.now().In(uc.cfg.Location)).AddDate(0, 0, 1), nil
	}
	day, err := time.ParseInLocation(plan.DateFormat, date, uc.cfg.Location)
	if err != nil {
		return time.Time{}, plan.ErrBadDate
	}
	return day, nil
}

// fetchEvents loads the day's calendar commitments. A missing or failing
// calendar yields an empty day rather than an error.
func (uc *implUseCase) fetchEvents(ctx context.Context, day time.Time) []planner.Event {
	if uc.calendar == nil {
		return nil
	}
	items, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.cfg.CalendarID,
		TimeMin:    day,
		TimeMax:    day.AddDate(0, 0, 1),
	})
	if err != nil {
		uc.l.Warnf(ctx, "plan.uc.fetchEvents: %v", err)
		return nil
	}
	events := make([]planner.Event, len(items))
	for i, it := range items {
		events[i] = planner.Event{
			ID:    it.ID,
			Title: it.Summary,
			Interval: planner.Interval{
				Start: it.StartTime,
				End:   it.EndTime,
			},
		}
	}
	return events
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
