package usecase

import (
	"context"
	"time"

	"daily-task-scheduler/internal/task"
	taskRepoPkg "daily-task-scheduler/internal/task/repository"
	"daily-task-scheduler/pkg/gcalendar"
	"daily-task-scheduler/pkg/gdocs"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock task repository backed by a slice, preserving insertion order.
type mockTaskRepository struct {
	tasks []task.Task
	err   error
}

func (m *mockTaskRepository) CreateTask(ctx context.Context, opt taskRepoPkg.CreateTaskOptions) (task.Task, error) {
	if m.err != nil {
		return task.Task{}, m.err
	}
	t := task.Task{
		ID:              opt.ID,
		Title:           opt.Title,
		Source:          task.Source(opt.Source),
		DurationMinutes: opt.DurationMinutes,
		Deadline:        opt.Deadline,
		Importance:      opt.Importance,
		DependsOn:       opt.DependsOn,
		Status:          task.StatusPending,
		CreatedAt:       time.Now(),
	}
	m.tasks = append(m.tasks, t)
	return t, nil
}

func (m *mockTaskRepository) GetOneTask(ctx context.Context, id string) (task.Task, error) {
	if m.err != nil {
		return task.Task{}, m.err
	}
	for _, t := range m.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return task.Task{}, nil
}

func (m *mockTaskRepository) ListTasks(ctx context.Context, opt taskRepoPkg.ListTasksOptions) ([]task.Task, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	var out []task.Task
	for _, t := range m.tasks {
		if opt.Status == "" || string(t.Status) == opt.Status {
			out = append(out, t)
		}
	}
	return out, len(out), nil
}

func (m *mockTaskRepository) ListSchedulable(ctx context.Context) ([]task.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []task.Task
	for _, t := range m.tasks {
		if t.Status == task.StatusPending {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockTaskRepository) UpdateStatus(ctx context.Context, ids []string, status task.Status) error {
	if m.err != nil {
		return m.err
	}
	for _, id := range ids {
		for i := range m.tasks {
			if m.tasks[i].ID == id {
				m.tasks[i].Status = status
			}
		}
	}
	return nil
}

func (m *mockTaskRepository) MarkOutstanding(ctx context.Context, before time.Time) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var n int64
	for i := range m.tasks {
		switch {
		case m.tasks[i].Status == task.StatusPending && m.tasks[i].Source == task.SourceNew && m.tasks[i].CreatedAt.Before(before):
			m.tasks[i].Source = task.SourceOutstanding
			n++
		case m.tasks[i].Status == task.StatusScheduled && m.tasks[i].UpdatedAt.Before(before):
			m.tasks[i].Status = task.StatusPending
			m.tasks[i].Source = task.SourceOutstanding
			n++
		}
	}
	return n, nil
}

func (m *mockTaskRepository) DeleteTask(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockTaskRepository) DeleteNotDone(ctx context.Context) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var kept []task.Task
	var n int64
	for _, t := range m.tasks {
		if t.Status == task.StatusDone {
			kept = append(kept, t)
		} else {
			n++
		}
	}
	m.tasks = kept
	return n, nil
}

// Mock settings repository backed by a map.
type mockSettingsRepository struct {
	values map[string]string
	err    error
}

func (m *mockSettingsRepository) GetSetting(ctx context.Context, key string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.values[key], nil
}

func (m *mockSettingsRepository) SetSetting(ctx context.Context, key, value string) error {
	if m.err != nil {
		return m.err
	}
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[key] = value
	return nil
}

// Mock calendar returning a fixed event list.
type mockCalendar struct {
	events []gcalendar.Event
	err    error
	calls  int
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.events, nil
}

// Mock doc sink recording appended text.
type mockDocs struct {
	appended []string
	docIDs   []string
	body     string
	err      error
}

func (m *mockDocs) AppendText(ctx context.Context, docID, text string) error {
	if m.err != nil {
		return m.err
	}
	m.docIDs = append(m.docIDs, docID)
	m.appended = append(m.appended, text)
	return nil
}

func (m *mockDocs) ReadDocument(ctx context.Context, docID string) (*gdocs.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &gdocs.Document{ID: docID, Title: "Plans", Body: m.body}, nil
}
