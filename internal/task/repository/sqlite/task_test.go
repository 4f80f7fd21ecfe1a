package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"daily-task-scheduler/internal/task"
	repo "daily-task-scheduler/internal/task/repository"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (noopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Info(ctx context.Context, arg ...any)                     {}
func (noopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (noopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Error(ctx context.Context, arg ...any)                    {}
func (noopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (noopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (noopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (noopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newTestRepo(t *testing.T) repo.Repository {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	r, err := New(db, noopLogger{})
	if err != nil {
		t.Fatalf("init repository: %v", err)
	}
	return r
}

func TestCreateAndGet(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	deadline := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	created, err := r.CreateTask(ctx, repo.CreateTaskOptions{
		ID:              "t1",
		Title:           "write report",
		Source:          "new",
		DurationMinutes: 60,
		Deadline:        &deadline,
		Importance:      3,
		DependsOn:       []string{"t0"},
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if created.ID != "t1" || created.Status != task.StatusPending {
		t.Errorf("created = %+v", created)
	}
	if created.Deadline == nil || !created.Deadline.Equal(deadline) {
		t.Errorf("deadline = %v, want %v", created.Deadline, deadline)
	}
	if len(created.DependsOn) != 1 || created.DependsOn[0] != "t0" {
		t.Errorf("dependsOn = %v", created.DependsOn)
	}

	got, err := r.GetOneTask(ctx, "t1")
	if err != nil {
		t.Fatalf("GetOneTask: %v", err)
	}
	if got.Title != "write report" {
		t.Errorf("title = %q", got.Title)
	}
}

func TestGetOneTaskNotFound(t *testing.T) {
	r := newTestRepo(t)

	got, err := r.GetOneTask(context.Background(), "missing")
	if err != nil {
		t.Fatalf("not-found must not be an error, got %v", err)
	}
	if got.ID != "" {
		t.Errorf("expected zero-value task, got %+v", got)
	}
}

func TestListSchedulableOrder(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if _, err := r.CreateTask(ctx, repo.CreateTaskOptions{ID: id, Title: id, Source: "new"}); err != nil {
			t.Fatalf("CreateTask %s: %v", id, err)
		}
	}
	if err := r.UpdateStatus(ctx, []string{"b"}, task.StatusDone); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	tasks, err := r.ListSchedulable(ctx)
	if err != nil {
		t.Fatalf("ListSchedulable: %v", err)
	}
	if len(tasks) != 2 || tasks[0].ID != "a" || tasks[1].ID != "c" {
		t.Errorf("schedulable = %+v, want [a c]", tasks)
	}
}

func TestMarkOutstanding(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	if _, err := r.CreateTask(ctx, repo.CreateTaskOptions{ID: "old", Title: "old", Source: "new"}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if _, err := r.CreateTask(ctx, repo.CreateTaskOptions{ID: "placed", Title: "placed", Source: "new"}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if err := r.UpdateStatus(ctx, []string{"placed"}, task.StatusScheduled); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	n, err := r.MarkOutstanding(ctx, time.Now().UTC().Add(time.Hour))
	if err != nil {
		t.Fatalf("MarkOutstanding: %v", err)
	}
	if n != 2 {
		t.Errorf("marked %d rows, want 2", n)
	}

	got, _ := r.GetOneTask(ctx, "old")
	if got.Source != task.SourceOutstanding {
		t.Errorf("source = %v, want outstanding", got.Source)
	}

	revived, _ := r.GetOneTask(ctx, "placed")
	if revived.Status != task.StatusPending || revived.Source != task.SourceOutstanding {
		t.Errorf("revived task = %v/%v, want pending/outstanding", revived.Status, revived.Source)
	}
}

func TestDeleteNotDone(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	r.CreateTask(ctx, repo.CreateTaskOptions{ID: "p", Title: "pending", Source: "new"})
	r.CreateTask(ctx, repo.CreateTaskOptions{ID: "d", Title: "done", Source: "new"})
	r.UpdateStatus(ctx, []string{"d"}, task.StatusDone)

	n, err := r.DeleteNotDone(ctx)
	if err != nil {
		t.Fatalf("DeleteNotDone: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted %d rows, want 1", n)
	}

	kept, _ := r.GetOneTask(ctx, "d")
	if kept.ID != "d" {
		t.Error("completed task must survive a clear")
	}
}
