package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"daily-task-scheduler/internal/model"
	"daily-task-scheduler/internal/plan"
	"daily-task-scheduler/internal/planner"
	"daily-task-scheduler/internal/task"
	"daily-task-scheduler/pkg/gcalendar"
)

// Fixed clock: the evening of Monday 2025-10-13, so the planning day
// defaults to Tuesday 2025-10-14.
var testNow = time.Date(2025, 10, 13, 20, 0, 0, 0, time.UTC)

func tomorrowAt(hour, min int) time.Time {
	return time.Date(2025, 10, 14, hour, min, 0, 0, time.UTC)
}

func newTestUseCase(tr *mockTaskRepository, sr *mockSettingsRepository, cal plan.CalendarSource, docs plan.DocSink) *implUseCase {
	uc := New(&mockLogger{}, Config{
		Location:      time.UTC,
		WorkStartHour: 9,
		WorkEndHour:   17,
		Engine:        planner.Config{},
		CalendarID:    "primary",
	}, tr, sr, cal, docs).(*implUseCase)
	uc.now = func() time.Time { return testNow }
	return uc
}

func pendingTask(id, title string, minutes, importance int, deadline *time.Time) task.Task {
	return task.Task{
		ID:              id,
		Title:           title,
		Source:          task.SourceNew,
		DurationMinutes: minutes,
		Importance:      importance,
		Deadline:        deadline,
		Status:          task.StatusPending,
		CreatedAt:       testNow,
	}
}

func TestGenerateProducesRenderedPlan(t *testing.T) {
	due := time.Date(2025, 10, 16, 17, 0, 0, 0, time.UTC)
	tr := &mockTaskRepository{tasks: []task.Task{
		pendingTask("t1", "Write report", 60, 4, &due),
		pendingTask("t2", "Update docs", 420, 2, nil),
	}}
	sr := &mockSettingsRepository{values: map[string]string{"default_doc_id": "doc-default"}}
	cal := &mockCalendar{events: []gcalendar.Event{{
		ID:        "ev1",
		Summary:   "Team standup",
		StartTime: tomorrowAt(12, 0),
		EndTime:   tomorrowAt(13, 0),
	}}}
	docs := &mockDocs{}

	uc := newTestUseCase(tr, sr, cal, docs)
	out, err := uc.Generate(context.Background(), model.Scope{}, plan.GenerateInput{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if out.Date != "2025-10-14" {
		t.Errorf("Date = %q, want 2025-10-14", out.Date)
	}
	if out.Scheduled != 1 || out.Unscheduled != 1 {
		t.Errorf("Scheduled/Unscheduled = %d/%d, want 1/1", out.Scheduled, out.Unscheduled)
	}

	wantLines := []string{
		"10/14/25 - Tue",
		"09:00 - 10:00: Write report (60m, importance 4 - due 10/16/25)",
		"[Meeting: 12:00 - 13:00: Team standup]",
		"Still on list (not scheduled today):",
		"- Update docs (420m, importance 2) [NO_CAPACITY]",
		"---",
	}
	for _, line := range wantLines {
		if !strings.Contains(out.Rendered, line) {
			t.Errorf("rendered plan missing %q\n%s", line, out.Rendered)
		}
	}

	// Placed tasks are marked scheduled; unplaced ones stay pending.
	got, _ := tr.GetOneTask(context.Background(), "t1")
	if got.Status != task.StatusScheduled {
		t.Errorf("t1 status = %q, want scheduled", got.Status)
	}
	got, _ = tr.GetOneTask(context.Background(), "t2")
	if got.Status != task.StatusPending {
		t.Errorf("t2 status = %q, want pending", got.Status)
	}

	// Plan text landed in the default document.
	if !out.Appended || out.DocID != "doc-default" {
		t.Errorf("Appended/DocID = %v/%q, want true/doc-default", out.Appended, out.DocID)
	}
	if len(docs.appended) != 1 || docs.appended[0] != out.Rendered {
		t.Errorf("doc sink received %d append(s)", len(docs.appended))
	}
}

func TestGenerateCarriesOverStaleTasks(t *testing.T) {
	stale := pendingTask("old", "Finish review", 30, 3, nil)
	stale.CreatedAt = testNow.AddDate(0, 0, -2)
	tr := &mockTaskRepository{tasks: []task.Task{stale}}

	uc := newTestUseCase(tr, &mockSettingsRepository{}, nil, nil)
	if _, err := uc.Generate(context.Background(), model.Scope{}, plan.GenerateInput{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	got, _ := tr.GetOneTask(context.Background(), "old")
	if got.Source != task.SourceOutstanding {
		t.Errorf("stale task source = %q, want outstanding", got.Source)
	}
}

func TestGenerateSurvivesCalendarFailure(t *testing.T) {
	tr := &mockTaskRepository{tasks: []task.Task{
		pendingTask("t1", "Write report", 60, 4, nil),
	}}
	cal := &mockCalendar{err: errors.New("calendar unreachable")}

	uc := newTestUseCase(tr, &mockSettingsRepository{}, cal, nil)
	out, err := uc.Generate(context.Background(), model.Scope{}, plan.GenerateInput{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if cal.calls != 1 {
		t.Errorf("calendar calls = %d, want 1", cal.calls)
	}
	if out.Scheduled != 1 {
		t.Errorf("Scheduled = %d, want 1 (empty calendar day)", out.Scheduled)
	}
}

func TestGenerateSurvivesDocFailure(t *testing.T) {
	tr := &mockTaskRepository{tasks: []task.Task{
		pendingTask("t1", "Write report", 60, 4, nil),
	}}
	sr := &mockSettingsRepository{values: map[string]string{"default_doc_id": "doc-default"}}
	docs := &mockDocs{err: errors.New("docs unreachable")}

	uc := newTestUseCase(tr, sr, nil, docs)
	out, err := uc.Generate(context.Background(), model.Scope{}, plan.GenerateInput{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out.Appended {
		t.Error("Appended = true after doc sink failure")
	}
	if out.Scheduled != 1 {
		t.Errorf("Scheduled = %d, want 1", out.Scheduled)
	}
}

func TestGenerateDocIDOverride(t *testing.T) {
	tr := &mockTaskRepository{tasks: []task.Task{
		pendingTask("t1", "Write report", 60, 4, nil),
	}}
	sr := &mockSettingsRepository{values: map[string]string{"default_doc_id": "doc-default"}}
	docs := &mockDocs{}

	uc := newTestUseCase(tr, sr, nil, docs)
	out, err := uc.Generate(context.Background(), model.Scope{}, plan.GenerateInput{DocID: "doc-override"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out.DocID != "doc-override" {
		t.Errorf("DocID = %q, want doc-override", out.DocID)
	}
	if len(docs.docIDs) != 1 || docs.docIDs[0] != "doc-override" {
		t.Errorf("doc sink targets = %v, want [doc-override]", docs.docIDs)
	}
}

func TestGenerateBadDate(t *testing.T) {
	uc := newTestUseCase(&mockTaskRepository{}, &mockSettingsRepository{}, nil, nil)
	_, err := uc.Generate(context.Background(), model.Scope{}, plan.GenerateInput{Date: "14-10-2025"})
	if !errors.Is(err, plan.ErrBadDate) {
		t.Fatalf("err = %v, want ErrBadDate", err)
	}
}

func TestCachedReturnsGeneratedPlan(t *testing.T) {
	tr := &mockTaskRepository{tasks: []task.Task{
		pendingTask("t1", "Write report", 60, 4, nil),
	}}
	uc := newTestUseCase(tr, &mockSettingsRepository{}, nil, nil)

	out, err := uc.Generate(context.Background(), model.Scope{}, plan.GenerateInput{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	cached, err := uc.Cached(context.Background(), model.Scope{}, "2025-10-14")
	if err != nil {
		t.Fatalf("Cached: %v", err)
	}
	if cached.Rendered != out.Rendered {
		t.Error("cached plan differs from generated plan")
	}

	// Empty date resolves to the same (tomorrow) key.
	if _, err := uc.Cached(context.Background(), model.Scope{}, ""); err != nil {
		t.Fatalf("Cached (empty date): %v", err)
	}

	if _, err := uc.Cached(context.Background(), model.Scope{}, "2025-10-15"); !errors.Is(err, plan.ErrPlanNotFound) {
		t.Fatalf("Cached miss err = %v, want ErrPlanNotFound", err)
	}
	if _, err := uc.Cached(context.Background(), model.Scope{}, "nonsense"); !errors.Is(err, plan.ErrBadDate) {
		t.Fatalf("Cached bad date err = %v, want ErrBadDate", err)
	}
}

func TestSetAndGetDefaultDoc(t *testing.T) {
	uc := newTestUseCase(&mockTaskRepository{}, &mockSettingsRepository{}, nil, nil)
	ctx := context.Background()

	if err := uc.SetDefaultDoc(ctx, model.Scope{}, "  "); !errors.Is(err, plan.ErrEmptyDocID) {
		t.Fatalf("SetDefaultDoc blank err = %v, want ErrEmptyDocID", err)
	}
	if err := uc.SetDefaultDoc(ctx, model.Scope{}, " doc-9 "); err != nil {
		t.Fatalf("SetDefaultDoc: %v", err)
	}
	got, err := uc.DefaultDoc(ctx, model.Scope{})
	if err != nil {
		t.Fatalf("DefaultDoc: %v", err)
	}
	if got != "doc-9" {
		t.Errorf("DefaultDoc = %q, want doc-9", got)
	}
}

func TestDocContent(t *testing.T) {
	sr := &mockSettingsRepository{values: map[string]string{"default_doc_id": "doc-1"}}
	docs := &mockDocs{body: "10/14/25 - Tue\n---\n"}
	uc := newTestUseCase(&mockTaskRepository{}, sr, nil, docs)
	ctx := context.Background()

	got, err := uc.DocContent(ctx, model.Scope{}, "")
	if err != nil {
		t.Fatalf("DocContent: %v", err)
	}
	if got.DocID != "doc-1" {
		t.Errorf("DocID = %q, want doc-1 (stored default)", got.DocID)
	}
	if got.Body != docs.body {
		t.Errorf("Body = %q, want %q", got.Body, docs.body)
	}

	got, err = uc.DocContent(ctx, model.Scope{}, "doc-override")
	if err != nil {
		t.Fatalf("DocContent override: %v", err)
	}
	if got.DocID != "doc-override" {
		t.Errorf("DocID = %q, want doc-override", got.DocID)
	}

	noDefault := newTestUseCase(&mockTaskRepository{}, &mockSettingsRepository{}, nil, &mockDocs{})
	if _, err := noDefault.DocContent(ctx, model.Scope{}, ""); !errors.Is(err, plan.ErrEmptyDocID) {
		t.Errorf("DocContent without a document err = %v, want ErrEmptyDocID", err)
	}

	bare := newTestUseCase(&mockTaskRepository{}, &mockSettingsRepository{}, nil, nil)
	if _, err := bare.DocContent(ctx, model.Scope{}, "doc-1"); !errors.Is(err, plan.ErrDocsNotConfigured) {
		t.Errorf("DocContent without docs client err = %v, want ErrDocsNotConfigured", err)
	}
}

func TestStatusReportsIntegrations(t *testing.T) {
	tr := &mockTaskRepository{tasks: []task.Task{
		pendingTask("t1", "Write report", 60, 4, nil),
		pendingTask("t2", "Update docs", 30, 2, nil),
	}}
	sr := &mockSettingsRepository{values: map[string]string{"default_doc_id": "doc-1"}}

	uc := newTestUseCase(tr, sr, &mockCalendar{}, &mockDocs{})
	st, err := uc.Status(context.Background(), model.Scope{})
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if !st.CalendarConfigured || !st.DocsConfigured {
		t.Errorf("CalendarConfigured/DocsConfigured = %v/%v, want true/true", st.CalendarConfigured, st.DocsConfigured)
	}
	if st.DefaultDocID != "doc-1" {
		t.Errorf("DefaultDocID = %q, want doc-1", st.DefaultDocID)
	}
	if st.PendingTasks != 2 {
		t.Errorf("PendingTasks = %d, want 2", st.PendingTasks)
	}

	bare := newTestUseCase(&mockTaskRepository{}, &mockSettingsRepository{}, nil, nil)
	st, err = bare.Status(context.Background(), model.Scope{})
	if err != nil {
		t.Fatalf("Status (bare): %v", err)
	}
	if st.CalendarConfigured || st.DocsConfigured || st.TelegramConfigured {
		t.Error("bare setup should report no integrations")
	}
}
