package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"daily-task-scheduler/internal/model"
	"daily-task-scheduler/internal/plan"
	"daily-task-scheduler/internal/plan/delivery/telegram"
	"daily-task-scheduler/internal/task"
	pkgTelegram "daily-task-scheduler/pkg/telegram"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockPlanUseCase struct {
	generateOut plan.GenerateOutput
	generateErr error
	statusOut   plan.SetupStatus
	setDocErr   error
	setDocIDs   []string
}

func (m *mockPlanUseCase) Generate(ctx context.Context, sc model.Scope, input plan.GenerateInput) (plan.GenerateOutput, error) {
	return m.generateOut, m.generateErr
}
func (m *mockPlanUseCase) Cached(ctx context.Context, sc model.Scope, date string) (plan.GenerateOutput, error) {
	return m.generateOut, m.generateErr
}
func (m *mockPlanUseCase) SetDefaultDoc(ctx context.Context, sc model.Scope, docID string) error {
	if m.setDocErr != nil {
		return m.setDocErr
	}
	m.setDocIDs = append(m.setDocIDs, docID)
	return nil
}
func (m *mockPlanUseCase) DefaultDoc(ctx context.Context, sc model.Scope) (string, error) {
	return "", nil
}
func (m *mockPlanUseCase) DocContent(ctx context.Context, sc model.Scope, docID string) (plan.DocContent, error) {
	return plan.DocContent{}, plan.ErrDocsNotConfigured
}
func (m *mockPlanUseCase) Status(ctx context.Context, sc model.Scope) (plan.SetupStatus, error) {
	return m.statusOut, nil
}

type mockTaskUseCase struct {
	created   []task.CreateInput
	createErr error
}

func (m *mockTaskUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.Task, error) {
	if m.createErr != nil {
		return task.Task{}, m.createErr
	}
	m.created = append(m.created, input)
	minutes := input.DurationMinutes
	if minutes == 0 {
		minutes = 30
	}
	importance := input.Importance
	if importance == 0 {
		importance = 1
	}
	return task.Task{
		ID:              "generated-id",
		Title:           input.Title,
		DurationMinutes: minutes,
		Importance:      importance,
		Deadline:        input.Deadline,
		Status:          task.StatusPending,
	}, nil
}
func (m *mockTaskUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) ([]task.Task, int, error) {
	return nil, 0, nil
}
func (m *mockTaskUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.Task, error) {
	return task.Task{}, nil
}
func (m *mockTaskUseCase) Complete(ctx context.Context, sc model.Scope, id string) (task.Task, error) {
	return task.Task{}, nil
}
func (m *mockTaskUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	return nil
}
func (m *mockTaskUseCase) ClearPending(ctx context.Context, sc model.Scope) (int64, error) {
	return 0, nil
}

// ── Test Helpers ───────────────────────────────────────────────────────────

type testEnv struct {
	engine           *gin.Engine
	planUC           *mockPlanUseCase
	taskUC           *mockTaskUseCase
	capturedMessages *[]string
}

func newTestEnv(t *testing.T) (*testEnv, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	capturedMessages := &[]string{}

	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/sendMessage") {
			var payload map[string]interface{}
			json.NewDecoder(r.Body).Decode(&payload)
			if text, ok := payload["text"].(string); ok {
				*capturedMessages = append(*capturedMessages, text)
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok": true}`))
	}))

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	planUC := &mockPlanUseCase{}
	taskUC := &mockTaskUseCase{}

	engine := gin.New()
	h := telegram.New(&mockLogger{}, planUC, taskUC, bot)
	engine.POST("/webhook/telegram", h.HandleWebhook)

	return &testEnv{
		engine:           engine,
		planUC:           planUC,
		taskUC:           taskUC,
		capturedMessages: capturedMessages,
	}, tgServer
}

func sendWebhook(engine *gin.Engine, text string) *httptest.ResponseRecorder {
	update := pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			Chat:      &pkgTelegram.Chat{ID: 123},
			From:      &pkgTelegram.User{ID: 456},
			Text:      text,
		},
	}
	body, _ := json.Marshal(update)
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func waitForMessages(msgs *[]string, atLeast int, timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) && len(*msgs) < atLeast {
		time.Sleep(20 * time.Millisecond)
	}
}

func assertContains(t *testing.T, msgs []string, substr string) {
	t.Helper()
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return
		}
	}
	t.Errorf("expected a message containing %q, got: %v", substr, msgs)
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhookInvalidJSON(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString("{bad json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleWebhookIgnoresNonMessage(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	body, _ := json.Marshal(pkgTelegram.Update{UpdateID: 9})
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestHandleWebhookAddTask(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	w := sendWebhook(env.engine, "/addtask Write report | 90 | 4 | due 2025-10-20")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	waitForMessages(env.capturedMessages, 1, 2*time.Second)
	assertContains(t, *env.capturedMessages, "Added: Write report (90m, importance 4) due 2025-10-20")

	if len(env.taskUC.created) != 1 {
		t.Fatalf("created %d task(s), want 1", len(env.taskUC.created))
	}
	got := env.taskUC.created[0]
	if got.Title != "Write report" || got.DurationMinutes != 90 || got.Importance != 4 {
		t.Errorf("unexpected CreateInput: %+v", got)
	}
}

func TestHandleWebhookAddTaskMissingTitle(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	sendWebhook(env.engine, "/addtask")
	waitForMessages(env.capturedMessages, 1, 2*time.Second)
	assertContains(t, *env.capturedMessages, "Could not read that task")
	if len(env.taskUC.created) != 0 {
		t.Errorf("no task should have been created")
	}
}

func TestHandleWebhookPlan(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.planUC.generateOut = plan.GenerateOutput{
		Date:     "2025-10-14",
		Summary:  "Schedule created! 2 tasks scheduled, 1 on waitlist.",
		Rendered: "10/14/25 - Tue\n\n09:00 - 10:00: Write report (60m, importance 4)\n\n---\n",
		Appended: true,
		DocID:    "doc-1",
	}

	sendWebhook(env.engine, "/plan")
	waitForMessages(env.capturedMessages, 1, 2*time.Second)
	assertContains(t, *env.capturedMessages, "Schedule created! 2 tasks scheduled, 1 on waitlist.")
	assertContains(t, *env.capturedMessages, "09:00 - 10:00: Write report")
	assertContains(t, *env.capturedMessages, "Appended to your doc.")
}

func TestHandleWebhookStatus(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.planUC.statusOut = plan.SetupStatus{
		CalendarConfigured: true,
		DefaultDocID:       "doc-7",
		PendingTasks:       3,
	}

	sendWebhook(env.engine, "/status")
	waitForMessages(env.capturedMessages, 1, 2*time.Second)
	assertContains(t, *env.capturedMessages, "Google Calendar: configured")
	assertContains(t, *env.capturedMessages, "Google Docs: not configured")
	assertContains(t, *env.capturedMessages, "Default doc: doc-7")
	assertContains(t, *env.capturedMessages, "Pending tasks: 3")
}

func TestHandleWebhookSetDoc(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	sendWebhook(env.engine, "/setdoc doc-42")
	waitForMessages(env.capturedMessages, 1, 2*time.Second)
	assertContains(t, *env.capturedMessages, "Default doc saved")

	if len(env.planUC.setDocIDs) != 1 || env.planUC.setDocIDs[0] != "doc-42" {
		t.Errorf("setDocIDs = %v, want [doc-42]", env.planUC.setDocIDs)
	}
}

func TestHandleWebhookUnknownCommand(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	sendWebhook(env.engine, "/frobnicate")
	waitForMessages(env.capturedMessages, 1, 2*time.Second)
	assertContains(t, *env.capturedMessages, "Unknown command")
}
