package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"daily-task-scheduler/internal/model"
	"daily-task-scheduler/internal/plan"
	pkgResponse "daily-task-scheduler/pkg/response"
	pkgTelegram "daily-task-scheduler/pkg/telegram"
)

const helpText = `How to use:

/addtask <title> [| minutes [| importance [| due YYYY-MM-DD]]]
/plan [YYYY-MM-DD] - build the schedule (tomorrow by default)
/status - show setup status
/setdoc <doc id> - set the Google Doc plans are appended to

Example: /addtask Write report | 90 | 4 | due 2025-10-20`

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine: plan generation can hit Calendar and Docs and take
// longer than Telegram's webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning the goroutine to avoid data
	// races on the gin context.
	msg := update.Message

	go func() {
		// Detach from the HTTP request context, which is cancelled after
		// the response is written.
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: processMessage: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, "Something went wrong, please try again.")
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	sc := model.Scope{ChatID: msg.Chat.ID}
	if msg.From != nil {
		sc.UserID = fmt.Sprintf("telegram_%d", msg.From.ID)
	}

	cmd, args := splitCommand(text)
	switch cmd {
	case "/start":
		return h.bot.SendMessage(msg.Chat.ID,
			"Welcome! Send /addtask to capture work and /plan to get tomorrow's schedule.\n\n"+helpText)
	case "/help":
		return h.bot.SendMessage(msg.Chat.ID, helpText)
	case "/addtask":
		return h.handleAddTask(ctx, sc, msg.Chat.ID, args)
	case "/plan":
		return h.handlePlan(ctx, sc, msg.Chat.ID, args)
	case "/status":
		return h.handleStatus(ctx, sc, msg.Chat.ID)
	case "/setdoc":
		return h.handleSetDoc(ctx, sc, msg.Chat.ID, args)
	default:
		return h.bot.SendMessage(msg.Chat.ID, "Unknown command.\n\n"+helpText)
	}
}

func (h *handler) handleAddTask(ctx context.Context, sc model.Scope, chatID int64, args string) error {
	input, err := parseAddTask(args)
	if err != nil {
		return h.bot.SendMessage(chatID, fmt.Sprintf("Could not read that task: %v\n\n%s", err, helpText))
	}

	created, err := h.taskUC.Create(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Create: %v", err)
		return h.bot.SendMessage(chatID, fmt.Sprintf("Could not save the task: %v", err))
	}

	reply := fmt.Sprintf("Added: %s (%dm, importance %d)", created.Title, created.DurationMinutes, created.Importance)
	if created.Deadline != nil {
		reply += " due " + created.Deadline.Format("2006-01-02")
	}
	return h.bot.SendMessage(chatID, reply)
}

func (h *handler) handlePlan(ctx context.Context, sc model.Scope, chatID int64, args string) error {
	out, err := h.planUC.Generate(ctx, sc, plan.GenerateInput{Date: strings.TrimSpace(args)})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Generate: %v", err)
		return h.bot.SendMessage(chatID, fmt.Sprintf("Could not build the plan: %v", err))
	}

	reply := out.Summary + "\n\n" + out.Rendered
	if out.Appended {
		reply += "\nAppended to your doc."
	}
	return h.bot.SendMessage(chatID, reply)
}

func (h *handler) handleStatus(ctx context.Context, sc model.Scope, chatID int64) error {
	st, err := h.planUC.Status(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Status: %v", err)
		return h.bot.SendMessage(chatID, "Could not read the setup status.")
	}

	var b strings.Builder
	b.WriteString("Setup status:\n")
	b.WriteString(statusLine("Google Calendar", st.CalendarConfigured))
	b.WriteString(statusLine("Google Docs", st.DocsConfigured))
	b.WriteString(statusLine("Telegram", st.TelegramConfigured))
	if st.DefaultDocID != "" {
		b.WriteString("Default doc: " + st.DefaultDocID + "\n")
	} else {
		b.WriteString("Default doc: not set (use /setdoc)\n")
	}
	b.WriteString(fmt.Sprintf("Pending tasks: %d", st.PendingTasks))
	return h.bot.SendMessage(chatID, b.String())
}

func (h *handler) handleSetDoc(ctx context.Context, sc model.Scope, chatID int64, args string) error {
	if err := h.planUC.SetDefaultDoc(ctx, sc, args); err != nil {
		h.l.Errorf(ctx, "telegram handler: SetDefaultDoc: %v", err)
		return h.bot.SendMessage(chatID, fmt.Sprintf("Could not store the doc id: %v", err))
	}
	return h.bot.SendMessage(chatID, "Default doc saved. /plan output will be appended there.")
}

// splitCommand separates "/cmd rest of text" and strips a "@botname" suffix.
func splitCommand(text string) (cmd, args string) {
	cmd = text
	if i := strings.IndexAny(text, " \n"); i >= 0 {
		cmd, args = text[:i], strings.TrimSpace(text[i+1:])
	}
	if i := strings.Index(cmd, "@"); i > 0 {
		cmd = cmd[:i]
	}
	return strings.ToLower(cmd), args
}

func statusLine(name string, ok bool) string {
	if ok {
		return name + ": configured\n"
	}
	return name + ": not configured\n"
}
