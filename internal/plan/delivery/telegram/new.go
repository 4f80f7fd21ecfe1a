package telegram

import (
	"github.com/gin-gonic/gin"

	"daily-task-scheduler/internal/plan"
	"daily-task-scheduler/internal/task"
	pkgLog "daily-task-scheduler/pkg/log"
	pkgTelegram "daily-task-scheduler/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l      pkgLog.Logger
	planUC plan.UseCase
	taskUC task.UseCase
	bot    *pkgTelegram.Bot
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, planUC plan.UseCase, taskUC task.UseCase, bot *pkgTelegram.Bot) Handler {
	return &handler{
		l:      l,
		planUC: planUC,
		taskUC: taskUC,
		bot:    bot,
	}
}
