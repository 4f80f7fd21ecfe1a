package http

import (
	"github.com/gin-gonic/gin"

	"daily-task-scheduler/internal/task"
	pkgLog "daily-task-scheduler/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Complete(c *gin.Context)
	Delete(c *gin.Context)
	Clear(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc task.UseCase
}

// New creates a new task HTTP handler.
func New(l pkgLog.Logger, uc task.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
