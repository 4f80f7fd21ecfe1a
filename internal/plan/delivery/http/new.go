package http

import (
	"github.com/gin-gonic/gin"

	"daily-task-scheduler/internal/plan"
	pkgLog "daily-task-scheduler/pkg/log"
)

// Handler is the public interface for the plan HTTP delivery layer.
type Handler interface {
	Generate(c *gin.Context)
	Get(c *gin.Context)
	SetDoc(c *gin.Context)
	Doc(c *gin.Context)
	Status(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc plan.UseCase
}

// New creates a new plan HTTP handler.
func New(l pkgLog.Logger, uc plan.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
