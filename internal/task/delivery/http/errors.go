package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"daily-task-scheduler/internal/task"
	"daily-task-scheduler/pkg/response"
)

// respondError translates domain errors into HTTP responses.
// Unknown errors become a plain 500 so internals never leak.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrNotFound):
		response.NotFound(c, err)
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrBadImportance),
		errors.Is(err, task.ErrBadDuration):
		response.Error(c, err)
	default:
		response.InternalError(c)
	}
}
