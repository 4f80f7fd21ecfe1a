package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"daily-task-scheduler/internal/plan"
	"daily-task-scheduler/internal/planner"
	"daily-task-scheduler/pkg/response"
)

// respondError translates domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, plan.ErrPlanNotFound):
		response.NotFound(c, err)
	case errors.Is(err, plan.ErrBadDate),
		errors.Is(err, plan.ErrEmptyDocID),
		errors.Is(err, plan.ErrDocsNotConfigured),
		errors.Is(err, planner.ErrInvalidRange),
		errors.Is(err, planner.ErrMalformedTask):
		response.Error(c, err)
	default:
		response.InternalError(c)
	}
}
