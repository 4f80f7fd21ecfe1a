package http

import (
	"io"

	"github.com/gin-gonic/gin"

	"daily-task-scheduler/internal/model"
)

// processGenerateReq binds the optional generate request body.
// An empty body means "plan tomorrow with the default document".
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		return req, err
	}
	return req, nil
}

// processSetDocReq binds and validates the set document request body.
func (h *handler) processSetDocReq(c *gin.Context) (setDocReq, error) {
	var req setDocReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// scopeFrom builds the request scope from transport metadata.
func scopeFrom(c *gin.Context) model.Scope {
	return model.Scope{UserID: c.GetHeader("X-User-ID")}
}
