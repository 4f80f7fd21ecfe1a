package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"daily-task-scheduler/internal/model"
)

var errMissingID = errors.New("id is required")

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListReq binds and validates the list tasks query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processIDParam extracts the required :id path parameter.
func (h *handler) processIDParam(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errMissingID
	}
	return id, nil
}

// scopeFrom builds the request scope from transport metadata.
func scopeFrom(c *gin.Context) model.Scope {
	return model.Scope{UserID: c.GetHeader("X-User-ID")}
}
