package http

import (
	"github.com/gin-gonic/gin"

	"daily-task-scheduler/pkg/response"
)

// Create godoc
// @Summary     Capture a new task
// @Description Captures a task for the next planning run.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Create(ctx, scopeFrom(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.uc.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(out))
}

// List godoc
// @Summary     List tasks
// @Description Returns tasks with optional status filter and paging.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       status query string false "Filter by status (pending/scheduled/done)"
// @Param       limit  query int    false "Page size (default: 20)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	tasks, total, err := h.uc.List(ctx, scopeFrom(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(tasks, total, req))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task by its ID.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Detail(ctx, scopeFrom(c), id)
	if err != nil {
		h.l.Errorf(ctx, "task.uc.Detail: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskResp(out))
}

// Complete godoc
// @Summary     Mark a task done
// @Description Marks a task as done so future plans skip it.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/complete [PUT]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Complete(ctx, scopeFrom(c), id)
	if err != nil {
		h.l.Errorf(ctx, "task.uc.Complete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskResp(out))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task by ID.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, scopeFrom(c), id); err != nil {
		h.l.Errorf(ctx, "task.uc.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// Clear godoc
// @Summary     Clear pending tasks
// @Description Removes every task that is not done yet.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Success     200 {object} clearResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [DELETE]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	removed, err := h.uc.ClearPending(ctx, scopeFrom(c))
	if err != nil {
		h.l.Errorf(ctx, "task.uc.ClearPending: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, clearResp{Removed: removed})
}
