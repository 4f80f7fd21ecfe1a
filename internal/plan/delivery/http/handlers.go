package http

import (
	"github.com/gin-gonic/gin"

	"daily-task-scheduler/pkg/response"
)

// Generate godoc
// @Summary     Generate a day plan
// @Description Runs a full planning pass for the given day (tomorrow by default) and appends the result to the configured document.
// @Tags        Plan
// @Accept      json
// @Produce     json
// @Param       body body generateReq false "Planning options"
// @Success     200 {object} planResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans/generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Generate(ctx, scopeFrom(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "plan.uc.Generate: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newPlanResp(out))
}

// Get godoc
// @Summary     Get a generated plan
// @Description Returns a previously generated plan for the date, if one is cached.
// @Tags        Plan
// @Accept      json
// @Produce     json
// @Param       date path string true "Plan date (2006-01-02)"
// @Success     200 {object} planResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/plans/{date} [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Cached(ctx, scopeFrom(c), c.Param("date"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, newPlanResp(out))
}

// SetDoc godoc
// @Summary     Set the default plan document
// @Description Stores the Google Doc that future plans are appended to.
// @Tags        Plan
// @Accept      json
// @Produce     json
// @Param       body body setDocReq true "Document id"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plans/doc [PUT]
func (h *handler) SetDoc(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetDocReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.SetDefaultDoc(ctx, scopeFrom(c), req.DocID); err != nil {
		h.l.Errorf(ctx, "plan.uc.SetDefaultDoc: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// Doc godoc
// @Summary     Read the plan document
// @Description Returns the plain-text content of the given document, falling back to the stored default when doc_id is omitted.
// @Tags        Plan
// @Accept      json
// @Produce     json
// @Param       doc_id query string false "Document id"
// @Success     200 {object} docResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/doc [GET]
func (h *handler) Doc(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.DocContent(ctx, scopeFrom(c), c.Query("doc_id"))
	if err != nil {
		h.l.Errorf(ctx, "plan.uc.DocContent: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newDocResp(out))
}

// Status godoc
// @Summary     Setup status
// @Description Reports which integrations are configured and how many tasks await planning.
// @Tags        Plan
// @Accept      json
// @Produce     json
// @Success     200 {object} statusResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/status [GET]
func (h *handler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	st, err := h.uc.Status(ctx, scopeFrom(c))
	if err != nil {
		h.l.Errorf(ctx, "plan.uc.Status: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newStatusResp(st))
}
