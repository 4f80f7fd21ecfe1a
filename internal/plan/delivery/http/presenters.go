package http

import (
	"time"

	"daily-task-scheduler/internal/plan"
	"daily-task-scheduler/internal/planner"
)

// --- Request DTOs ---

type generateReq struct {
	Date  string `json:"date"   binding:"omitempty,datetime=2006-01-02"`
	DocID string `json:"doc_id"`
}

func (r generateReq) toInput() plan.GenerateInput {
	return plan.GenerateInput{Date: r.Date, DocID: r.DocID}
}

type setDocReq struct {
	DocID string `json:"doc_id" binding:"required"`
}

// --- Response DTOs ---

type blockResp struct {
	TaskID string    `json:"task_id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

type unscheduledResp struct {
	TaskID string `json:"task_id"`
	Title  string `json:"title,omitempty"`
	Reason string `json:"reason"`
}

type planResp struct {
	Date        string            `json:"date"`
	Summary     string            `json:"summary"`
	Rendered    string            `json:"rendered"`
	DocID       string            `json:"doc_id,omitempty"`
	Appended    bool              `json:"appended"`
	Blocks      []blockResp       `json:"blocks"`
	Unscheduled []unscheduledResp `json:"unscheduled,omitempty"`
}

func newPlanResp(out plan.GenerateOutput) planResp {
	resp := planResp{
		Date:     out.Date,
		Summary:  out.Summary,
		Rendered: out.Rendered,
		DocID:    out.DocID,
		Appended: out.Appended,
	}
	if out.Result == nil {
		return resp
	}
	resp.Blocks = make([]blockResp, len(out.Result.Blocks))
	for i, b := range out.Result.Blocks {
		resp.Blocks[i] = blockResp{
			TaskID: b.TaskID,
			Start:  b.Interval.Start,
			End:    b.Interval.End,
		}
	}
	resp.Unscheduled = newUnscheduledResps(out.Result.Unscheduled)
	return resp
}

func newUnscheduledResps(items []planner.UnscheduledTask) []unscheduledResp {
	if len(items) == 0 {
		return nil
	}
	out := make([]unscheduledResp, len(items))
	for i, u := range items {
		out[i] = unscheduledResp{
			TaskID: u.TaskID,
			Title:  u.Title,
			Reason: string(u.Reason),
		}
	}
	return out
}

type docResp struct {
	DocID string `json:"doc_id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

func newDocResp(d plan.DocContent) docResp {
	return docResp{DocID: d.DocID, Title: d.Title, Body: d.Body}
}

type statusResp struct {
	CalendarConfigured bool   `json:"calendar_configured"`
	DocsConfigured     bool   `json:"docs_configured"`
	TelegramConfigured bool   `json:"telegram_configured"`
	DefaultDocID       string `json:"default_doc_id,omitempty"`
	PendingTasks       int    `json:"pending_tasks"`
}

func newStatusResp(st plan.SetupStatus) statusResp {
	return statusResp{
		CalendarConfigured: st.CalendarConfigured,
		DocsConfigured:     st.DocsConfigured,
		TelegramConfigured: st.TelegramConfigured,
		DefaultDocID:       st.DefaultDocID,
		PendingTasks:       st.PendingTasks,
	}
}
