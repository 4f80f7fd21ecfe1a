package http

import (
	"time"

	"daily-task-scheduler/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title           string     `json:"title"            binding:"required,min=1,max=500"`
	DurationMinutes int        `json:"duration_minutes" binding:"omitempty,min=0"`
	Deadline        *time.Time `json:"deadline"`
	Importance      int        `json:"importance"       binding:"omitempty,min=1,max=5"`
	DependsOn       []string   `json:"depends_on"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:           r.Title,
		DurationMinutes: r.DurationMinutes,
		Deadline:        r.Deadline,
		Importance:      r.Importance,
		DependsOn:       r.DependsOn,
	}
}

// ---

type listReq struct {
	Status string `form:"status" binding:"omitempty,oneof=pending scheduled done"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() task.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return task.ListInput{
		Status: r.Status,
		Limit:  limit,
		Offset: offset,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Source          string     `json:"source"`
	DurationMinutes int        `json:"duration_minutes"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	Importance      int        `json:"importance"`
	DependsOn       []string   `json:"depends_on,omitempty"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func newTaskResp(t task.Task) taskResp {
	return taskResp{
		ID:              t.ID,
		Title:           t.Title,
		Source:          string(t.Source),
		DurationMinutes: t.DurationMinutes,
		Deadline:        t.Deadline,
		Importance:      t.Importance,
		DependsOn:       t.DependsOn,
		Status:          string(t.Status),
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(t task.Task) createResp {
	return createResp{Task: newTaskResp(t)}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(tasks []task.Task, total int, req listReq) listResp {
	in := req.toInput()
	items := make([]taskResp, len(tasks))
	for i, t := range tasks {
		items[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  items,
		Total:  total,
		Limit:  in.Limit,
		Offset: in.Offset,
	}
}

type clearResp struct {
	Removed int64 `json:"removed"`
}
