package task

import "time"

// Status tracks a task through its lifecycle in the store.
type Status string

const (
	StatusPending   Status = "pending"   // captured, waiting for a plan
	StatusScheduled Status = "scheduled" // placed into a plan
	StatusDone      Status = "done"
)

// Source tags where the task came from.
type Source string

const (
	SourceNew         Source = "new"         // captured for tomorrow
	SourceOutstanding Source = "outstanding" // carried over from an earlier day
)

// Task is the core domain entity managed by this module.
type Task struct {
	ID              string
	Title           string
	Source          Source
	DurationMinutes int
	Deadline        *time.Time
	Importance      int
	DependsOn       []string
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// --- UseCase Inputs ---

type CreateInput struct {
	Title           string
	DurationMinutes int
	Deadline        *time.Time
	Importance      int
	DependsOn       []string
}

type ListInput struct {
	Status string
	Limit  int
	Offset int
}
