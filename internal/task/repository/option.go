package repository

import "time"

// CreateTaskOptions carries the fields for inserting a new task row.
type CreateTaskOptions struct {
	ID              string
	Title           string
	Source          string
	DurationMinutes int
	Deadline        *time.Time
	Importance      int
	DependsOn       []string
}

// ListTasksOptions filters and paginates task listing.
type ListTasksOptions struct {
	Status string
	Limit  int
	Offset int
}
