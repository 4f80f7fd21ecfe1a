package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyTitle    = errors.New("task title is empty")
	ErrBadImportance = errors.New("importance must be between 1 and 5")
	ErrBadDuration   = errors.New("duration must be positive")
	ErrNotFound      = errors.New("task not found")
)
