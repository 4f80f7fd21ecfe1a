package plan

import "errors"

// Domain-specific errors for the plan package.
var (
	ErrBadDate           = errors.New("date must be in 2006-01-02 form")
	ErrPlanNotFound      = errors.New("no plan generated for that date")
	ErrEmptyDocID        = errors.New("document id is empty")
	ErrDocsNotConfigured = errors.New("google docs is not configured")
)
