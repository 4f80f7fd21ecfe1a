package planner

import "errors"

// Fatal input errors. Placement outcomes (NO_CAPACITY and friends) are not
// errors — they are reported per task inside the Plan.
var (
	ErrInvalidRange  = errors.New("planning day start must be before day end")
	ErrMalformedTask = errors.New("no usable task records in input")
)
