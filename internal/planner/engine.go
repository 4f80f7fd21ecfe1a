package planner

import "time"

// Engine runs one planning pass: it turns calendar events and raw task
// records into a time-blocked Plan for a single day.
//
// The engine is a pure computation over an immutable snapshot of its inputs.
// It performs no I/O and holds no state between runs other than its config;
// a fresh Engine per run and a shared one behave identically as long as Plan
// is not called concurrently.
type Engine struct {
	cfg      Config
	state    State
	dayStart time.Time
}

// New creates an Engine, applying defaults for zero-valued config fields.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg.withDefaults(), state: StateInit}
}

// State returns the engine's progress through the most recent run.
func (e *Engine) State() State {
	return e.state
}

// Plan produces the time-blocked plan for [dayStart, dayEnd).
//
// Fatal input errors (invalid day range, no usable task records) return a
// nil plan and move the engine to FAILED. An over-full day is not an error:
// tasks that do not fit are reported in Plan.Unscheduled.
func (e *Engine) Plan(dayStart, dayEnd time.Time, events []Event, raw []RawTask) (*Plan, error) {
	e.state = StateInit
	if !dayStart.Before(dayEnd) {
		e.state = StateFailed
		return nil, ErrInvalidRange
	}
	e.dayStart = dayStart
	day := Interval{Start: dayStart, End: dayEnd}

	e.state = StateExtracting
	busy := busyIntervals(day, events)
	free := freeWindows(day, busy)

	tasks, malformed := normalize(e.cfg, dayStart, raw)
	if len(raw) > 0 && len(tasks) == 0 {
		e.state = StateFailed
		return nil, ErrMalformedTask
	}

	e.state = StateScoring
	ordered, scores := e.rank(tasks)

	e.state = StatePlacing
	blocks, unscheduled := e.place(ordered, free)

	e.state = StateDone
	return &Plan{
		Day:         day,
		Busy:        busy,
		Free:        free,
		Blocks:      blocks,
		Unscheduled: append(malformed, unscheduled...),
		Scores:      scores,
	}, nil
}
