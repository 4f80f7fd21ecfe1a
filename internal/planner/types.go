package planner

import "time"

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Duration returns the length of the interval.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Overlaps reports whether two intervals share any positive duration.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Contains reports whether the other interval lies entirely inside this one.
func (iv Interval) Contains(other Interval) bool {
	return !other.Start.Before(iv.Start) && !other.End.After(iv.End)
}

// Event is a fixed calendar commitment. Immutable for the duration of a run.
type Event struct {
	ID       string
	Title    string
	Interval Interval
}

// Source tags where a raw task record came from.
type Source string

const (
	SourceNew         Source = "new"
	SourceOutstanding Source = "outstanding"
)

// Importance bounds for normalized tasks.
const (
	MinImportance = 1
	MaxImportance = 5
)

// RawTask is a task record as delivered by a task source, before
// normalization. Kind selects the mapping; validation happens in the
// normalizer, not at the call site.
type RawTask struct {
	Kind            Source
	ID              string
	Title           string
	DurationMinutes int
	Deadline        *time.Time
	Importance      int
	DependsOn       []string
}

// Task is the uniform task entity produced by the normalizer. Read-only
// after normalization.
type Task struct {
	ID         string
	Title      string
	Source     Source
	Duration   time.Duration
	Deadline   *time.Time // nil means no deadline
	Importance int
	DependsOn  []string
	Overdue    bool // deadline precedes the planning day's start

	// index preserves input order for deterministic tie-breaking.
	index int
}

// FreeWindow is a slice of the planning day not occupied by any busy
// interval. Remaining shrinks during placement.
type FreeWindow struct {
	Interval  Interval
	Remaining time.Duration
}

// ScheduledBlock assigns a task to a concrete sub-range of a free window.
type ScheduledBlock struct {
	TaskID   string
	Interval Interval
}

// Reason explains why a task could not be placed.
type Reason string

const (
	ReasonNoCapacity           Reason = "NO_CAPACITY"
	ReasonDependencyUnresolved Reason = "DEPENDENCY_UNRESOLVED"
	ReasonDependencyCycle      Reason = "DEPENDENCY_CYCLE"
	ReasonMalformed            Reason = "MALFORMED"
)

// UnscheduledTask reports a task that did not make it into the plan.
type UnscheduledTask struct {
	TaskID string
	Title  string
	Reason Reason
}

// Plan is the sole artifact handed to the renderer.
type Plan struct {
	Day         Interval
	Busy        []Interval
	Free        []FreeWindow // free windows before placement
	Blocks      []ScheduledBlock
	Unscheduled []UnscheduledTask
	Scores      map[string]float64 // task id → priority score, recomputed every run
}

// State is the engine's progress through one planning run.
type State string

const (
	StateInit       State = "INIT"
	StateExtracting State = "EXTRACTING"
	StateScoring    State = "SCORING"
	StatePlacing    State = "PLACING"
	StateDone       State = "DONE"
	StateFailed     State = "FAILED"
)

// Config is the per-run configuration of the engine. Zero values are
// replaced with defaults by New.
type Config struct {
	MinPlaceable     time.Duration // windows smaller than this are dropped
	DefaultDuration  time.Duration // duration for tasks with no estimate
	ImportanceWeight float64
	UrgencyWeight    float64
	CarryoverBoost   float64 // additive boost for outstanding tasks
}

// Defaults mirroring the original day-planner behavior.
const (
	DefaultMinPlaceable   = 15 * time.Minute
	DefaultTaskDuration   = 30 * time.Minute
	DefaultImportanceWt   = 1.0
	DefaultUrgencyWt      = 2.0
	DefaultCarryoverBoost = 3.0

	// Dated urgency decays toward zero but never below this floor, and a
	// task with no deadline sits strictly below it, so lacking a deadline
	// can never outrank having one.
	datedUrgencyFloor = 0.05
	noDeadlineUrgency = datedUrgencyFloor / 2
)

func (c Config) withDefaults() Config {
	if c.MinPlaceable <= 0 {
		c.MinPlaceable = DefaultMinPlaceable
	}
	if c.DefaultDuration <= 0 {
		c.DefaultDuration = DefaultTaskDuration
	}
	if c.ImportanceWeight < 0 {
		c.ImportanceWeight = 0
	}
	if c.UrgencyWeight < 0 {
		c.UrgencyWeight = 0
	}
	if c.ImportanceWeight == 0 && c.UrgencyWeight == 0 {
		c.ImportanceWeight = DefaultImportanceWt
		c.UrgencyWeight = DefaultUrgencyWt
	}
	if c.CarryoverBoost < 0 {
		c.CarryoverBoost = 0
	}
	return c
}
