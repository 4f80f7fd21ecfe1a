package planner

import "time"

// normalize maps raw task records to uniform Task entities.
//
// Records missing an id or title are malformed: they are skipped and
// reported, never silently dropped. Repeated ids are malformed past the
// first occurrence — scores and placement are keyed by id, so a duplicate
// would collide instead of scheduling twice. Missing or non-positive
// durations fall back to the configured default so no task can have zero
// duration. Missing importance defaults to the lowest rank; out-of-range
// values are clamped. Deadlines before dayStart mark the task overdue
// rather than rejecting it.
func normalize(cfg Config, dayStart time.Time, raw []RawTask) ([]Task, []UnscheduledTask) {
	tasks := make([]Task, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	var malformed []UnscheduledTask

	for i, r := range raw {
		if _, dup := seen[r.ID]; r.ID == "" || r.Title == "" || dup {
			malformed = append(malformed, UnscheduledTask{
				TaskID: r.ID,
				Title:  r.Title,
				Reason: ReasonMalformed,
			})
			continue
		}
		seen[r.ID] = struct{}{}

		dur := time.Duration(r.DurationMinutes) * time.Minute
		if dur <= 0 {
			dur = cfg.DefaultDuration
		}

		importance := r.Importance
		if importance < MinImportance {
			importance = MinImportance
		} else if importance > MaxImportance {
			importance = MaxImportance
		}

		source := r.Kind
		if source != SourceOutstanding {
			source = SourceNew
		}

		var deadline *time.Time
		overdue := false
		if r.Deadline != nil {
			d := *r.Deadline
			deadline = &d
			overdue = d.Before(dayStart)
		}

		tasks = append(tasks, Task{
			ID:         r.ID,
			Title:      r.Title,
			Source:     source,
			Duration:   dur,
			Deadline:   deadline,
			Importance: importance,
			DependsOn:  append([]string(nil), r.DependsOn...),
			Overdue:    overdue,
			index:      i,
		})
	}

	return tasks, malformed
}
