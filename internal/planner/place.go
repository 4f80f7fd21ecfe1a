package planner

import (
	"sort"
	"time"
)

// window is the mutable placement view of a FreeWindow: cursor advances as
// blocks are carved off the front.
type window struct {
	cursor time.Time
	end    time.Time
}

func (w *window) remaining() time.Duration {
	return w.end.Sub(w.cursor)
}

// place assigns tasks to free windows in descending priority order.
//
// Tasks without unresolved dependencies are placed in a first pass; tasks
// whose dependencies became satisfied are retried in bounded follow-up
// passes. Tasks left over when no pass makes progress are blocked on each
// other: the ones on a dependency cycle are reported as DEPENDENCY_CYCLE,
// the rest as DEPENDENCY_UNRESOLVED.
func (e *Engine) place(ordered []Task, free []FreeWindow) ([]ScheduledBlock, []UnscheduledTask) {
	pool := make([]*window, 0, len(free))
	for _, fw := range free {
		if fw.Remaining >= e.cfg.MinPlaceable {
			pool = append(pool, &window{cursor: fw.Interval.Start, end: fw.Interval.End})
		}
	}

	known := make(map[string]bool, len(ordered))
	for _, t := range ordered {
		known[t.ID] = true
	}

	placed := make(map[string]ScheduledBlock, len(ordered))
	failed := make(map[string]bool)

	var blocks []ScheduledBlock
	var unscheduled []UnscheduledTask

	reject := func(t Task, reason Reason) {
		failed[t.ID] = true
		unscheduled = append(unscheduled, UnscheduledTask{TaskID: t.ID, Title: t.Title, Reason: reason})
	}

	tryPlace := func(t Task) {
		var depEnd time.Time
		for _, dep := range t.DependsOn {
			if b := placed[dep]; b.Interval.End.After(depEnd) {
				depEnd = b.Interval.End
			}
		}

		for i, w := range pool {
			if w.cursor.Before(depEnd) {
				continue
			}
			if w.remaining() < t.Duration {
				continue
			}

			block := ScheduledBlock{
				TaskID:   t.ID,
				Interval: Interval{Start: w.cursor, End: w.cursor.Add(t.Duration)},
			}
			blocks = append(blocks, block)
			placed[t.ID] = block

			w.cursor = block.Interval.End
			if w.remaining() < e.cfg.MinPlaceable {
				pool = append(pool[:i], pool[i+1:]...)
			}
			return
		}

		reject(t, ReasonNoCapacity)
	}

	pending := ordered
	// Each pass resolves at least one link of the longest dependency chain,
	// so len(ordered) passes is a safe upper bound.
	for pass := 0; pass <= len(ordered) && len(pending) > 0; pass++ {
		var deferred []Task
		progress := false

		for _, t := range pending {
			blocked, waiting := depState(t, known, placed, failed)
			switch {
			case blocked:
				reject(t, ReasonDependencyUnresolved)
				progress = true
			case waiting:
				deferred = append(deferred, t)
			default:
				tryPlace(t)
				progress = true
			}
		}

		pending = deferred
		if !progress {
			break
		}
	}

	// Whatever is left waits on another leftover task.
	if len(pending) > 0 {
		onCycle := cycleMembers(pending)
		for _, t := range pending {
			if onCycle[t.ID] {
				reject(t, ReasonDependencyCycle)
			} else {
				reject(t, ReasonDependencyUnresolved)
			}
		}
	}

	sort.Slice(blocks, func(i, j int) bool {
		return blocks[i].Interval.Start.Before(blocks[j].Interval.Start)
	})

	return blocks, unscheduled
}

// depState classifies a task's dependencies: blocked means a dependency can
// never be satisfied (unknown id or already failed), waiting means some
// dependency has not been placed yet in this pass.
func depState(t Task, known map[string]bool, placed map[string]ScheduledBlock, failed map[string]bool) (blocked, waiting bool) {
	for _, dep := range t.DependsOn {
		if !known[dep] || failed[dep] {
			return true, false
		}
		if _, ok := placed[dep]; !ok {
			waiting = true
		}
	}
	return false, waiting
}

// cycleMembers returns the ids of tasks that sit on a dependency cycle
// within the given set.
func cycleMembers(tasks []Task) map[string]bool {
	deps := make(map[string][]string, len(tasks))
	inSet := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		inSet[t.ID] = true
	}
	for _, t := range tasks {
		for _, dep := range t.DependsOn {
			if inSet[dep] {
				deps[t.ID] = append(deps[t.ID], dep)
			}
		}
	}

	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int, len(tasks))
	onCycle := make(map[string]bool)

	var visit func(id string, stack []string)
	visit = func(id string, stack []string) {
		color[id] = gray
		stack = append(stack, id)
		for _, dep := range deps[id] {
			switch color[dep] {
			case white:
				visit(dep, stack)
			case gray:
				// Found a back edge: everything from dep to the top of the
				// stack is on the cycle.
				for i := len(stack) - 1; i >= 0; i-- {
					onCycle[stack[i]] = true
					if stack[i] == dep {
						break
					}
				}
			}
		}
		color[id] = black
	}

	for _, t := range tasks {
		if color[t.ID] == white {
			visit(t.ID, nil)
		}
	}
	return onCycle
}
