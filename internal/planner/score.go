package planner

import "sort"

// scoreTask computes the priority score for one task:
//
//	score = importanceWeight*importance + urgencyWeight*urgency (+ carryover boost)
//
// Urgency decreases with time until the deadline, bounded to
// [datedUrgencyFloor, 1]; tasks with no deadline get a fixed value strictly
// below that floor, so a task is never ranked higher merely for being
// open-ended, however distant the other task's deadline. Overdue tasks
// receive an additional base offset larger than the maximum achievable
// non-overdue score, so an overdue task always outranks every task due
// later, regardless of importance.
func (e *Engine) scoreTask(t Task) float64 {
	cfg := e.cfg

	urgency := noDeadlineUrgency
	if t.Deadline != nil {
		if t.Overdue {
			urgency = 1.0
		} else {
			hours := t.Deadline.Sub(e.dayStart).Hours()
			urgency = 1.0 / (1.0 + hours/24.0)
			if urgency < datedUrgencyFloor {
				urgency = datedUrgencyFloor
			}
		}
	}

	s := cfg.ImportanceWeight*float64(t.Importance) + cfg.UrgencyWeight*urgency

	if t.Source == SourceOutstanding {
		s += cfg.CarryoverBoost
	}

	if t.Overdue {
		s += cfg.ImportanceWeight*MaxImportance + cfg.UrgencyWeight + cfg.CarryoverBoost
	}

	return s
}

// rank orders tasks by descending score. Ties break on earlier deadline
// (tasks without a deadline sort after tasks with one), then on stable input
// order, so identical inputs always produce identical ordering.
func (e *Engine) rank(tasks []Task) ([]Task, map[string]float64) {
	scores := make(map[string]float64, len(tasks))
	for _, t := range tasks {
		scores[t.ID] = e.scoreTask(t)
	}

	ordered := append([]Task(nil), tasks...)
	sort.Slice(ordered, func(i, j int) bool {
		si, sj := scores[ordered[i].ID], scores[ordered[j].ID]
		if si != sj {
			return si > sj
		}
		di, dj := ordered[i].Deadline, ordered[j].Deadline
		switch {
		case di != nil && dj != nil && !di.Equal(*dj):
			return di.Before(*dj)
		case di != nil && dj == nil:
			return true
		case di == nil && dj != nil:
			return false
		}
		return ordered[i].index < ordered[j].index
	})

	return ordered, scores
}
