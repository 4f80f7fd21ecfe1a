package planner

import "sort"

// busyIntervals converts calendar events into a sorted, non-overlapping list
// of busy intervals clipped to the planning day. Events entirely outside the
// day are dropped; events straddling a boundary are clipped to it.
// Overlapping and back-to-back intervals are merged.
func busyIntervals(day Interval, events []Event) []Interval {
	clipped := make([]Interval, 0, len(events))
	for _, ev := range events {
		iv := ev.Interval
		if !iv.Start.Before(iv.End) {
			continue
		}
		if !iv.End.After(day.Start) || !iv.Start.Before(day.End) {
			continue
		}
		if iv.Start.Before(day.Start) {
			iv.Start = day.Start
		}
		if iv.End.After(day.End) {
			iv.End = day.End
		}
		clipped = append(clipped, iv)
	}

	sort.Slice(clipped, func(i, j int) bool {
		if !clipped[i].Start.Equal(clipped[j].Start) {
			return clipped[i].Start.Before(clipped[j].Start)
		}
		return clipped[i].End.Before(clipped[j].End)
	})

	merged := make([]Interval, 0, len(clipped))
	for _, iv := range clipped {
		n := len(merged)
		if n > 0 && !iv.Start.After(merged[n-1].End) {
			if iv.End.After(merged[n-1].End) {
				merged[n-1].End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// freeWindows returns the complement of the busy intervals within the day,
// in chronological order. busy must be sorted and non-overlapping.
func freeWindows(day Interval, busy []Interval) []FreeWindow {
	var free []FreeWindow
	cursor := day.Start
	for _, b := range busy {
		if cursor.Before(b.Start) {
			iv := Interval{Start: cursor, End: b.Start}
			free = append(free, FreeWindow{Interval: iv, Remaining: iv.Duration()})
		}
		if b.End.After(cursor) {
			cursor = b.End
		}
	}
	if cursor.Before(day.End) {
		iv := Interval{Start: cursor, End: day.End}
		free = append(free, FreeWindow{Interval: iv, Remaining: iv.Duration()})
	}
	return free
}
