package usecase

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"daily-task-scheduler/internal/planner"
	"daily-task-scheduler/internal/task"
)

const (
	headerFormat = "01/02/06 - Mon"
	dueFormat    = "01/02/06"
	clockFormat  = "15:04"
)

// render turns a finished plan into the append-ready document text:
//
//	10/14/25 - Tue
//
//	09:00 - 10:00: Write report (60m, importance 4 - due 10/16/25)
//	[Meeting: 12:00 - 13:00: Team standup]
//
//	Still on list (not scheduled today):
//	- Update docs (120m, importance 2 - due 10/20/25) [NO_CAPACITY]
//
//	---
func render(loc *time.Location, p *planner.Plan, tasks map[string]task.Task, events []planner.Event) string {
	var b strings.Builder
	b.WriteString(p.Day.Start.In(loc).Format(headerFormat))
	b.WriteString("\n\n")

	type entry struct {
		start time.Time
		line  string
	}
	entries := make([]entry, 0, len(p.Blocks)+len(events))

	for _, blk := range p.Blocks {
		t, ok := tasks[blk.TaskID]
		title := blk.TaskID
		if ok {
			title = t.Title
		}
		entries = append(entries, entry{
			start: blk.Interval.Start,
			line: fmt.Sprintf("%s - %s: %s (%s)",
				blk.Interval.Start.In(loc).Format(clockFormat),
				blk.Interval.End.In(loc).Format(clockFormat),
				title,
				taskDetails(t, ok, int(blk.Interval.Duration().Minutes()), loc)),
		})
	}
	for _, ev := range events {
		if !ev.Interval.Overlaps(p.Day) {
			continue
		}
		entries = append(entries, entry{
			start: ev.Interval.Start,
			line: fmt.Sprintf("[Meeting: %s - %s: %s]",
				ev.Interval.Start.In(loc).Format(clockFormat),
				ev.Interval.End.In(loc).Format(clockFormat),
				meetingTitle(ev.Title)),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].start.Before(entries[j].start) })
	for _, e := range entries {
		b.WriteString(e.line)
		b.WriteByte('\n')
	}

	if len(p.Unscheduled) > 0 {
		b.WriteString("\nStill on list (not scheduled today):\n")
		for _, u := range p.Unscheduled {
			t, ok := tasks[u.TaskID]
			title := u.Title
			if title == "" {
				title = u.TaskID
			}
			if ok {
				b.WriteString(fmt.Sprintf("- %s (%s) [%s]\n",
					title, taskDetails(t, true, t.DurationMinutes, loc), u.Reason))
			} else {
				b.WriteString(fmt.Sprintf("- %s [%s]\n", title, u.Reason))
			}
		}
	}

	b.WriteString("\n---\n")
	return b.String()
}

// taskDetails formats the parenthesized duration/importance/due fragment.
func taskDetails(t task.Task, known bool, minutes int, loc *time.Location) string {
	if minutes <= 0 {
		minutes = int(planner.DefaultTaskDuration.Minutes())
	}
	if !known {
		return fmt.Sprintf("%dm", minutes)
	}
	importance := t.Importance
	if importance < planner.MinImportance {
		importance = planner.MinImportance
	}
	if importance > planner.MaxImportance {
		importance = planner.MaxImportance
	}
	due := ""
	if t.Deadline != nil {
		due = " - due " + t.Deadline.In(loc).Format(dueFormat)
	}
	return fmt.Sprintf("%dm, importance %d%s", minutes, importance, due)
}

func meetingTitle(title string) string {
	if title == "" {
		return "No Title"
	}
	return title
}
