package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"daily-task-scheduler/internal/task"
)

var errEmptyTask = errors.New("task title is missing")

// parseAddTask reads the /addtask argument string. Fields are separated by
// "|": title, then optional minutes, importance and due date.
//
//	Write report | 90 | 4 | due 2025-10-20
func parseAddTask(args string) (task.CreateInput, error) {
	fields := strings.Split(args, "|")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	var input task.CreateInput
	input.Title = fields[0]
	if input.Title == "" {
		return input, errEmptyTask
	}

	if len(fields) > 1 && fields[1] != "" {
		minutes, err := strconv.Atoi(strings.TrimSuffix(fields[1], "m"))
		if err != nil {
			return input, fmt.Errorf("bad duration %q", fields[1])
		}
		input.DurationMinutes = minutes
	}

	if len(fields) > 2 && fields[2] != "" {
		importance, err := strconv.Atoi(strings.TrimPrefix(fields[2], "importance "))
		if err != nil {
			return input, fmt.Errorf("bad importance %q", fields[2])
		}
		input.Importance = importance
	}

	if len(fields) > 3 && fields[3] != "" {
		raw := strings.TrimSpace(strings.TrimPrefix(fields[3], "due"))
		due, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return input, fmt.Errorf("bad due date %q", fields[3])
		}
		input.Deadline = &due
	}

	return input, nil
}
