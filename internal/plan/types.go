package plan

import (
	"daily-task-scheduler/internal/planner"
)

// DateFormat is the wire format for planning dates.
const DateFormat = "2006-01-02"

// --- UseCase Inputs ---

// GenerateInput selects the day to plan and, optionally, the target document.
type GenerateInput struct {
	// Date in 2006-01-02 form; empty means tomorrow in the planner timezone.
	Date string
	// DocID overrides the stored default document for this run only.
	DocID string
}

// --- UseCase Outputs ---

// GenerateOutput is one finished planning run.
type GenerateOutput struct {
	Date        string
	Rendered    string
	Summary     string
	Scheduled   int
	Unscheduled int
	DocID       string // document the plan was appended to, empty if none
	Appended    bool
	Result      *planner.Plan
}

// DocContent is the plain-text body of the plan document.
type DocContent struct {
	DocID string
	Title string
	Body  string
}

// SetupStatus reports which integrations are wired up.
type SetupStatus struct {
	CalendarConfigured bool
	DocsConfigured     bool
	TelegramConfigured bool
	DefaultDocID       string
	PendingTasks       int
}
