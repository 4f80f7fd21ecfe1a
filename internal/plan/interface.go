package plan

import (
	"context"

	"daily-task-scheduler/internal/model"
	"daily-task-scheduler/pkg/gcalendar"
	"daily-task-scheduler/pkg/gdocs"
)

// UseCase is the business interface of the plan domain.
type UseCase interface {
	// Generate runs one full planning pass and returns the rendered plan.
	Generate(ctx context.Context, sc model.Scope, input GenerateInput) (GenerateOutput, error)
	// Cached returns a previously generated plan for the date, if any.
	Cached(ctx context.Context, sc model.Scope, date string) (GenerateOutput, error)
	SetDefaultDoc(ctx context.Context, sc model.Scope, docID string) error
	DefaultDoc(ctx context.Context, sc model.Scope) (string, error)
	// DocContent reads the plan document back as plain text. An empty docID
	// falls back to the stored default.
	DocContent(ctx context.Context, sc model.Scope, docID string) (DocContent, error)
	Status(ctx context.Context, sc model.Scope) (SetupStatus, error)
}

// CalendarSource lists the fixed commitments of the planning day.
// *gcalendar.Client satisfies it.
type CalendarSource interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// DocSink receives the rendered plan text and reads it back.
// *gdocs.Client satisfies it.
type DocSink interface {
	AppendText(ctx context.Context, docID, text string) error
	ReadDocument(ctx context.Context, docID string) (*gdocs.Document, error)
}
