// Package nightly triggers the automatic generation of tomorrow's plan.
package nightly

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"daily-task-scheduler/internal/model"
	"daily-task-scheduler/internal/plan"
	pkgLog "daily-task-scheduler/pkg/log"
)

// Service runs plan generation on a cron schedule in the planner timezone.
type Service struct {
	l    pkgLog.Logger
	uc   plan.UseCase
	spec string
	c    *cron.Cron
}

// New creates the nightly service. spec is a standard 5-field cron
// expression evaluated in loc, e.g. "0 18 * * *" for 6pm.
func New(l pkgLog.Logger, uc plan.UseCase, spec string, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		l:    l,
		uc:   uc,
		spec: spec,
		c:    cron.New(cron.WithLocation(loc)),
	}
}

// Start registers the job and starts the cron loop.
func (s *Service) Start(ctx context.Context) error {
	_, err := s.c.AddFunc(s.spec, func() { s.runOnce(ctx) })
	if err != nil {
		return err
	}
	s.c.Start()
	s.l.Infof(ctx, "nightly: plan generation scheduled at %q", s.spec)
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Service) Stop() {
	<-s.c.Stop().Done()
}

func (s *Service) runOnce(ctx context.Context) {
	out, err := s.uc.Generate(ctx, model.Scope{UserID: "nightly"}, plan.GenerateInput{})
	if err != nil {
		s.l.Errorf(ctx, "nightly: plan generation failed: %v", err)
		return
	}
	s.l.Infof(ctx, "nightly: %s (%s)", out.Summary, out.Date)
}
