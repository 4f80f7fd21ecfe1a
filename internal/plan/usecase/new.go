package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"daily-task-scheduler/internal/plan"
	"daily-task-scheduler/internal/plan/repository"
	"daily-task-scheduler/internal/planner"
	taskRepo "daily-task-scheduler/internal/task/repository"
	pkgLog "daily-task-scheduler/pkg/log"
)

// Config carries the planning parameters resolved at startup.
type Config struct {
	Location        *time.Location
	WorkStartHour   int
	WorkEndHour     int
	Engine          planner.Config
	CalendarID      string
	TelegramEnabled bool
}

type implUseCase struct {
	l        pkgLog.Logger
	cfg      Config
	taskRepo taskRepo.Repository
	repo     repository.Repository

	// calendar and docs are nil when the integration is not configured.
	calendar plan.CalendarSource
	docs     plan.DocSink

	cache *expirable.LRU[string, plan.GenerateOutput]
	now   func() time.Time
}

// New creates a new plan use case.
func New(
	l pkgLog.Logger,
	cfg Config,
	tr taskRepo.Repository,
	repo repository.Repository,
	calendar plan.CalendarSource,
	docs plan.DocSink,
) plan.UseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &implUseCase{
		l:        l,
		cfg:      cfg,
		taskRepo: tr,
		repo:     repo,
		calendar: calendar,
		docs:     docs,
		// Plans are tiny; keep a couple of days around for repeat reads.
		cache: expirable.NewLRU[string, plan.GenerateOutput](32, nil, 48*time.Hour),
		now:   time.Now,
	}
}
