package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	planHTTP "daily-task-scheduler/internal/plan/delivery/http"
	tgDelivery "daily-task-scheduler/internal/plan/delivery/telegram"
	taskHTTP "daily-task-scheduler/internal/task/delivery/http"
	"daily-task-scheduler/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	rateLimitPerMin int

	taskHandler taskHTTP.Handler
	planHandler planHTTP.Handler

	// telegramHandler is nil when the bot is not configured.
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	RateLimitPerMin int

	TaskHandler     taskHTTP.Handler
	PlanHandler     planHTTP.Handler
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimitPerMin: cfg.RateLimitPerMin,
		taskHandler:     cfg.TaskHandler,
		planHandler:     cfg.PlanHandler,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	if srv.planHandler == nil {
		return errors.New("plan handler is required")
	}
	return nil
}
