package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"daily-task-scheduler/config"
	_ "daily-task-scheduler/docs" // Swagger docs
	"daily-task-scheduler/internal/httpserver"
	"daily-task-scheduler/internal/nightly"
	"daily-task-scheduler/internal/plan"
	planHTTP "daily-task-scheduler/internal/plan/delivery/http"
	tgDelivery "daily-task-scheduler/internal/plan/delivery/telegram"
	planSqlite "daily-task-scheduler/internal/plan/repository/sqlite"
	planUsecase "daily-task-scheduler/internal/plan/usecase"
	"daily-task-scheduler/internal/planner"
	taskHTTP "daily-task-scheduler/internal/task/delivery/http"
	taskSqlite "daily-task-scheduler/internal/task/repository/sqlite"
	taskUsecase "daily-task-scheduler/internal/task/usecase"
	"daily-task-scheduler/pkg/gcalendar"
	"daily-task-scheduler/pkg/gdocs"
	"daily-task-scheduler/pkg/log"
	"daily-task-scheduler/pkg/storage"
	"daily-task-scheduler/pkg/telegram"
)

// @title       Daily Task Scheduler API
// @description Single-day task prioritization and placement around calendar commitments, with Google Docs and Telegram delivery.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// .env is optional; real deployments use environment variables.
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Daily Task Scheduler...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	loc, err := time.LoadLocation(cfg.Planner.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Planner.Timezone, err)
		loc = time.UTC
	}

	// 3. Storage
	db, err := storage.OpenSQLite(cfg.Storage.SQLitePath)
	if err != nil {
		logger.Errorf(ctx, "Failed to open sqlite at %s: %v", cfg.Storage.SQLitePath, err)
		return
	}
	defer db.Close()

	taskRepo, err := taskSqlite.New(db, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize task repository: %v", err)
		return
	}
	settingsRepo, err := planSqlite.New(db, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize settings repository: %v", err)
		return
	}

	// 4. Google Calendar (optional)
	var calendar plan.CalendarSource
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. Google Docs (optional)
	var docs plan.DocSink
	if cfg.GoogleDocs.CredentialsPath != "" {
		client, docErr := gdocs.NewClientFromCredentialsFile(ctx, cfg.GoogleDocs.CredentialsPath)
		if docErr != nil {
			logger.Warnf(ctx, "Google Docs not available (optional): %v", docErr)
		} else {
			docs = client
			logger.Info(ctx, "Google Docs initialized")
		}
	}

	// 6. Use cases
	taskUC := taskUsecase.New(logger, taskRepo)
	planUC := planUsecase.New(logger, planUsecase.Config{
		Location:      loc,
		WorkStartHour: cfg.Planner.WorkStartHour,
		WorkEndHour:   cfg.Planner.WorkEndHour,
		Engine: planner.Config{
			MinPlaceable:     time.Duration(cfg.Planner.MinPlaceableMinutes) * time.Minute,
			DefaultDuration:  time.Duration(cfg.Planner.DefaultDurationMinutes) * time.Minute,
			ImportanceWeight: cfg.Planner.ImportanceWeight,
			UrgencyWeight:    cfg.Planner.UrgencyWeight,
			CarryoverBoost:   cfg.Planner.CarryoverBoost,
		},
		CalendarID:      cfg.GoogleCalendar.CalendarID,
		TelegramEnabled: cfg.Telegram.BotToken != "",
	}, taskRepo, settingsRepo, calendar, docs)

	// 7. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, planUC, taskUC, bot)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := bot.SetWebhook(cfg.Telegram.WebhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "TELEGRAM_BOT_TOKEN missing, bot disabled")
	}

	// 8. Nightly plan generation (optional)
	if cfg.Nightly.Enabled {
		svc := nightly.New(logger, planUC, cfg.Nightly.Spec, loc)
		if err := svc.Start(ctx); err != nil {
			logger.Errorf(ctx, "Failed to start nightly service: %v", err)
			return
		}
		defer svc.Stop()
	}

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		TaskHandler:     taskHTTP.New(logger, taskUC),
		PlanHandler:     planHTTP.New(logger, planUC),
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
