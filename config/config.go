package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Daily planning specifics
	Planner        PlannerConfig
	Storage        StorageConfig
	GoogleCalendar GoogleCalendarConfig
	GoogleDocs     GoogleDocsConfig
	Telegram       TelegramConfig
	Nightly        NightlyConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PlannerConfig is the configuration surface of the placement engine.
type PlannerConfig struct {
	Timezone               string
	WorkStartHour          int
	WorkEndHour            int
	MinPlaceableMinutes    int
	DefaultDurationMinutes int
	ImportanceWeight       float64
	UrgencyWeight          float64
	CarryoverBoost         float64
}

type StorageConfig struct {
	SQLitePath string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type GoogleDocsConfig struct {
	CredentialsPath string
	DefaultDocID    string
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

// NightlyConfig controls the automatic generation of tomorrow's plan.
type NightlyConfig struct {
	Enabled bool
	// Cron spec in the planner timezone, e.g. "0 18 * * *" for 6pm.
	Spec string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Planner
	cfg.Planner.Timezone = viper.GetString("planner.timezone")
	cfg.Planner.WorkStartHour = viper.GetInt("planner.work_start_hour")
	cfg.Planner.WorkEndHour = viper.GetInt("planner.work_end_hour")
	cfg.Planner.MinPlaceableMinutes = viper.GetInt("planner.min_placeable_minutes")
	cfg.Planner.DefaultDurationMinutes = viper.GetInt("planner.default_duration_minutes")
	cfg.Planner.ImportanceWeight = viper.GetFloat64("planner.importance_weight")
	cfg.Planner.UrgencyWeight = viper.GetFloat64("planner.urgency_weight")
	cfg.Planner.CarryoverBoost = viper.GetFloat64("planner.carryover_boost")
	if cfg.Planner.WorkStartHour >= cfg.Planner.WorkEndHour {
		return nil, fmt.Errorf("planner.work_start_hour (%d) must be before planner.work_end_hour (%d)",
			cfg.Planner.WorkStartHour, cfg.Planner.WorkEndHour)
	}

	// Storage
	cfg.Storage.SQLitePath = viper.GetString("storage.sqlite_path")
	if dbPath := viper.GetString("sqlite_path"); dbPath != "" {
		cfg.Storage.SQLitePath = dbPath
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Google Docs
	cfg.GoogleDocs.CredentialsPath = viper.GetString("google_docs.credentials_path")
	cfg.GoogleDocs.DefaultDocID = viper.GetString("google_docs.default_doc_id")
	if cfg.GoogleDocs.CredentialsPath == "" {
		// A single credentials file usually covers both APIs.
		cfg.GoogleDocs.CredentialsPath = cfg.GoogleCalendar.CredentialsPath
	}

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// Nightly plan generation
	cfg.Nightly.Enabled = viper.GetBool("nightly.enabled")
	cfg.Nightly.Spec = viper.GetString("nightly.spec")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 60)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("planner.timezone", "UTC")
	viper.SetDefault("planner.work_start_hour", 9)
	viper.SetDefault("planner.work_end_hour", 17)
	viper.SetDefault("planner.min_placeable_minutes", 15)
	viper.SetDefault("planner.default_duration_minutes", 30)
	viper.SetDefault("planner.importance_weight", 1.0)
	viper.SetDefault("planner.urgency_weight", 2.0)
	viper.SetDefault("planner.carryover_boost", 3.0)

	viper.SetDefault("storage.sqlite_path", "data/scheduler.db")

	viper.SetDefault("nightly.enabled", false)
	viper.SetDefault("nightly.spec", "0 18 * * *")
}
