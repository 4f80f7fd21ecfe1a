package model

// Scope carries per-request identity through use cases.
type Scope struct {
	UserID string
	ChatID int64 // Telegram chat, when the request came from the bot
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
