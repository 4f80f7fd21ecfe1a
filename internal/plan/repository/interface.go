package repository

import "context"

// Setting keys used by the plan domain.
const (
	KeyDefaultDocID = "default_doc_id"
)

// Repository persists small key/value settings for the plan domain.
type Repository interface {
	// GetSetting returns "" when the key has never been set.
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}
