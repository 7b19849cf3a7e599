package storage

import (
	"context"
	"time"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines the interface for client bookkeeping that is not
// part of any snapshot, such as when the last successful sync ran.
type MetadataStorage interface {
	// SaveLastSync records a completed synchronization run
	SaveLastSync(ctx context.Context, sync *LastSync) error

	// GetLastSync retrieves the most recent completed run
	// Returns ErrMetadataNotFound if no sync has been recorded yet
	GetLastSync(ctx context.Context) (*LastSync, error)
}

// LastSync describes the most recent completed synchronization run.
type LastSync struct {
	ProjectID string    `json:"project_id"`
	Locale    string    `json:"locale"`
	SyncedAt  time.Time `json:"synced_at"`
	Applied   int       `json:"applied"` // number of actions executed successfully
}
