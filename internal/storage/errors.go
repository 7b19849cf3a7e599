package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no session is cached
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrMetadataNotFound indicates that no sync has been recorded yet
	ErrMetadataNotFound = errors.New("sync metadata not found")
)
