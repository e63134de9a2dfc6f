package storage

import "context"

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveLastFetchTimestamp saves the time of the last successful page fetch
	SaveLastFetchTimestamp(ctx context.Context, timestamp int64) error

	// GetLastFetchTimestamp retrieves the time of the last successful page fetch
	// Returns 0 if nothing has been fetched yet
	GetLastFetchTimestamp(ctx context.Context) (int64, error)
}
