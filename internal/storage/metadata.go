package storage

import (
	"context"
	"time"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing sync metadata
type MetadataStorage interface {
	// SaveLastSyncTime saves the start time of the last successful pass for a mapping
	SaveLastSyncTime(ctx context.Context, mapping string, syncedAt time.Time) error

	// GetLastSyncTime retrieves the start time of the last successful pass for a mapping
	// Returns zero time if no sync has been performed yet
	GetLastSyncTime(ctx context.Context, mapping string) (time.Time, error)

	// SaveFingerprint stores the digest of the last merged view pushed to a remote record
	SaveFingerprint(ctx context.Context, mapping, remoteID string, fingerprint []byte) error

	// GetFingerprint retrieves the digest stored by SaveFingerprint
	// Returns nil if nothing was stored
	GetFingerprint(ctx context.Context, mapping, remoteID string) ([]byte, error)
}
