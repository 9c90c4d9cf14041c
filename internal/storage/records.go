package storage

import (
	"context"
	"time"

	"github.com/iudanet/recordsync/internal/models"
)

//go:generate moq -out records_mock.go . RecordStorage

// RecordStorage defines interface for local record persistence
type RecordStorage interface {
	// SaveRecord creates or replaces a local record
	SaveRecord(ctx context.Context, record *models.LocalRecord) error

	// GetRecord retrieves a local record by ID
	// Returns ErrRecordNotFound if record doesn't exist
	GetRecord(ctx context.Context, id string) (*models.LocalRecord, error)

	// GetRecordByRemoteID retrieves a local record linked to a remote record
	// Returns ErrRecordNotFound if no record is linked
	GetRecordByRemoteID(ctx context.Context, objectType, remoteID string) (*models.LocalRecord, error)

	// GetRecordsUpdatedSince returns records of a type modified after since
	// Used for incremental sync
	GetRecordsUpdatedSince(ctx context.Context, objectType string, since time.Time) ([]*models.LocalRecord, error)

	// UpdateAttributes merges attributes into a record and sets UpdatedAt
	// Returns ErrRecordNotFound if record doesn't exist
	UpdateAttributes(ctx context.Context, id string, attributes models.Attributes, updatedAt time.Time) error

	// MarkSynced links a record to a remote record and sets SyncedAt
	// Returns ErrRecordNotFound if record doesn't exist
	MarkSynced(ctx context.Context, id, remoteID string, syncedAt time.Time) error

	// CountPending returns the number of records of a type changed since their last sync
	CountPending(ctx context.Context, objectType string) (int, error)
}
