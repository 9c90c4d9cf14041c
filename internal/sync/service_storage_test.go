package sync

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/recordsync/internal/crdt"
	"github.com/iudanet/recordsync/internal/models"
	"github.com/iudanet/recordsync/internal/remote"
	"github.com/iudanet/recordsync/internal/storage"
)

func newMockedService(records storage.RecordStorage, metadata storage.MetadataStorage, client remote.Client, logger *slog.Logger) Service {
	return NewService(Options{
		Records:  records,
		Metadata: metadata,
		Remote:   client,
		Clock:    crdt.NewClockWithSource("test-node", time.Now),
		Logger:   logger,
		Bindings: []*Binding{contactBinding()},
		Workers:  2,
	})
}

func emptyRemote() *remote.ClientMock {
	return &remote.ClientMock{
		FetchSinceFunc: func(ctx context.Context, objectType string, since time.Time) ([]*models.RemoteRecord, error) {
			return nil, nil
		},
	}
}

func TestSync_LocalStorageError(t *testing.T) {
	diskErr := errors.New("disk I/O error")

	records := &storage.RecordStorageMock{
		GetRecordsUpdatedSinceFunc: func(ctx context.Context, objectType string, since time.Time) ([]*models.LocalRecord, error) {
			return nil, diskErr
		},
	}
	metadata := &storage.MetadataStorageMock{
		GetLastSyncTimeFunc: func(ctx context.Context, mapping string) (time.Time, error) {
			return time.Time{}, nil
		},
		SaveLastSyncTimeFunc: func(ctx context.Context, mapping string, syncedAt time.Time) error {
			return nil
		},
	}
	client := emptyRemote()

	svc := newMockedService(records, metadata, client, slog.Default())

	_, err := svc.Sync(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, diskErr)
	assert.Empty(t, client.FetchSinceCalls(), "Remote should not be queried after a local failure")
	assert.Empty(t, metadata.SaveLastSyncTimeCalls())
}

func TestSync_LastSyncTimeErrorRunsFullSync(t *testing.T) {
	records := &storage.RecordStorageMock{
		GetRecordsUpdatedSinceFunc: func(ctx context.Context, objectType string, since time.Time) ([]*models.LocalRecord, error) {
			return nil, nil
		},
	}
	metadata := &storage.MetadataStorageMock{
		GetLastSyncTimeFunc: func(ctx context.Context, mapping string) (time.Time, error) {
			return time.Time{}, storage.ErrStorageClosed
		},
		SaveLastSyncTimeFunc: func(ctx context.Context, mapping string, syncedAt time.Time) error {
			return nil
		},
	}
	client := emptyRemote()

	svc := newMockedService(records, metadata, client, slog.Default())

	_, err := svc.Sync(context.Background())
	require.NoError(t, err)

	require.Len(t, records.GetRecordsUpdatedSinceCalls(), 1)
	assert.True(t, records.GetRecordsUpdatedSinceCalls()[0].Since.IsZero())
	require.Len(t, client.FetchSinceCalls(), 1)
	assert.True(t, client.FetchSinceCalls()[0].Since.IsZero())
	assert.Len(t, metadata.SaveLastSyncTimeCalls(), 1)
}

func TestSync_LocalUpdateErrorKeepsMark(t *testing.T) {
	base := time.Now().Add(-time.Hour)

	records := &storage.RecordStorageMock{
		GetRecordsUpdatedSinceFunc: func(ctx context.Context, objectType string, since time.Time) ([]*models.LocalRecord, error) {
			return []*models.LocalRecord{{
				ID:         "local-1",
				ObjectType: "contact",
				RemoteID:   "003A",
				Attributes: models.Attributes{"name": "Sam", "email": "old@example.com"},
				UpdatedAt:  base,
			}}, nil
		},
		UpdateAttributesFunc: func(ctx context.Context, id string, attributes models.Attributes, updatedAt time.Time) error {
			return errors.New("database is locked")
		},
		MarkSyncedFunc: func(ctx context.Context, id string, remoteID string, syncedAt time.Time) error {
			return nil
		},
	}
	metadata := &storage.MetadataStorageMock{
		GetLastSyncTimeFunc: func(ctx context.Context, mapping string) (time.Time, error) {
			return time.Time{}, nil
		},
		SaveLastSyncTimeFunc: func(ctx context.Context, mapping string, syncedAt time.Time) error {
			return nil
		},
	}
	client := &remote.ClientMock{
		FetchSinceFunc: func(ctx context.Context, objectType string, since time.Time) ([]*models.RemoteRecord, error) {
			return []*models.RemoteRecord{{
				ID:         "003A",
				ObjectType: "Contact",
				Attributes: models.Attributes{"Name": "Sam", "Email": "new@example.com"},
				ModifiedAt: base.Add(time.Minute),
			}}, nil
		},
	}

	svc := newMockedService(records, metadata, client, slog.Default())

	result, err := svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.SkippedRecords)
	assert.Equal(t, 0, result.LocalUpdated)

	require.Len(t, records.UpdateAttributesCalls(), 1)
	assert.Equal(t, models.Attributes{"name": "Sam", "email": "new@example.com"}, records.UpdateAttributesCalls()[0].Attributes)
	assert.Empty(t, records.MarkSyncedCalls(), "Failed record should not be marked synced")
	assert.Empty(t, metadata.SaveLastSyncTimeCalls(), "Last sync time should not move past a failed record")
}

func TestSync_LogsNodeID(t *testing.T) {
	records := &storage.RecordStorageMock{
		GetRecordsUpdatedSinceFunc: func(ctx context.Context, objectType string, since time.Time) ([]*models.LocalRecord, error) {
			return nil, nil
		},
	}
	metadata := &storage.MetadataStorageMock{
		GetLastSyncTimeFunc: func(ctx context.Context, mapping string) (time.Time, error) {
			return time.Time{}, nil
		},
		SaveLastSyncTimeFunc: func(ctx context.Context, mapping string, syncedAt time.Time) error {
			return nil
		},
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	svc := newMockedService(records, metadata, emptyRemote(), logger)

	_, err := svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "node_id=test-node")
	assert.Contains(t, buf.String(), "run_id=")
}
