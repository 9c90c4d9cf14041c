package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/recordsync/internal/models"
	"github.com/iudanet/recordsync/internal/storage"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	s, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
	}

	return s, cleanup
}

func createTestRecord(t *testing.T, ctx context.Context, s *Storage, updatedAt time.Time, attrs models.Attributes) *models.LocalRecord {
	record := &models.LocalRecord{
		ID:         uuid.New().String(),
		ObjectType: "contact",
		Attributes: attrs,
		UpdatedAt:  updatedAt,
	}

	require.NoError(t, s.SaveRecord(ctx, record))
	return record
}

func TestRecordStorage_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	updatedAt := time.Date(2024, 3, 1, 12, 0, 0, 123, time.UTC)

	tests := []struct {
		record *models.LocalRecord
		name   string
	}{
		{
			name: "unlinked record",
			record: &models.LocalRecord{
				ID:         uuid.New().String(),
				ObjectType: "contact",
				Attributes: models.Attributes{"name": "Sam", "email": "sam@example.com"},
				UpdatedAt:  updatedAt,
			},
		},
		{
			name: "linked and synced record",
			record: &models.LocalRecord{
				ID:         uuid.New().String(),
				ObjectType: "contact",
				RemoteID:   "003000000000001",
				Attributes: models.Attributes{"name": "Pat", "active": true},
				UpdatedAt:  updatedAt,
				SyncedAt:   updatedAt,
			},
		},
		{
			name: "record without attributes",
			record: &models.LocalRecord{
				ID:         uuid.New().String(),
				ObjectType: "account",
				Attributes: models.Attributes{},
				UpdatedAt:  updatedAt,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, s.SaveRecord(ctx, tt.record))

			got, err := s.GetRecord(ctx, tt.record.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.record, got)
		})
	}
}

func TestRecordStorage_SaveRecord_AssignsID(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	record := &models.LocalRecord{
		ObjectType: "contact",
		Attributes: models.Attributes{"name": "Sam"},
		UpdatedAt:  time.Now(),
	}
	require.NoError(t, s.SaveRecord(ctx, record))

	_, err := uuid.Parse(record.ID)
	assert.NoError(t, err, "ID should be a UUID")
}

func TestRecordStorage_SaveRecord_Replaces(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	record := createTestRecord(t, ctx, s, time.Now(), models.Attributes{"name": "Sam"})

	record.Attributes = models.Attributes{"name": "Samantha"}
	require.NoError(t, s.SaveRecord(ctx, record))

	got, err := s.GetRecord(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "Samantha", got.Attributes["name"])
}

func TestRecordStorage_GetRecord_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetRecord(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestRecordStorage_GetRecordByRemoteID(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	record := createTestRecord(t, ctx, s, time.Now(), models.Attributes{"name": "Sam"})
	require.NoError(t, s.MarkSynced(ctx, record.ID, "003A", time.Now()))

	got, err := s.GetRecordByRemoteID(ctx, "contact", "003A")
	require.NoError(t, err)
	assert.Equal(t, record.ID, got.ID)

	_, err = s.GetRecordByRemoteID(ctx, "account", "003A")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound, "Object type should be part of the lookup")

	_, err = s.GetRecordByRemoteID(ctx, "contact", "")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound, "Empty remote ID never matches")
}

func TestRecordStorage_GetRecordsUpdatedSince(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	old := createTestRecord(t, ctx, s, base, models.Attributes{"name": "Old"})
	newer := createTestRecord(t, ctx, s, base.Add(time.Minute), models.Attributes{"name": "Newer"})
	newest := createTestRecord(t, ctx, s, base.Add(2*time.Minute), models.Attributes{"name": "Newest"})

	tests := []struct {
		since    time.Time
		name     string
		expected []string
	}{
		{name: "zero time returns everything", since: time.Time{}, expected: []string{old.ID, newer.ID, newest.ID}},
		{name: "strictly after", since: base, expected: []string{newer.ID, newest.ID}},
		{name: "nothing newer", since: base.Add(time.Hour), expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := s.GetRecordsUpdatedSince(ctx, "contact", tt.since)
			require.NoError(t, err)

			ids := make([]string, 0, len(records))
			for _, r := range records {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}

	records, err := s.GetRecordsUpdatedSince(ctx, "account", time.Time{})
	require.NoError(t, err)
	assert.Empty(t, records, "Other object types should be filtered out")
}

func TestRecordStorage_UpdateAttributes(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	record := createTestRecord(t, ctx, s, base, models.Attributes{"name": "Sam", "email": "sam@example.com"})

	err := s.UpdateAttributes(ctx, record.ID, models.Attributes{"email": "sam@example.org"}, base.Add(time.Minute))
	require.NoError(t, err)

	got, err := s.GetRecord(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Attributes{"name": "Sam", "email": "sam@example.org"}, got.Attributes)
	assert.Equal(t, base.Add(time.Minute), got.UpdatedAt)

	err = s.UpdateAttributes(ctx, "missing", models.Attributes{"name": "X"}, base)
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestRecordStorage_MarkSynced(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	record := createTestRecord(t, ctx, s, base, models.Attributes{"name": "Sam"})

	require.NoError(t, s.MarkSynced(ctx, record.ID, "003A", base))

	got, err := s.GetRecord(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "003A", got.RemoteID)
	assert.Equal(t, base, got.SyncedAt)
	assert.Equal(t, base, got.UpdatedAt, "MarkSynced should not touch UpdatedAt")

	err = s.MarkSynced(ctx, "missing", "003B", base)
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestRecordStorage_CountPending(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	synced := createTestRecord(t, ctx, s, base, models.Attributes{"name": "Synced"})
	createTestRecord(t, ctx, s, base, models.Attributes{"name": "Never synced"})
	changed := createTestRecord(t, ctx, s, base.Add(time.Minute), models.Attributes{"name": "Changed"})

	require.NoError(t, s.MarkSynced(ctx, synced.ID, "003A", base))
	require.NoError(t, s.MarkSynced(ctx, changed.ID, "003B", base))

	count, err := s.CountPending(ctx, "contact")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = s.CountPending(ctx, "account")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
