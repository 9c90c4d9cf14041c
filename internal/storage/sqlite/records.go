package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/recordsync/internal/models"
	"github.com/iudanet/recordsync/internal/storage"
)

const recordColumns = `id, object_type, remote_id, attributes, updated_at, synced_at`

// SaveRecord creates or replaces a local record
// Assigns a new UUID if record.ID is empty
func (s *Storage) SaveRecord(ctx context.Context, record *models.LocalRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	attributes, err := marshalAttributes(record.Attributes)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO records (` + recordColumns + `)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			object_type = excluded.object_type,
			remote_id = excluded.remote_id,
			attributes = excluded.attributes,
			updated_at = excluded.updated_at,
			synced_at = excluded.synced_at
	`

	_, err = s.db.ExecContext(ctx, query,
		record.ID,
		record.ObjectType,
		record.RemoteID,
		attributes,
		timeToNano(record.UpdatedAt),
		timeToNano(record.SyncedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}

	return nil
}

// GetRecord retrieves a local record by ID
// Returns ErrRecordNotFound if record doesn't exist
func (s *Storage) GetRecord(ctx context.Context, id string) (*models.LocalRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM records WHERE id = ?`

	record, err := scanRecord(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}

	return record, nil
}

// GetRecordByRemoteID retrieves a local record linked to a remote record
// Returns ErrRecordNotFound if no record is linked
func (s *Storage) GetRecordByRemoteID(ctx context.Context, objectType, remoteID string) (*models.LocalRecord, error) {
	if remoteID == "" {
		return nil, storage.ErrRecordNotFound
	}

	query := `SELECT ` + recordColumns + ` FROM records WHERE object_type = ? AND remote_id = ?`

	record, err := scanRecord(s.db.QueryRowContext(ctx, query, objectType, remoteID))
	if err != nil {
		return nil, err
	}

	return record, nil
}

// GetRecordsUpdatedSince returns records of a type modified after since
// Returns empty slice if no records found
func (s *Storage) GetRecordsUpdatedSince(ctx context.Context, objectType string, since time.Time) (records []*models.LocalRecord, err error) {
	query := `
		SELECT ` + recordColumns + `
		FROM records
		WHERE object_type = ? AND updated_at > ?
		ORDER BY updated_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, objectType, timeToNano(since))
	if err != nil {
		return nil, fmt.Errorf("failed to query records since timestamp: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	records = make([]*models.LocalRecord, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}

// UpdateAttributes merges attributes into a record and sets UpdatedAt
// Returns ErrRecordNotFound if record doesn't exist
func (s *Storage) UpdateAttributes(ctx context.Context, id string, attributes models.Attributes, updatedAt time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	record, err := scanRecord(tx.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM records WHERE id = ?`, id))
	if err != nil {
		return err
	}

	merged := record.Attributes.Clone()
	maps.Copy(merged, attributes)

	encoded, err := marshalAttributes(merged)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE records SET attributes = ?, updated_at = ? WHERE id = ?`,
		encoded, timeToNano(updatedAt), id,
	); err != nil {
		return fmt.Errorf("failed to update attributes: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// MarkSynced links a record to a remote record and sets SyncedAt
// Returns ErrRecordNotFound if record doesn't exist
func (s *Storage) MarkSynced(ctx context.Context, id, remoteID string, syncedAt time.Time) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE records SET remote_id = ?, synced_at = ? WHERE id = ?`,
		remoteID, timeToNano(syncedAt), id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark record synced: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return storage.ErrRecordNotFound
	}

	return nil
}

// CountPending returns the number of records of a type changed since their last sync
func (s *Storage) CountPending(ctx context.Context, objectType string) (int, error) {
	var count int

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM records WHERE object_type = ? AND updated_at > synced_at`,
		objectType,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending records: %w", err)
	}

	return count, nil
}

// rowScanner is implemented by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// scanRecord читает одну запись из результата запроса
func scanRecord(row rowScanner) (*models.LocalRecord, error) {
	record := &models.LocalRecord{}
	var attributes string
	var updatedAt, syncedAt int64

	err := row.Scan(
		&record.ID,
		&record.ObjectType,
		&record.RemoteID,
		&attributes,
		&updatedAt,
		&syncedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to scan record: %w", err)
	}

	if err := json.Unmarshal([]byte(attributes), &record.Attributes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal attributes: %w", err)
	}
	if record.Attributes == nil {
		record.Attributes = models.Attributes{}
	}

	record.UpdatedAt = nanoToTime(updatedAt)
	record.SyncedAt = nanoToTime(syncedAt)

	return record, nil
}

func marshalAttributes(attributes models.Attributes) (string, error) {
	if attributes == nil {
		attributes = models.Attributes{}
	}

	data, err := json.Marshal(attributes)
	if err != nil {
		return "", fmt.Errorf("failed to marshal attributes: %w", err)
	}

	return string(data), nil
}

// timeToNano конвертирует time.Time в unix nanoseconds (zero time = 0)
func timeToNano(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

// nanoToTime конвертирует unix nanoseconds в time.Time (0 = zero time)
func nanoToTime(n int64) time.Time {
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n).UTC()
}
