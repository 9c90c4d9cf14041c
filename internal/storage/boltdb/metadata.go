package boltdb

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/recordsync/internal/storage"
)

// SaveLastSyncTime saves the start time of the last successful pass for a mapping
func (s *Storage) SaveLastSyncTime(ctx context.Context, mapping string, syncedAt time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncTimes)
		if bucket == nil {
			return fmt.Errorf("sync times bucket not found")
		}

		// Конвертируем время в unix nanoseconds
		value := make([]byte, 8)
		binary.BigEndian.PutUint64(value, uint64(syncedAt.UnixNano()))

		if err := bucket.Put([]byte(mapping), value); err != nil {
			return fmt.Errorf("failed to save last sync time: %w", err)
		}

		return nil
	})
}

// GetLastSyncTime retrieves the start time of the last successful pass for a mapping
// Returns zero time if no sync has been performed yet
func (s *Storage) GetLastSyncTime(ctx context.Context, mapping string) (time.Time, error) {
	if s.db == nil {
		return time.Time{}, storage.ErrStorageClosed
	}

	var syncedAt time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncTimes)
		if bucket == nil {
			return fmt.Errorf("sync times bucket not found")
		}

		value := bucket.Get([]byte(mapping))
		if value == nil {
			// Первая синхронизация
			return nil
		}

		syncedAt = time.Unix(0, int64(binary.BigEndian.Uint64(value))).UTC()
		return nil
	})

	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last sync time: %w", err)
	}

	return syncedAt, nil
}

// SaveFingerprint stores the digest of the last merged view pushed to a remote record
func (s *Storage) SaveFingerprint(ctx context.Context, mapping, remoteID string, fingerprint []byte) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketFingerprints)
		if bucket == nil {
			return fmt.Errorf("fingerprints bucket not found")
		}

		if err := bucket.Put(fingerprintKey(mapping, remoteID), fingerprint); err != nil {
			return fmt.Errorf("failed to save fingerprint: %w", err)
		}

		return nil
	})
}

// GetFingerprint retrieves the digest stored by SaveFingerprint
// Returns nil if nothing was stored
func (s *Storage) GetFingerprint(ctx context.Context, mapping, remoteID string) ([]byte, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var fingerprint []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketFingerprints)
		if bucket == nil {
			return fmt.Errorf("fingerprints bucket not found")
		}

		// Значение валидно только внутри транзакции - копируем
		if value := bucket.Get(fingerprintKey(mapping, remoteID)); value != nil {
			fingerprint = bytes.Clone(value)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get fingerprint: %w", err)
	}

	return fingerprint, nil
}

// fingerprintKey строит ключ вида "<mapping>\x00<remoteID>"
func fingerprintKey(mapping, remoteID string) []byte {
	key := make([]byte, 0, len(mapping)+len(remoteID)+1)
	key = append(key, mapping...)
	key = append(key, 0)
	key = append(key, remoteID...)
	return key
}
