package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"termsync/internal/storage"
)

var lastSyncKey = []byte("last_sync")

// SaveLastSync records a completed synchronization run
func (s *Storage) SaveLastSync(ctx context.Context, sync *storage.LastSync) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		data, err := json.Marshal(sync)
		if err != nil {
			return fmt.Errorf("failed to marshal sync metadata: %w", err)
		}

		if err := bucket.Put(lastSyncKey, data); err != nil {
			return fmt.Errorf("failed to save sync metadata: %w", err)
		}

		return nil
	})
}

// GetLastSync retrieves the most recent completed run
func (s *Storage) GetLastSync(ctx context.Context) (*storage.LastSync, error) {
	var sync *storage.LastSync

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		data := bucket.Get(lastSyncKey)
		if data == nil {
			return storage.ErrMetadataNotFound
		}

		sync = &storage.LastSync{}
		if err := json.Unmarshal(data, sync); err != nil {
			return fmt.Errorf("failed to unmarshal sync metadata: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return sync, nil
}
