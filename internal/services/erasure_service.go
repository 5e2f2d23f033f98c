// Package services – ErasureService
//
// This file implements the right-to-be-forgotten workflow: purge a user's
// play events and record the erasure in the tombstone ledger. Both writes
// happen inside one transaction so a failure of either leaves no partial
// state behind.
package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-play-history/internal/repo"
)

// ErasureService performs user data erasure.
type ErasureService struct {
	// DB is the GORM handle used for the erasure transaction.
	DB *gorm.DB
}

// Erase deletes every play event belonging to userID and upserts the user's
// tombstone with the current timestamp, atomically. It returns the number of
// play rows removed; zero is a valid outcome, including for a user that was
// never seen or was already erased.
//
// Idempotence: a repeat call deletes nothing, refreshes deleted_at on the
// existing tombstone, and still succeeds. After Erase returns, ingestion for
// userID is rejected system-wide.
func (s *ErasureService) Erase(ctx context.Context, userID string) (int64, error) {
	var deleted int64
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := repo.DeleteUserPlays(ctx, tx, userID)
		if err != nil {
			return err
		}
		if err := repo.UpsertTombstone(ctx, tx, userID, time.Now().UTC()); err != nil {
			return err
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
