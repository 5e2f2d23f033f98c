// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Tombstone
// ledger that records erased users.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-play-history/internal/domain"
)

// UpsertTombstone records that userID's data was erased at the given time.
// The first erasure inserts the row; a repeat erasure updates deleted_at in
// place, so the ledger holds at most one row per user.
func UpsertTombstone(ctx context.Context, db *gorm.DB, userID string, deletedAt time.Time) error {
	t := &domain.Tombstone{
		UserID:    userID,
		DeletedAt: deletedAt.UTC(),
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"deleted_at": t.DeletedAt}),
		}).
		Create(t).Error
}

// TombstoneExists reports whether userID has a tombstone. It is a pure read
// of the latest committed ledger state; candidates are never cached, so each
// call reflects the store at call time.
func TombstoneExists(ctx context.Context, db *gorm.DB, userID string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Tombstone{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	return n > 0, err
}
