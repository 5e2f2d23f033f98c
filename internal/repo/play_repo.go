// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the PlayEvent
// model.
//
// The repository follows a "thin" approach: it performs persistence and
// query composition, leaving policy (duplicate vs. rejected outcomes, race
// disambiguation) to the services package.
//
// Error semantics:
//   - Absence is not an error: a lookup over zero rows yields empty results,
//     and a conditional insert that writes nothing reports zero rows.
//   - On DB errors (connectivity, constraint trouble, etc.), the raw gorm
//     error is propagated for the service layer to surface as an
//     infrastructure failure.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-play-history/internal/domain"
)

// insertPlaySQL writes a play event only when (a) no tombstone exists for
// the user and (b) no row with the same event_id exists. The single
// statement makes the store's own atomicity arbitrate the
// tombstone-vs-ingestion ordering instead of a racy check-then-insert, and
// ON CONFLICT DO NOTHING gives insert-if-absent semantics for retries.
// Portable across Postgres and SQLite (both support upsert clauses and a
// SELECT source with WHERE).
const insertPlaySQL = `
INSERT INTO plays (event_id, user_id, content_id, device, playback_duration, played_at, created_at)
SELECT ?, ?, ?, ?, ?, ?, ?
WHERE NOT EXISTS (SELECT 1 FROM gdpr_tombstones WHERE user_id = ?)
ON CONFLICT (event_id) DO NOTHING`

// InsertPlay persists a play event with insert-if-absent semantics guarded
// by the tombstone ledger. It reports inserted=false both for a duplicate
// event_id and for a tombstoned user; the caller distinguishes the two by
// consulting TombstoneExists afterwards.
func InsertPlay(ctx context.Context, db *gorm.DB, ev *domain.PlayEvent) (bool, error) {
	res := db.WithContext(ctx).Exec(insertPlaySQL,
		ev.EventID,
		ev.UserID,
		ev.ContentID,
		ev.Device,
		ev.PlaybackDuration,
		ev.PlayedAt.UTC(),
		time.Now().UTC(),
		ev.UserID,
	)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteUserPlays removes every play event recorded for userID and returns
// the number of rows deleted. Zero is a valid outcome, including for a user
// that never existed.
func DeleteUserPlays(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	res := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&domain.PlayEvent{})
	return res.RowsAffected, res.Error
}

// CountUserPlays returns the total number of play events for userID.
// A raw COUNT is used so a missing table surfaces as an error.
func CountUserPlays(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM plays WHERE user_id = ?", userID).
		Scan(&total).Error
	return total, err
}

// ListUserPlaysPage returns a page of play events for userID ordered by
// played_at descending, with event_id as a deterministic tiebreak. Use
// CountUserPlays to obtain the total for pagination metadata.
func ListUserPlaysPage(ctx context.Context, db *gorm.DB, userID string, offset, limit int) ([]domain.PlayEvent, error) {
	var out []domain.PlayEvent
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("played_at DESC, event_id DESC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}
