// Package domain defines the persistence models for play events and GDPR
// tombstones. These types are mapped with GORM and form the core data layer
// of the play history service.
package domain

import "time"

// PlayEvent is a single recorded playback of a piece of content on a device.
// The row is immutable once written: event_id is the client-supplied
// idempotency key and ingestion uses insert-if-absent semantics, so a
// retried submission never overwrites existing fields.
//
// Fields:
//   - EventID: client-generated UUID primary key; at most one row per value.
//   - UserID: identifier of the user who produced the event; indexed for
//     history queries and erasure.
//   - ContentID: identifier of the content played; indexed for aggregation.
//   - Device: non-empty label of the playback device.
//   - PlaybackDuration: playback length in seconds, strictly positive.
//   - PlayedAt: UTC timestamp of playback; indexed for windowed reporting.
//   - CreatedAt: ingestion timestamp managed by GORM.
type PlayEvent struct {
	EventID          string    `json:"eventId"          gorm:"column:event_id;type:char(36);primaryKey"`
	UserID           string    `json:"userId"           gorm:"column:user_id;type:char(36);not null;index:idx_plays_user"`
	ContentID        string    `json:"contentId"        gorm:"column:content_id;type:char(36);not null;index:idx_plays_content"`
	Device           string    `json:"device"           gorm:"column:device;type:varchar(255);not null"`
	PlaybackDuration float64   `json:"playbackDuration" gorm:"column:playback_duration;not null"`
	PlayedAt         time.Time `json:"playedAt"         gorm:"column:played_at;not null;index:idx_plays_played_at"`
	CreatedAt        time.Time `json:"-"`
}

// TableName returns the database table name for PlayEvent.
func (PlayEvent) TableName() string { return "plays" }

// Tombstone records that a user's play data was erased under a
// right-to-be-forgotten request. One row per user: a repeat erasure
// refreshes DeletedAt instead of inserting a second row (upsert semantics,
// deliberately different from PlayEvent's insert-if-absent policy).
//
// Once a tombstone exists, ingestion for that user is refused; the row also
// makes the deletion auditable.
type Tombstone struct {
	UserID    string    `json:"userId"    gorm:"column:user_id;type:char(36);primaryKey"`
	DeletedAt time.Time `json:"deletedAt" gorm:"column:deleted_at;not null"`
}

// TableName returns the database table name for Tombstone.
func (Tombstone) TableName() string { return "gdpr_tombstones" }
