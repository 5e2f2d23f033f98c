// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the aggregation query used by the
// most-watched report.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// mostWatchedLimit caps the number of ranked contents returned.
const mostWatchedLimit = 50

// MostWatchedRow is one ranked aggregation result: a content identifier with
// its play count and summed playback duration inside the queried window.
type MostWatchedRow struct {
	ContentID     string  `gorm:"column:content_id"`
	TotalPlays    int64   `gorm:"column:total_plays"`
	TotalDuration float64 `gorm:"column:total_duration"`
}

// MostWatched ranks contents by play count (then by total duration) over the
// half-open window [from, to). Events at exactly `to` are excluded so
// adjacent windows never double-count. Returns an empty slice when no events
// fall inside the window.
func MostWatched(ctx context.Context, db *gorm.DB, from, to time.Time) ([]MostWatchedRow, error) {
	var rows []MostWatchedRow
	err := db.WithContext(ctx).Raw(`
		SELECT
			content_id,
			COUNT(*) AS total_plays,
			SUM(playback_duration) AS total_duration
		FROM plays
		WHERE played_at >= ? AND played_at < ?
		GROUP BY content_id
		ORDER BY total_plays DESC, total_duration DESC
		LIMIT ?`,
		from.UTC(), to.UTC(), mostWatchedLimit,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []MostWatchedRow{}
	}
	return rows, nil
}
