// Package services – AggregationService
//
// Read-only "most watched" ranking over a half-open time window.
package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-play-history/internal/repo"
)

// AggregationService computes windowed most-watched rankings.
type AggregationService struct {
	// DB is the GORM handle used for aggregation reads.
	DB *gorm.DB
}

// MostWatched ranks contents played within [from, to) by play count
// descending, breaking ties by total playback duration descending, capped
// at 50 entries. An empty window returns an empty slice.
func (s *AggregationService) MostWatched(ctx context.Context, from, to time.Time) ([]repo.MostWatchedRow, error) {
	return repo.MostWatched(ctx, s.DB, from, to)
}
