// Package services – HistoryService
//
// Read-only projection of a user's playback history with offset pagination.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-play-history/internal/domain"
	"github.com/tbourn/go-play-history/internal/repo"
)

// HistoryService serves paginated play history for a single user.
type HistoryService struct {
	// DB is the GORM handle used for history reads.
	DB *gorm.DB
}

// Page returns one page of userID's play events ordered most recent first,
// plus the total event count for pagination metadata. A user with no events
// (or one that never existed) yields total=0 and an empty page, not an
// error.
func (s *HistoryService) Page(ctx context.Context, userID string, limit, offset int) ([]domain.PlayEvent, int64, error) {
	total, err := repo.CountUserPlays(ctx, s.DB, userID)
	if err != nil {
		return nil, 0, err
	}
	items, err := repo.ListUserPlaysPage(ctx, s.DB, userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
