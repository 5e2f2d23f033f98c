// Playback history HTTP handlers.
//
// This file exposes the per-user history endpoint:
//   - GET /v1/history/{userId}?limit&offset
//
// Absence is represented as an empty page with total=0, never as 404.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-play-history/internal/utils"
)

// Pagination bounds for history queries.
const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// HistoryItem is one playback record in a history page.
type HistoryItem struct {
	ContentID        string    `json:"contentId" example:"33333333-3333-4333-8333-333333333333"`
	Device           string    `json:"device" example:"living-room-tv"`
	PlaybackDuration float64   `json:"playbackDuration" example:"183.5"`
	PlayedAt         time.Time `json:"playedAt" example:"2025-10-06T10:00:00Z"`
}

// HistoryResponse wraps a page of playback history with pagination metadata.
type HistoryResponse struct {
	UserID string        `json:"userId"`
	Total  int64         `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
	Items  []HistoryItem `json:"items"`
}

// GetHistory godoc
// @ID          getHistory
// @Summary     Get a user's playback history
// @Description Returns the user's play events ordered most recent first, with offset pagination.
// @Tags        History
// @Produce     json
//
// @Param       userId  path   string  true   "User ID (UUID)"  format(uuid) example(22222222-2222-4222-8222-222222222222)
// @Param       limit   query  int     false  "Page size, 1–100"  default(20)
// @Param       offset  query  int     false  "Rows to skip"      default(0)
//
// @Success     200  {object} handlers.HistoryResponse
// @Failure     400  {object} handlers.ErrorResponse "Malformed userId or pagination"
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /history/{userId} [get]
func (h *Handlers) GetHistory(c *gin.Context) {
	var errs []FieldError

	userID := c.Param("userId")
	if !validUUID(userID) {
		errs = append(errs, FieldError{Path: "userId", Message: msgInvalidUUID})
	}
	limit, okLimit := utils.BoundedInt(c.Query("limit"), defaultHistoryLimit, 1, maxHistoryLimit)
	if !okLimit {
		errs = append(errs, FieldError{Path: "limit", Message: msgBadLimit})
	}
	offset, okOffset := utils.BoundedInt(c.Query("offset"), 0, 0, int(^uint(0)>>1))
	if !okOffset {
		errs = append(errs, FieldError{Path: "offset", Message: msgBadOffset})
	}
	if len(errs) > 0 {
		failValidation(c, errs)
		return
	}

	events, total, err := h.historySvc.Page(c.Request.Context(), userID, limit, offset)
	if err != nil {
		failInternal(c, err)
		return
	}

	items := make([]HistoryItem, 0, len(events))
	for _, ev := range events {
		items = append(items, HistoryItem{
			ContentID:        ev.ContentID,
			Device:           ev.Device,
			PlaybackDuration: ev.PlaybackDuration,
			PlayedAt:         ev.PlayedAt,
		})
	}

	ok(c, http.StatusOK, HistoryResponse{
		UserID: userID,
		Total:  total,
		Limit:  limit,
		Offset: offset,
		Items:  items,
	})
}
