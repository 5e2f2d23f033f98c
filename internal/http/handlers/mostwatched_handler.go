// Most-watched aggregation HTTP handlers.
//
// This file exposes the windowed ranking endpoint:
//   - GET /v1/most-watched?from&to
//
// The window is half-open: events at exactly `to` are excluded so adjacent
// windows never double-count.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// MostWatchedItem is one ranked content in the aggregation response.
type MostWatchedItem struct {
	ContentID     string  `json:"contentId" example:"33333333-3333-4333-8333-333333333333"`
	TotalPlays    int64   `json:"totalPlays" example:"42"`
	TotalDuration float64 `json:"totalDuration" example:"9000.5"`
}

// MostWatchedResponse wraps the ranked contents with the queried window.
type MostWatchedResponse struct {
	From  string            `json:"from"`
	To    string            `json:"to"`
	Items []MostWatchedItem `json:"items"`
}

// GetMostWatched godoc
// @ID          getMostWatched
// @Summary     Rank contents by plays in a time window
// @Description Returns up to 50 contents ranked by play count (ties broken by total duration) within [from, to).
// @Tags        Aggregation
// @Produce     json
//
// @Param       from  query  string  true  "Window start (RFC 3339)"  example(2025-01-01T00:00:00Z)
// @Param       to    query  string  true  "Window end (RFC 3339, exclusive)"  example(2025-01-02T00:00:00Z)
//
// @Success     200  {object} handlers.MostWatchedResponse
// @Failure     400  {object} handlers.ErrorResponse "Malformed or inverted window"
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /most-watched [get]
func (h *Handlers) GetMostWatched(c *gin.Context) {
	var errs []FieldError

	fromStr := c.Query("from")
	from, err := time.Parse(time.RFC3339, fromStr)
	if err != nil {
		errs = append(errs, FieldError{Path: "from", Message: msgBadFromDate})
	}
	toStr := c.Query("to")
	to, err := time.Parse(time.RFC3339, toStr)
	if err != nil {
		errs = append(errs, FieldError{Path: "to", Message: msgBadToDate})
	}
	if len(errs) == 0 && !from.Before(to) {
		errs = append(errs, FieldError{Path: "from", Message: msgFromNotearlier})
	}
	if len(errs) > 0 {
		failValidation(c, errs)
		return
	}

	rows, err := h.aggSvc.MostWatched(c.Request.Context(), from, to)
	if err != nil {
		failInternal(c, err)
		return
	}

	items := make([]MostWatchedItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, MostWatchedItem{
			ContentID:     r.ContentID,
			TotalPlays:    r.TotalPlays,
			TotalDuration: r.TotalDuration,
		})
	}

	ok(c, http.StatusOK, MostWatchedResponse{
		From:  fromStr,
		To:    toStr,
		Items: items,
	})
}
