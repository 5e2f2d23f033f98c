// Play ingestion HTTP handlers.
//
// This file exposes the REST endpoint for recording playback events:
//   - POST /v1/play  (ingest one play event)
//
// Handlers in this file are transport-thin: they validate input, delegate to
// the ingestion service, and translate the explicit ingestion outcome
// (accepted / duplicate / rejected-erased) into HTTP results. A duplicate is
// a success with a distinguishing message so clients can retry submissions
// safely.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-play-history/internal/domain"
	"github.com/tbourn/go-play-history/internal/http/middleware"
	"github.com/tbourn/go-play-history/internal/repo"
	"github.com/tbourn/go-play-history/internal/services"
)

//
// Service contracts (context-aware)
//

// IngestService decides the outcome for a submitted play event.
//
// Implementations must be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type IngestService interface {
	// Submit ingests the event and reports accepted/duplicate/rejected.
	Submit(ctx context.Context, ev *domain.PlayEvent) (services.SubmitResult, error)
}

// ErasureService erases all data recorded for a user.
type ErasureService interface {
	// Erase purges the user's play events, writes the tombstone, and
	// returns the number of rows removed.
	Erase(ctx context.Context, userID string) (int64, error)
}

// HistoryService serves paginated playback history.
type HistoryService interface {
	// Page returns one page of events plus the total count for the user.
	Page(ctx context.Context, userID string, limit, offset int) ([]domain.PlayEvent, int64, error)
}

// AggregationService computes most-watched rankings.
type AggregationService interface {
	// MostWatched ranks contents played within [from, to).
	MostWatched(ctx context.Context, from, to time.Time) ([]repo.MostWatchedRow, error)
}

// errUnknownOutcome guards the exhaustive switch over ingestion outcomes.
var errUnknownOutcome = errors.New("unknown ingestion outcome")

//
// Handler wiring
//

// Handlers groups the HTTP endpoints of the play history API. It depends on
// abstract service interfaces to keep transport concerns separate from
// business logic.
type Handlers struct {
	ingestSvc  IngestService
	erasureSvc ErasureService
	historySvc HistoryService
	aggSvc     AggregationService
	health     HealthChecker
}

// New constructs a Handlers instance bound to the given services.
func New(ingest IngestService, erasure ErasureService, history HistoryService, agg AggregationService, health HealthChecker) *Handlers {
	return &Handlers{
		ingestSvc:  ingest,
		erasureSvc: erasure,
		historySvc: history,
		aggSvc:     agg,
		health:     health,
	}
}

//
// DTOs
//

// PlayEventRequest is the JSON payload for POST /v1/play.
//
// eventId is the client-generated idempotency key: resubmitting the same
// payload is safe and reports a duplicate instead of creating a second row.
type PlayEventRequest struct {
	EventID          string  `json:"eventId"          binding:"required,uuid_rfc4122" example:"11111111-1111-4111-8111-111111111111"`
	UserID           string  `json:"userId"           binding:"required,uuid_rfc4122" example:"22222222-2222-4222-8222-222222222222"`
	ContentID        string  `json:"contentId"        binding:"required,uuid_rfc4122" example:"33333333-3333-4333-8333-333333333333"`
	Device           string  `json:"device"           binding:"required" example:"living-room-tv"`
	PlaybackDuration float64 `json:"playbackDuration" binding:"required,gt=0" example:"183.5"`
	PlayedAt         string  `json:"playedAt"         binding:"required,utc_timestamp" example:"2025-10-06T10:00:00Z"`
}

// PlayResponse is returned by POST /v1/play on success. Message is present
// only for the duplicate outcome.
type PlayResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message,omitempty" example:"Duplicate event ignored (idempotent)"`
}

// SubmitPlay godoc
// @ID          submitPlay
// @Summary     Record a playback event
// @Description Ingests a play event idempotently. A replayed eventId yields 200 with a duplicate notice; an erased user is rejected with 403.
// @Tags        Play
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.PlayEventRequest  true  "Play event"
//
// @Success     200  {object} handlers.PlayResponse
// @Failure     400  {object} handlers.ErrorResponse "Validation failed"
// @Failure     403  {object} handlers.ErrorResponse "User data previously deleted"
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /play [post]
func (h *Handlers) SubmitPlay(c *gin.Context) {
	var req PlayEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, bindErrors(err))
		return
	}

	playedAt, err := parseUTCTimestamp(req.PlayedAt)
	if err != nil {
		failValidation(c, []FieldError{{Path: "playedAt", Message: msgBadPlayedAt}})
		return
	}

	ev := &domain.PlayEvent{
		EventID:          req.EventID,
		UserID:           req.UserID,
		ContentID:        req.ContentID,
		Device:           req.Device,
		PlaybackDuration: req.PlaybackDuration,
		PlayedAt:         playedAt,
	}

	res, err := h.ingestSvc.Submit(c.Request.Context(), ev)
	if err != nil {
		failInternal(c, err)
		return
	}
	middleware.ObserveIngest(res.String())

	switch res {
	case services.SubmitAccepted:
		ok(c, http.StatusOK, PlayResponse{Status: "ok"})
	case services.SubmitDuplicate:
		ok(c, http.StatusOK, PlayResponse{
			Status:  "ok",
			Message: "Duplicate event ignored (idempotent)",
		})
	case services.SubmitRejectedErased:
		fail(c, http.StatusForbidden, ErrCodeIngestBlocked,
			"User data previously deleted under GDPR. Ingestion blocked.")
	default:
		failInternal(c, errUnknownOutcome)
	}
}
