// Health HTTP handlers.
//
// This file exposes the liveness/readiness endpoint:
//   - GET /health
//
// Health is 200 only when the database answers a ping; the response carries
// runtime environment details to make deployment mixups visible.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-play-history/internal/sysutil"
)

// HealthChecker verifies reachability of the backing store.
type HealthChecker interface {
	// Ping answers nil when the database is reachable.
	Ping(ctx context.Context) error
}

// healthPingTimeout bounds the DB probe so a wedged pool cannot hang the
// health endpoint.
const healthPingTimeout = 2 * time.Second

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status    string                  `json:"status" example:"ok"`
	DB        string                  `json:"db" example:"reachable"`
	Timestamp time.Time               `json:"timestamp"`
	Env       sysutil.EnvironmentInfo `json:"env"`
}

// Health godoc
// @ID          health
// @Summary     Liveness and DB reachability
// @Tags        Health
// @Produce     json
// @Success     200  {object} handlers.HealthResponse
// @Failure     500  {object} handlers.ErrorResponse "Database unreachable"
// @Router      /health [get]
func (h *Handlers) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		failInternal(c, err)
		return
	}

	ok(c, http.StatusOK, HealthResponse{
		Status:    "ok",
		DB:        "reachable",
		Timestamp: time.Now().UTC(),
		Env:       sysutil.DetectEnvironment(),
	})
}
