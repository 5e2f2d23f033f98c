// GDPR erasure HTTP handlers.
//
// This file exposes the right-to-be-forgotten endpoint:
//   - DELETE /v1/users/{userId}  (erase all data for a user)
//
// Erasure always answers 200 with the number of removed records, including
// zero for a user with no data or one erased before; repeating the request
// only refreshes the tombstone timestamp.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-play-history/internal/http/middleware"
)

// EraseUserResponse is returned by DELETE /v1/users/{userId}.
type EraseUserResponse struct {
	Message        string `json:"message" example:"User data deleted under GDPR"`
	UserID         string `json:"userId" example:"22222222-2222-4222-8222-222222222222"`
	DeletedRecords int64  `json:"deletedRecords" example:"3"`
}

// EraseUser godoc
// @ID          eraseUser
// @Summary     Erase a user's play data
// @Description Deletes every play event for the user and records a tombstone that blocks future ingestion. Idempotent.
// @Tags        GDPR
// @Produce     json
//
// @Param       userId  path  string  true  "User ID (UUID)"  format(uuid) example(22222222-2222-4222-8222-222222222222)
//
// @Success     200  {object} handlers.EraseUserResponse
// @Failure     400  {object} handlers.ErrorResponse "Malformed userId"
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /users/{userId} [delete]
func (h *Handlers) EraseUser(c *gin.Context) {
	userID := c.Param("userId")
	if !validUUID(userID) {
		failValidation(c, []FieldError{{Path: "userId", Message: msgInvalidUUID}})
		return
	}

	deleted, err := h.erasureSvc.Erase(c.Request.Context(), userID)
	if err != nil {
		failInternal(c, err)
		return
	}
	middleware.ObserveErasure(deleted)

	lg := middleware.LoggerFrom(c)
	lg.Info().Str("user_id", userID).Int64("deleted_records", deleted).Msg("user data erased")

	ok(c, http.StatusOK, EraseUserResponse{
		Message:        "User data deleted under GDPR",
		UserID:         userID,
		DeletedRecords: deleted,
	})
}
