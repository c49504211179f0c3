// Reconciliation HTTP handler.
//
// This file exposes the internal trigger of the reconciliation job:
//   - POST /internal/sync  (static bearer secret)
//
// The endpoint is meant to be called by a scheduler (cron, Cloud Scheduler),
// never by end users. Authorization is a constant-time comparison against a
// single static secret.
package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RunSync godoc
// @ID          runSync
// @Summary     Run the reconciliation job
// @Description Replays the live leaderboards into durable snapshots and rebuilds the per-locale slug index. Partial failures are reported per granularity; already-committed chunks stay committed.
// @Tags        Internal
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer <sync secret>"
//
// @Success     200  {object}  services.SyncReport
// @Failure     401  {object}  handlers.ErrorResponse  "Missing or invalid secret"
// @Router      /internal/sync [post]
func (h *Handlers) RunSync(c *gin.Context) {
	token, found := bearerToken(c.GetHeader("Authorization"))
	if !found || h.syncSecret == "" ||
		subtle.ConstantTimeCompare([]byte(token), []byte(h.syncSecret)) != 1 {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid sync secret")
		return
	}

	report := h.sync.Run(c.Request.Context())
	ok(c, http.StatusOK, report)
}

// bearerToken extracts the token from an "Authorization: Bearer x" header.
func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
