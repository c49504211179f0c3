// Trending and discovery HTTP handlers.
//
// This file exposes the list-shaped read endpoints:
//   - GET /trending          (trending profiles with period fallback)
//   - GET /profiles/random   (random published profile)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-trending-backend/internal/services"
	"github.com/tbourn/go-trending-backend/internal/utils"
)

// TrendingResponse wraps the trending list with the granularity that served
// it, so clients can label the list ("this week" vs "all time").
type TrendingResponse struct {
	Locale  string                   `json:"locale"`
	Source  string                   `json:"source" example:"weekly"`
	Entries []services.TrendingEntry `json:"entries"`
}

// GetTrending godoc
// @ID          getTrending
// @Summary     Get trending profiles
// @Description Returns the current trending list for a locale. Thin leaderboards fall back from weekly to monthly to all-time; the source field names the period that served the list. Infrastructure failure degrades to an empty list.
// @Tags        Trending
// @Produce     json
//
// @Param       locale  query  string  false "Locale"                     default(en)
// @Param       limit   query  int     false "Maximum entries (1-50)"     default(10)
//
// @Success     200  {object}  handlers.TrendingResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /trending [get]
func (h *Handlers) GetTrending(c *gin.Context) {
	locale := localeParam(c)

	limit := utils.AtoiDefault(c.Query("limit"), 10)
	if limit < 1 {
		limit = 1
	}
	if limit > 50 {
		limit = 50
	}

	entries, source, err := h.ranks.Trending(c.Request.Context(), locale, limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	if entries == nil {
		entries = []services.TrendingEntry{}
	}
	ok(c, http.StatusOK, TrendingResponse{Locale: locale, Source: string(source), Entries: entries})
}

// GetRandomProfile godoc
// @ID          getRandomProfile
// @Summary     Get a random published profile
// @Description Picks a uniformly random published profile of a locale from the slug index rebuilt on every reconciliation run.
// @Tags        Profiles
// @Produce     json
//
// @Param       locale  query  string  false "Locale"  default(en)
//
// @Success     200  {object}  domain.Profile
// @Failure     404  {object}  handlers.ErrorResponse  "No published profile"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /profiles/random [get]
func (h *Handlers) GetRandomProfile(c *gin.Context) {
	p, err := h.ranks.RandomProfile(c.Request.Context(), localeParam(c))
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "no published profile for locale")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, p)
}
