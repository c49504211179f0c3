// Profile rank HTTP handlers.
//
// This file exposes the per-profile read endpoints:
//   - GET /profiles/{slug}/ranks    (per-dimension, per-period ranks)
//   - GET /profiles/{slug}/badge    (monthly top-100 badge)
//   - GET /profiles/{slug}/stats    (raw view/boost counters)
//   - GET /profiles/{slug}/history  (durable snapshot time series)
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-trending-backend/internal/domain"
	"github.com/tbourn/go-trending-backend/internal/services"
	"github.com/tbourn/go-trending-backend/internal/utils"
)

// BadgeResponse carries the monthly badge rank, null when the profile is
// outside the top 100 (or the board is unavailable).
type BadgeResponse struct {
	Badge *int64 `json:"badge"`
}

// HistoryResponse wraps the snapshot time series of one profile.
type HistoryResponse struct {
	Slug      string                `json:"slug"`
	Period    string                `json:"period"`
	Snapshots []domain.RankSnapshot `json:"snapshots"`
}

// validPeriodTags is the accepted set of the history endpoint's period
// query parameter.
var validPeriodTags = map[string]bool{
	"DAILY": true, "WEEKLY": true, "MONTHLY": true, "YEARLY": true, "ALL_TIME": true,
}

// GetRanks godoc
// @ID          getRanks
// @Summary     Get a profile's ranks
// @Description Returns the profile's 1-based rank per period on the global, locale, and any tagged dimension leaderboards. Absent boards yield null.
// @Tags        Profiles
// @Produce     json
//
// @Param       slug     path   string  true  "Profile slug"     example(marie-curie)
// @Param       locale   query  string  false "Locale"           default(en)
// @Param       category query  string  false "Category tag"     example(scientist)
// @Param       zodiac   query  string  false "Zodiac tag"       example(scorpio)
// @Param       year     query  int     false "Birth year tag"   example(1867)
//
// @Success     200  {object}  services.RankReport
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /profiles/{slug}/ranks [get]
func (h *Handlers) GetRanks(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "profile slug required")
		return
	}

	tags := services.RankTags{
		Category:  strings.TrimSpace(c.Query("category")),
		Zodiac:    strings.TrimSpace(c.Query("zodiac")),
		BirthYear: utils.AtoiDefault(c.Query("year"), 0),
	}

	report, err := h.ranks.Ranks(c.Request.Context(), slug, localeParam(c), tags)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, report)
}

// GetBadge godoc
// @ID          getBadge
// @Summary     Get a profile's monthly badge
// @Description Returns the profile's locale-global monthly rank when it is within the top 100; the badge is null otherwise.
// @Tags        Profiles
// @Produce     json
//
// @Param       slug    path   string  true  "Profile slug"  example(marie-curie)
// @Param       locale  query  string  false "Locale"        default(en)
//
// @Success     200  {object}  handlers.BadgeResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Router      /profiles/{slug}/badge [get]
func (h *Handlers) GetBadge(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "profile slug required")
		return
	}

	badge, err := h.ranks.MonthlyBadge(c.Request.Context(), slug, localeParam(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, BadgeResponse{Badge: badge})
}

// GetStats godoc
// @ID          getStats
// @Summary     Get a profile's raw counters
// @Description Returns the profile's raw view and boost counters per period in one locale. Counters are display-only and never feed ranking.
// @Tags        Profiles
// @Produce     json
//
// @Param       slug    path   string  true  "Profile slug"  example(marie-curie)
// @Param       locale  query  string  false "Locale"        default(en)
//
// @Success     200  {object}  map[string]services.CounterStats
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /profiles/{slug}/stats [get]
func (h *Handlers) GetStats(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "profile slug required")
		return
	}

	stats, err := h.ranks.Stats(c.Request.Context(), slug, localeParam(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, stats)
}

// GetHistory godoc
// @ID          getHistory
// @Summary     Get a profile's rank history
// @Description Returns the durable rank snapshots of a profile for one period tag, most recent first.
// @Tags        Profiles
// @Produce     json
//
// @Param       slug    path   string  true  "Profile slug"                          example(marie-curie)
// @Param       period  query  string  false "Period tag"                            Enums(DAILY, WEEKLY, MONTHLY, YEARLY, ALL_TIME) default(WEEKLY)
// @Param       limit   query  int     false "Maximum number of snapshots (1-365)"   default(30)
//
// @Success     200  {object}  handlers.HistoryResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /profiles/{slug}/history [get]
func (h *Handlers) GetHistory(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "profile slug required")
		return
	}

	periodTag := strings.ToUpper(strings.TrimSpace(c.DefaultQuery("period", "WEEKLY")))
	if !validPeriodTags[periodTag] {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid period tag")
		return
	}

	limit := utils.AtoiDefault(c.Query("limit"), 30)
	if limit < 1 {
		limit = 1
	}
	if limit > 365 {
		limit = 365
	}

	snaps, err := h.ranks.History(c.Request.Context(), slug, periodTag, limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, HistoryResponse{Slug: slug, Period: periodTag, Snapshots: snaps})
}
