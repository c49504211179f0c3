// Interaction HTTP handlers.
//
// This file exposes the write side of the API:
//   - POST /interactions  (record a view or boost)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses. The interaction write is
// acknowledged before the leaderboard fan-out runs, so a 202 means
// "accepted", not "counted".
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-trending-backend/internal/domain"
	"github.com/tbourn/go-trending-backend/internal/period"
	"github.com/tbourn/go-trending-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// InteractionRecorder defines the interaction write operation consumed by
// HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type InteractionRecorder interface {
	// Record validates the interaction, applies the boost cooldown, and
	// schedules the leaderboard fan-out.
	Record(ctx context.Context, in domain.Interaction, sourceIP string) error
}

// RankReader defines the leaderboard read operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type RankReader interface {
	// Ranks returns per-dimension, per-period 1-based ranks for a profile.
	Ranks(ctx context.Context, slug, locale string, tags services.RankTags) (*services.RankReport, error)
	// Trending returns the trending list for a locale plus the granularity
	// that actually served it.
	Trending(ctx context.Context, locale string, limit int) ([]services.TrendingEntry, period.Granularity, error)
	// MonthlyBadge returns the locale-global monthly rank when it is within
	// the top 100, nil otherwise.
	MonthlyBadge(ctx context.Context, slug, locale string) (*int64, error)
	// Stats returns raw view/boost counters per granularity.
	Stats(ctx context.Context, slug, locale string) (map[string]services.CounterStats, error)
	// RandomProfile picks a random published profile of a locale.
	RandomProfile(ctx context.Context, locale string) (*domain.Profile, error)
	// History returns the durable snapshot time series of a profile.
	History(ctx context.Context, slug, periodTag string, limit int) ([]domain.RankSnapshot, error)
}

// SyncRunner defines the reconciliation trigger consumed by the internal
// sync endpoint.
type SyncRunner interface {
	// Run executes one reconciliation pass and reports per-granularity
	// outcomes. It never fails as a whole.
	Run(ctx context.Context) *services.SyncReport
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for interactions, ranks, trending, and
// reconciliation. It depends on abstract service interfaces to keep
// transport concerns separate from business logic.
type Handlers struct {
	recorder   InteractionRecorder
	ranks      RankReader
	sync       SyncRunner
	syncSecret string
}

// New constructs a Handlers instance bound to the given services. syncSecret
// is the static bearer token guarding the internal sync endpoint; when empty
// the endpoint always responds 401.
func New(recorder InteractionRecorder, ranks RankReader, sync SyncRunner, syncSecret string) *Handlers {
	return &Handlers{recorder: recorder, ranks: ranks, sync: sync, syncSecret: syncSecret}
}

// localeParam returns the normalized "locale" query parameter, defaulting to
// "en". Shape validation happens in the service layer.
func localeParam(c *gin.Context) string {
	loc := strings.ToLower(strings.TrimSpace(c.Query("locale")))
	if loc == "" {
		return "en"
	}
	return loc
}

//
// DTOs
//

// InteractionRequest is the JSON payload for recording an interaction.
type InteractionRequest struct {
	// Slug identifies the target profile.
	Slug string `json:"slug" binding:"required" example:"marie-curie"`
	// Type is the interaction kind: "view" or "boost".
	Type string `json:"type" binding:"required" example:"view"`
	// Locale is the lowercase two-letter site locale.
	Locale string `json:"locale" binding:"required" example:"en"`
	// Category optionally tags the profile's category dimension.
	Category string `json:"category,omitempty" example:"scientist"`
	// Zodiac optionally tags the profile's zodiac dimension.
	Zodiac string `json:"zodiac,omitempty" example:"scorpio"`
	// BirthYear optionally tags the profile's birth-year dimension.
	BirthYear int `json:"birth_year,omitempty" example:"1867"`
}

// InteractionResponse acknowledges an accepted interaction.
type InteractionResponse struct {
	Status string `json:"status" example:"accepted"`
}

//
// Handlers
//

// RecordInteraction godoc
// @ID          recordInteraction
// @Summary     Record a view or boost
// @Description Records an interaction against a profile. Boosts are gated by a per-(IP, profile) cooldown. The leaderboard update happens after the response.
// @Tags        Interactions
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.InteractionRequest  true  "Interaction payload"
//
// @Success     202  {object}  handlers.InteractionResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     429  {object}  handlers.ErrorResponse  "Boost cooldown active"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /interactions [post]
func (h *Handlers) RecordInteraction(c *gin.Context) {
	var req InteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	in := domain.Interaction{
		Slug:      req.Slug,
		Type:      req.Type,
		Locale:    req.Locale,
		Category:  req.Category,
		Zodiac:    req.Zodiac,
		BirthYear: req.BirthYear,
	}

	err := h.recorder.Record(c.Request.Context(), in, c.ClientIP())
	switch {
	case err == nil:
		ok(c, http.StatusAccepted, InteractionResponse{Status: "accepted"})
	case errors.Is(err, services.ErrRateLimited):
		fail(c, http.StatusTooManyRequests, ErrCodeRateLimited, "boost cooldown active")
	case errors.Is(err, services.ErrEmptySlug),
		errors.Is(err, services.ErrInvalidType),
		errors.Is(err, services.ErrInvalidLocale):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	default:
		fail(c, http.StatusInternalServerError, ErrCodeRecordFailed, err.Error())
	}
}
