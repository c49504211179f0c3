// Package services – InteractionService
//
// This file implements the interaction recorder: it validates an incoming
// view or boost, applies the boost cooldown gate synchronously, and hands
// the leaderboard fan-out to a deferred task that runs after the response.
//
// Write contract (deliberate): at-most-once, best-effort. The fan-out is
// fire-and-forget: the caller-visible success never waits for leaderboard
// updates, fan-out failures are logged and swallowed, nothing is retried,
// and a re-delivered interaction double-counts. Interactions are telemetry,
// not transactional events.
//
// Observability: Record is OpenTelemetry-instrumented; the deferred fan-out
// runs outside the request span on purpose.
package services

import (
	"context"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-trending-backend/internal/domain"
	"github.com/tbourn/go-trending-backend/internal/leaderboard"
)

// localeRE matches the only locale shape the recorder accepts.
var localeRE = regexp.MustCompile(`^[a-z]{2}$`)

// InteractionService validates and records user interactions against the
// live leaderboards.
type InteractionService struct {
	Store    LiveStore
	Settings *SettingsProvider

	// Dispatch schedules the deferred fan-out task. When nil, tasks run on
	// their own goroutine. Tests inject a synchronous dispatcher.
	Dispatch func(task func())
}

// Record validates the interaction and, for boosts, consumes the cooldown
// token for (sourceIP, slug). On success the leaderboard fan-out is
// scheduled to run after this call returns; its outcome is never surfaced.
//
// Returned errors are limited to validation failures and ErrRateLimited;
// both are synchronous, side-effect-free (beyond the cooldown token), and
// safe to show to an end user.
func (s *InteractionService) Record(ctx context.Context, in domain.Interaction, sourceIP string) error {
	tr := otel.Tracer("services/InteractionService")
	ctx, span := tr.Start(ctx, "Record",
		trace.WithAttributes(
			attribute.String("profile.slug", in.Slug),
			attribute.String("interaction.type", in.Type),
			attribute.String("locale", in.Locale),
		),
	)
	defer span.End()

	in.Slug = strings.TrimSpace(in.Slug)
	in.Locale = strings.ToLower(strings.TrimSpace(in.Locale))
	if err := validate(in); err != nil {
		return err
	}

	if in.Type == domain.InteractionBoost {
		cooldown := s.Settings.BoostCooldown(ctx)
		key := leaderboard.CooldownKey(sourceIP, in.Slug)
		allowed, err := s.Store.AcquireCooldown(ctx, key, cooldown)
		if err != nil {
			// Store outage: the gate fails open. The fan-out below will hit
			// the same outage and be dropped, so no double-count window opens.
			log.Warn().Err(err).Str("slug", in.Slug).Msg("cooldown check failed, allowing boost")
		} else if !allowed {
			return ErrRateLimited
		}
	}

	task := func() { s.fanOut(in) }
	if s.Dispatch != nil {
		s.Dispatch(task)
	} else {
		go task()
	}
	return nil
}

// validate checks the interaction shape. No side effects.
func validate(in domain.Interaction) error {
	if in.Slug == "" {
		return ErrEmptySlug
	}
	if in.Type != domain.InteractionView && in.Type != domain.InteractionBoost {
		return ErrInvalidType
	}
	if !localeRE.MatchString(in.Locale) {
		return ErrInvalidLocale
	}
	return nil
}
