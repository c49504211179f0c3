package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-trending-backend/internal/domain"
	"github.com/tbourn/go-trending-backend/internal/period"
	"github.com/tbourn/go-trending-backend/internal/services"
)

func newTrendingRouter(ranks RankReader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(stubRecorder{}, ranks, stubSync{}, "s3cret")
	r := gin.New()
	r.GET("/trending", h.GetTrending)
	r.GET("/profiles/random", h.GetRandomProfile)
	return r
}

func TestGetTrending_OKWithSource(t *testing.T) {
	var gotLocale string
	var gotLimit int
	ranks := stubRanks{trending: func(_ context.Context, locale string, limit int) ([]services.TrendingEntry, period.Granularity, error) {
		gotLocale, gotLimit = locale, limit
		return []services.TrendingEntry{
			{Slug: "marie-curie", Name: "Marie Curie", Score: 42, Rank: 1},
		}, period.Monthly, nil
	}}
	r := newTrendingRouter(ranks)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/trending?locale=de&limit=5", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if gotLocale != "de" || gotLimit != 5 {
		t.Fatalf("locale/limit = %q/%d", gotLocale, gotLimit)
	}

	var resp TrendingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if resp.Source != "monthly" || resp.Locale != "de" || len(resp.Entries) != 1 {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.Entries[0].Slug != "marie-curie" || resp.Entries[0].Rank != 1 {
		t.Fatalf("entry = %+v", resp.Entries[0])
	}
}

func TestGetTrending_LimitClampAndEmptyList(t *testing.T) {
	var gotLimit int
	ranks := stubRanks{trending: func(_ context.Context, _ string, limit int) ([]services.TrendingEntry, period.Granularity, error) {
		gotLimit = limit
		return nil, period.AllTime, nil
	}}
	r := newTrendingRouter(ranks)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/trending?limit=500", nil)
	r.ServeHTTP(w, req)

	if gotLimit != 50 {
		t.Fatalf("limit = %d, want clamp to 50", gotLimit)
	}

	// nil from the service must serialize as [], not null.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("json: %v", err)
	}
	if string(raw["entries"]) != "[]" {
		t.Fatalf("entries = %s, want []", raw["entries"])
	}
}

func TestGetRandomProfile_NotFoundAndOK(t *testing.T) {
	// Default stub returns ErrProfileNotFound.
	r := newTrendingRouter(stubRanks{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profiles/random", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	r = newTrendingRouter(stubRanks{random: func(_ context.Context, locale string) (*domain.Profile, error) {
		return &domain.Profile{Slug: "marie-curie", Locale: locale, Name: "Marie Curie", Published: true}, nil
	}})
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/profiles/random?locale=fr", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var p domain.Profile
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("json: %v", err)
	}
	if p.Slug != "marie-curie" || p.Locale != "fr" {
		t.Fatalf("profile = %+v", p)
	}
}
