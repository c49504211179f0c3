// Package domain defines the persistence models for ranked profiles, durable
// rank snapshots, and runtime settings. These types are mapped with GORM and
// form the durable data layer of the trending backend; all live counters are
// held in Redis and never modeled here.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// Profile represents a ranked content entity in one locale. Profiles are the
// targets of view/boost interactions; the ranking subsystem never creates or
// mutates them, it only reads them for enrichment and for rebuilding the
// per-locale slug index.
//
// Fields:
//   - Slug: stable URL identifier, unique per locale.
//   - Locale: lowercase two-letter locale code; indexed together with Slug.
//   - Name: display name shown in trending lists.
//   - Category: optional editorial category tag (e.g. "actor", "musician").
//   - Zodiac: optional zodiac sign tag used by the attribute dimension.
//   - BirthYear: optional birth year used by the year-attribute dimension.
//   - Published: only published profiles appear in trending results and the
//     slug index.
type Profile struct {
	ID        string         `json:"id"         gorm:"type:char(36);primaryKey"`
	Slug      string         `json:"slug"       gorm:"type:varchar(128);not null;uniqueIndex:ux_profile_slug_locale,priority:1"`
	Locale    string         `json:"locale"     gorm:"type:varchar(2);not null;uniqueIndex:ux_profile_slug_locale,priority:2;index:idx_profile_locale"`
	Name      string         `json:"name"       gorm:"type:varchar(255);not null"`
	Category  string         `json:"category,omitempty"   gorm:"type:varchar(64)"`
	Zodiac    string         `json:"zodiac,omitempty"     gorm:"type:varchar(32)"`
	BirthYear int            `json:"birth_year,omitempty" gorm:"default:0"`
	Published bool           `json:"published"  gorm:"not null;default:false;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"          gorm:"index"`
}

// TableName returns the database table name for Profile.
func (Profile) TableName() string { return "profiles" }

// RankSnapshot is the durable record of a profile's standing in one period
// bucket, written exclusively by the reconciliation job via upsert. Rows are
// unique per (slug, period, date) and are never deleted by this subsystem,
// which makes them usable for historical time-series queries independent of
// live leaderboard retention.
//
// Date is the representative instant of the bucket (see period.Parse), not
// the time the row was written; UpdatedAt carries the latter.
type RankSnapshot struct {
	ID         string    `json:"id"          gorm:"type:char(36);primaryKey"`
	Slug       string    `json:"slug"        gorm:"type:varchar(128);not null;uniqueIndex:ux_snapshot_slug_period_date,priority:1"`
	Period     string    `json:"period"      gorm:"type:varchar(16);not null;uniqueIndex:ux_snapshot_slug_period_date,priority:2;check:period IN ('DAILY','WEEKLY','MONTHLY','YEARLY','ALL_TIME')"`
	Date       time.Time `json:"date"        gorm:"not null;uniqueIndex:ux_snapshot_slug_period_date,priority:3;index:idx_snapshot_date"`
	Score      int64     `json:"score"       gorm:"not null;default:0"`
	RankGlobal int       `json:"rank_global" gorm:"not null;default:0"`
	RankLocal  int       `json:"rank_local"  gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName returns the database table name for RankSnapshot.
func (RankSnapshot) TableName() string { return "rank_snapshots" }

// Setting is a runtime-tunable key/value pair (e.g. BOOST_COOLDOWN,
// BOOST_WEIGHT). Settings are read per-operation through a caching provider
// with hardcoded fallbacks, so a missing or unreadable row never blocks the
// interaction path.
type Setting struct {
	Key       string    `json:"key"   gorm:"type:varchar(64);primaryKey"`
	Value     string    `json:"value" gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for Setting.
func (Setting) TableName() string { return "settings" }

// Interaction types accepted by the recorder.
const (
	InteractionView  = "view"
	InteractionBoost = "boost"
)

// Interaction is the transient payload of a single recorded user action. It
// is created per request, consumed once by the leaderboard fan-out writer,
// and never persisted verbatim.
type Interaction struct {
	Slug      string `json:"slug"`
	Type      string `json:"type"`   // view | boost
	Locale    string `json:"locale"` // lowercase two-letter code
	Category  string `json:"category,omitempty"`
	Zodiac    string `json:"zodiac,omitempty"`
	BirthYear int    `json:"birth_year,omitempty"`
}
