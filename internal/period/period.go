// Package period derives canonical time-bucket identifiers for the five
// ranking granularities (daily, weekly, monthly, yearly, all-time) and maps
// them back to representative instants.
//
// Weekly and yearly buckets follow ISO-8601 week numbering: weeks run
// Monday–Sunday and the year component is the ISO week-year, which may differ
// from the calendar year around the new-year boundary (e.g. 2024-12-31 falls
// in bucket "2025-W01"). Keeping yearly buckets on the week-year makes the
// weekly and yearly dimensions agree on which year a boundary week belongs to.
//
// Bucket IDs are stable and lexicographically sortable within a granularity:
//
//	daily   → "2024-03-01"
//	weekly  → "2024-W09"
//	monthly → "2024-03"
//	yearly  → "2024"
//	allTime → "all_time"
package period

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Granularity identifies one of the five rolling bucket granularities.
type Granularity string

// Supported granularities, ordered from finest to coarsest.
const (
	Daily   Granularity = "daily"
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
	Yearly  Granularity = "yearly"
	AllTime Granularity = "all_time"
)

// AllTimeBucket is the single bucket ID of the all-time granularity.
const AllTimeBucket = "all_time"

// All lists every granularity, finest first. The order is relied upon by the
// fan-out writer and the reconciliation job for deterministic iteration.
var All = []Granularity{Daily, Weekly, Monthly, Yearly, AllTime}

// Retention windows per granularity. Active buckets have their TTL refreshed
// on every write, so these only retire buckets that stopped receiving
// traffic. Monthly and yearly buckets are effectively permanent but still
// carry a TTL so abandoned keys eventually self-clean.
const (
	dailyTTL    = 7 * 24 * time.Hour
	weeklyTTL   = 30 * 24 * time.Hour
	longTermTTL = 10 * 365 * 24 * time.Hour
)

// Valid reports whether g is one of the five supported granularities.
func (g Granularity) Valid() bool {
	switch g {
	case Daily, Weekly, Monthly, Yearly, AllTime:
		return true
	}
	return false
}

// TTL returns the retention window applied to a live bucket of this
// granularity after each write. All-time buckets never expire (zero TTL).
func (g Granularity) TTL() time.Duration {
	switch g {
	case Daily:
		return dailyTTL
	case Weekly:
		return weeklyTTL
	case Monthly, Yearly:
		return longTermTTL
	default:
		return 0
	}
}

// Period returns the durable-snapshot period tag for g (e.g. "WEEKLY").
func (g Granularity) Period() string {
	switch g {
	case Daily:
		return "DAILY"
	case Weekly:
		return "WEEKLY"
	case Monthly:
		return "MONTHLY"
	case Yearly:
		return "YEARLY"
	default:
		return "ALL_TIME"
	}
}

// Keys holds the bucket IDs a single instant maps to, one per rolling
// granularity. The all-time bucket is constant and therefore omitted.
type Keys struct {
	Daily   string
	Weekly  string
	Monthly string
	Yearly  string
}

// Derive maps an instant to its bucket IDs across the rolling granularities.
// The instant is evaluated in UTC so bucket boundaries do not depend on the
// server's local zone.
func Derive(t time.Time) Keys {
	t = t.UTC()
	isoYear, isoWeek := t.ISOWeek()
	return Keys{
		Daily:   t.Format("2006-01-02"),
		Weekly:  fmt.Sprintf("%04d-W%02d", isoYear, isoWeek),
		Monthly: t.Format("2006-01"),
		Yearly:  fmt.Sprintf("%04d", isoYear),
	}
}

// Bucket returns the bucket ID for a single granularity at instant t.
func Bucket(g Granularity, t time.Time) string {
	k := Derive(t)
	switch g {
	case Daily:
		return k.Daily
	case Weekly:
		return k.Weekly
	case Monthly:
		return k.Monthly
	case Yearly:
		return k.Yearly
	default:
		return AllTimeBucket
	}
}

// Parse maps a bucket ID back to a representative instant inside that
// bucket: re-deriving the same granularity from the returned instant yields
// the original bucket ID. For all-time it returns the Unix epoch.
//
// Malformed bucket IDs fail closed: Parse logs a warning and returns the
// current time, favoring availability over strictness in the
// reconciliation path.
func Parse(g Granularity, bucketID string) time.Time {
	switch g {
	case Daily:
		if t, err := time.Parse("2006-01-02", bucketID); err == nil {
			return t
		}
	case Weekly:
		var year, week int
		if _, err := fmt.Sscanf(bucketID, "%4d-W%2d", &year, &week); err == nil && week >= 1 && week <= 53 {
			return isoWeekStart(year, week)
		}
	case Monthly:
		if t, err := time.Parse("2006-01", bucketID); err == nil {
			return t
		}
	case Yearly:
		var year int
		if _, err := fmt.Sscanf(bucketID, "%4d", &year); err == nil && len(bucketID) == 4 {
			// January 4 is always inside ISO week 1 of its week-year.
			return time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
		}
	case AllTime:
		return time.Unix(0, 0).UTC()
	}
	log.Warn().
		Str("granularity", string(g)).
		Str("bucket", bucketID).
		Msg("unparseable period bucket, falling back to now")
	return time.Now().UTC()
}

// isoWeekStart returns the Monday starting ISO week `week` of ISO week-year
// `year`. January 4 is always in week 1, so the Monday of its week anchors
// the whole year.
func isoWeekStart(year, week int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	wd := int(jan4.Weekday())
	if wd == 0 { // Sunday
		wd = 7
	}
	monday := jan4.AddDate(0, 0, 1-wd)
	return monday.AddDate(0, 0, (week-1)*7)
}
