package period

import (
	"testing"
	"time"
)

func TestDerive_KnownInstants(t *testing.T) {
	tests := []struct {
		name    string
		instant time.Time
		want    Keys
	}{
		{
			name:    "mid-year weekday",
			instant: time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
			want:    Keys{Daily: "2024-03-01", Weekly: "2024-W09", Monthly: "2024-03", Yearly: "2024"},
		},
		{
			name: "iso week-year crosses calendar boundary forward",
			// 2024-12-31 is a Tuesday inside ISO week 1 of 2025.
			instant: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			want:    Keys{Daily: "2024-12-31", Weekly: "2025-W01", Monthly: "2024-12", Yearly: "2025"},
		},
		{
			name: "january day attributed to previous iso year",
			// 2021-01-01 is a Friday inside ISO week 53 of 2020.
			instant: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
			want:    Keys{Daily: "2021-01-01", Weekly: "2020-W53", Monthly: "2021-01", Yearly: "2020"},
		},
		{
			name:    "non-utc zone normalized",
			instant: time.Date(2024, 3, 1, 23, 30, 0, 0, time.FixedZone("UTC+9", 9*3600)),
			want:    Keys{Daily: "2024-03-01", Weekly: "2024-W09", Monthly: "2024-03", Yearly: "2024"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Derive(tc.instant); got != tc.want {
				t.Fatalf("Derive(%v) = %+v, want %+v", tc.instant, got, tc.want)
			}
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	instants := []time.Time{
		time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 8, 0, 0, 0, time.UTC),
		time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 2, 29, 23, 59, 59, 0, time.UTC),
		time.Date(2026, 1, 4, 6, 0, 0, 0, time.UTC),
		time.Date(2015, 12, 28, 0, 0, 0, 0, time.UTC), // Monday of 2015-W53
	}
	for _, instant := range instants {
		for _, g := range All {
			bucket := Bucket(g, instant)
			back := Parse(g, bucket)
			if rederived := Bucket(g, back); rederived != bucket {
				t.Errorf("round trip %s %v: bucket %q re-derived as %q (via %v)",
					g, instant, bucket, rederived, back)
			}
		}
	}
}

func TestParse_AllTimeEpoch(t *testing.T) {
	got := Parse(AllTime, AllTimeBucket)
	if !got.Equal(time.Unix(0, 0)) {
		t.Fatalf("all_time representative instant = %v, want Unix epoch", got)
	}
}

func TestParse_MalformedFallsBackToNow(t *testing.T) {
	before := time.Now().UTC().Add(-time.Second)
	got := Parse(Weekly, "not-a-bucket")
	after := time.Now().UTC().Add(time.Second)
	if got.Before(before) || got.After(after) {
		t.Fatalf("malformed bucket should fall back to now, got %v", got)
	}
}

func TestGranularity_TTL(t *testing.T) {
	if ttl := Daily.TTL(); ttl != 7*24*time.Hour {
		t.Fatalf("daily TTL = %v", ttl)
	}
	if ttl := Weekly.TTL(); ttl != 30*24*time.Hour {
		t.Fatalf("weekly TTL = %v", ttl)
	}
	if Monthly.TTL() <= Weekly.TTL() || Yearly.TTL() != Monthly.TTL() {
		t.Fatalf("monthly/yearly TTL should share the long-term window")
	}
	if AllTime.TTL() != 0 {
		t.Fatalf("all_time must not expire")
	}
}

func TestGranularity_Period(t *testing.T) {
	want := map[Granularity]string{
		Daily: "DAILY", Weekly: "WEEKLY", Monthly: "MONTHLY",
		Yearly: "YEARLY", AllTime: "ALL_TIME",
	}
	for g, p := range want {
		if got := g.Period(); got != p {
			t.Errorf("%s.Period() = %q, want %q", g, got, p)
		}
	}
}
