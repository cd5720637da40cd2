// Package biztime holds the business timezone used for day bucketing in
// reports. Storage and transport stay in UTC.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTimezone is the timezone the stores operate in.
const DefaultTimezone = "Europe/Istanbul"

var (
	mu          sync.RWMutex
	bizLocation *time.Location
)

// Init sets the business timezone. An empty tz selects DefaultTimezone.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", tz, err)
	}
	mu.Lock()
	bizLocation = loc
	mu.Unlock()
	return nil
}

// Location returns the business timezone, initializing the default on first use.
func Location() *time.Location {
	mu.RLock()
	loc := bizLocation
	mu.RUnlock()
	if loc != nil {
		return loc
	}
	if err := Init(""); err != nil {
		// tzdata missing: fall back to a fixed UTC+3 zone.
		mu.Lock()
		bizLocation = time.FixedZone("TRT", 3*60*60)
		mu.Unlock()
	}
	return Location()
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfDayUTC returns the start of t's business day, in UTC.
func StartOfDayUTC(t time.Time) time.Time {
	b := t.In(Location())
	return time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, Location()).UTC()
}

// DayKey formats t as the YYYY-MM-DD of its business day.
func DayKey(t time.Time) string {
	return t.In(Location()).Format(time.DateOnly)
}
