package timeutil

import (
	"time"
)

// Kigali is the Rwanda timezone (CAT, UTC+2). Report day boundaries and
// bill timestamps are all computed in this zone.
var Kigali *time.Location

func init() {
	var err error
	Kigali, err = time.LoadLocation("Africa/Kigali")
	if err != nil {
		// Fallback: fixed zone if tzdata is unavailable
		Kigali = time.FixedZone("CAT", 2*60*60) // UTC+2
	}
}

// Now returns the current time in Kigali time
func Now() time.Time {
	return time.Now().In(Kigali)
}

// ToKigali converts any time to Kigali time
func ToKigali(t time.Time) time.Time {
	return t.In(Kigali)
}

// ParseDate parses a YYYY-MM-DD string as a Kigali-local date
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, Kigali)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// StartOfDay returns 00:00:00 Kigali time for the given time's day
func StartOfDay(t time.Time) time.Time {
	local := t.In(Kigali)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Kigali)
}

// EndOfDay returns the last instant of the given time's day in Kigali time
func EndOfDay(t time.Time) time.Time {
	local := t.In(Kigali)
	return time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, 999999999, Kigali)
}

// Common layouts
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
	DisplayLayout  = "02 Jan 2006, 03:04 PM"
)
