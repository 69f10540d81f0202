package domain

import "time"

// ParseTimezone parses an IANA timezone name, returning UTC as fallback.
func ParseTimezone(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil || loc.String() != tz {
		return time.UTC
	}
	return loc
}

// IsValidTimezone reports whether tz names a location known to the tz database.
// "Local" is rejected: it follows the server host and the database cannot
// resolve it.
func IsValidTimezone(tz string) bool {
	if tz == "" {
		return false
	}
	loc, err := time.LoadLocation(tz)
	return err == nil && loc.String() == tz
}

// LocalDate returns the calendar date of now in tz, as midnight UTC.
// Prompt active dates use the same representation.
func LocalDate(now time.Time, tz *time.Location) time.Time {
	local := now.In(tz)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether a and b fall on the same calendar date, ignoring location.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween returns the number of whole calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

// YearRange returns the [start, end) instants of a calendar year in tz, in UTC.
func YearRange(year int, tz *time.Location) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, tz)
	// AddDate handles DST correctly, Add(365*24h) does not
	end := start.AddDate(1, 0, 0)
	return start.UTC(), end.UTC()
}
