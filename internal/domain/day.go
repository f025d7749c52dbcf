package domain

import "time"

// DayLayout is the wire format of calendar days.
const DayLayout = "2006-01-02"

// CivilDay truncates t to its calendar date in t's own location and
// returns that date at midnight UTC, so days compare with Equal.
func CivilDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar day in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	return CivilDay(now.In(loc))
}

// DayString formats t's calendar date as yyyy-MM-dd.
func DayString(t time.Time) string {
	return t.Format(DayLayout)
}

// ParseDay parses a yyyy-MM-dd string into a civil day.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayLayout, s)
}

// ParseTimezone parses a timezone name, returning UTC as fallback.
func ParseTimezone(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DayBounds returns the instants the current day in loc starts and ends,
// in UTC. AddDate keeps DST transitions correct where Add(24h) would not.
func DayBounds(now time.Time, loc *time.Location) (start, end time.Time) {
	local := now.In(loc)
	s := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	e := s.AddDate(0, 0, 1)
	return s.UTC(), e.UTC()
}
