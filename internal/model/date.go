package model

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-day format used for parsing and display.
const DateLayout = "2006-01-02"

// Day returns the given calendar day at 00:00 UTC.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Truncate drops the time-of-day component of t, keeping the UTC calendar day.
func Truncate(t time.Time) time.Time {
	u := t.UTC()
	return Day(u.Year(), u.Month(), u.Day())
}

// ParseDate parses a YYYY-MM-DD string into a UTC day.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return d, nil
}

// Days returns a duration of n calendar days. Past about 106,000 days the
// result overflows time.Duration; use ProjectBuilder.DurationDays for long spans.
func Days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}

// Weeks returns a duration of n weeks.
func Weeks(n int) time.Duration {
	return Days(7 * n)
}

// wholeDays converts d to a day count, truncating partial days toward zero.
func wholeDays(d time.Duration) int {
	return int(d / (24 * time.Hour))
}

// addDays moves a day by n calendar days.
func addDays(day time.Time, n int) time.Time {
	return Truncate(day).AddDate(0, 0, n)
}

// daysBetween returns the signed number of days from start to end.
func daysBetween(start, end time.Time) int {
	return int((end.Unix() - start.Unix()) / 86400)
}
