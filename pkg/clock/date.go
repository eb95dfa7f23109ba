package clock

import (
	"errors"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")

// ParseDate reads a YYYY-MM-DD string as a UTC-midnight instant.
// FormatDate(ParseDate(s)) == s for any well-formed s; there is no
// timezone drift because parsing never touches the local zone.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// FormatDate renders the UTC calendar date of t.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// DateOnly truncates t to UTC midnight.
func DateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays shifts t by n calendar days preserving the UTC wall clock.
func AddDays(t time.Time, n int) time.Time {
	return t.UTC().AddDate(0, 0, n)
}

// Weekday returns the UTC day of week as 0-6, 0 = Sunday.
func Weekday(t time.Time) int {
	return int(t.UTC().Weekday())
}

// Today returns the current UTC calendar date at midnight.
func Today() time.Time {
	return DateOnly(time.Now())
}

// IsPastDate reports whether the date string falls before today (UTC).
// Malformed input is not a past date; callers validate format separately.
func IsPastDate(s string) bool {
	d, err := ParseDate(s)
	if err != nil {
		return false
	}
	return d.Before(Today())
}
