package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

var ErrInvalidFormat = errors.New("invalid time format, use HH:MM")

// Time is a wall-clock time of day with minute precision.
// The zero value is midnight (00:00).
type Time struct {
	hour   int
	minute int
}

// Parse accepts "H:MM" or "HH:MM" with hours 0-23 and minutes 0-59.
func Parse(s string) (Time, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return Time{}, ErrInvalidFormat
	}
	if len(parts[0]) < 1 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return Time{}, ErrInvalidFormat
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return Time{}, ErrInvalidFormat
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return Time{}, ErrInvalidFormat
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Time{}, ErrInvalidFormat
	}

	return Time{hour: hour, minute: minute}, nil
}

// MustParse is for constants in tests and wiring; panics on bad input.
func MustParse(s string) Time {
	t, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("clock: %q: %v", s, err))
	}
	return t
}

// FromMinutes builds a Time from minutes since midnight, wrapping past 24h.
func FromMinutes(m int) Time {
	m %= minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return Time{hour: m / 60, minute: m % 60}
}

// IsValid reports whether s parses as a well-formed HH:MM time.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// IsValidRange reports whether start/end form a usable working period.
// Without midnight crossover the range must be strictly chronological.
// With crossover any two well-formed times are accepted: end <= start is
// read as wrapping past midnight into the next day.
func IsValidRange(start, end string, allowMidnightCrossover bool) bool {
	s, err := Parse(start)
	if err != nil {
		return false
	}
	e, err := Parse(end)
	if err != nil {
		return false
	}
	if allowMidnightCrossover {
		return true
	}
	return s.Before(e)
}

func (t Time) Hour() int   { return t.hour }
func (t Time) Minute() int { return t.minute }

// Minutes returns minutes since midnight.
func (t Time) Minutes() int {
	return t.hour*60 + t.minute
}

// Add returns the time m minutes later, wrapping across midnight.
func (t Time) Add(m int) Time {
	return FromMinutes(t.Minutes() + m)
}

func (t Time) Before(o Time) bool {
	return t.Minutes() < o.Minutes()
}

func (t Time) After(o Time) bool {
	return t.Minutes() > o.Minutes()
}

func (t Time) Equal(o Time) bool {
	return t == o
}

// String renders zero-padded "HH:MM".
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}
