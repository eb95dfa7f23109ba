// Package timezone converts recurring weekly wall-clock times between a
// named IANA zone and UTC. Conversions are anchored on a fixed reference
// date, so the zone offset in effect on that date is applied to every
// weekday of the rule. Daylight-saving transitions between the reference
// date and the date a rule is actually expanded on are deliberately not
// tracked: a recurring rule has no single calendar date to resolve DST
// against, and a mid-year anchor keeps the common zones on a stable offset.
package timezone

import (
	"errors"
	"time"

	"clinic-scheduling-service/pkg/clock"
)

// Offsets are computed as of this date. Mid-year avoids sitting on top of
// a DST transition in either hemisphere's spring/fall window.
var referenceDate = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

var ErrInvalidTimezone = errors.New("invalid timezone identifier")

// IsValid reports whether tz resolves as an IANA zone name.
// The empty string is not a valid zone; callers treat it as "already UTC".
func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// LocalToUTC converts a wall-clock HH:MM understood in tz to the
// equivalent UTC wall clock. Only the time of day is returned; the
// conversion wraps across the day boundary when the offset pushes the
// clock past midnight.
func LocalToUTC(hhmm, tz string) (string, error) {
	return convert(hhmm, tz, true)
}

// UTCToLocal is the inverse of LocalToUTC under the same reference date.
func UTCToLocal(hhmm, tz string) (string, error) {
	return convert(hhmm, tz, false)
}

func convert(hhmm, tz string, toUTC bool) (string, error) {
	t, err := clock.Parse(hhmm)
	if err != nil {
		return "", err
	}

	// LoadLocation maps "" to UTC; an empty zone never reaches here.
	if tz == "" {
		return "", ErrInvalidTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return "", ErrInvalidTimezone
	}

	// Anchor the wall clock on the reference date inside the source zone,
	// then read the same instant through the target zone. The date part of
	// the result is discarded: this converts a recurring rule, not an instant.
	var converted time.Time
	if toUTC {
		local := time.Date(
			referenceDate.Year(), referenceDate.Month(), referenceDate.Day(),
			t.Hour(), t.Minute(), 0, 0, loc,
		)
		converted = local.UTC()
	} else {
		utc := time.Date(
			referenceDate.Year(), referenceDate.Month(), referenceDate.Day(),
			t.Hour(), t.Minute(), 0, 0, time.UTC,
		)
		converted = utc.In(loc)
	}

	return clock.FromMinutes(converted.Hour()*60 + converted.Minute()).String(), nil
}
