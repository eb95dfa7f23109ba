package timezone

import "testing"

func TestLocalToUTC(t *testing.T) {
	cases := []struct {
		hhmm string
		tz   string
		want string
	}{
		// Karachi is UTC+5 year-round.
		{"09:00", "Asia/Karachi", "04:00"},
		{"17:00", "Asia/Karachi", "12:00"},
		// Istanbul is UTC+3 year-round.
		{"09:00", "Europe/Istanbul", "06:00"},
		// Crossing midnight backwards: 02:00 Karachi is 21:00 UTC the
		// previous day; only the wall clock is reported.
		{"02:00", "Asia/Karachi", "21:00"},
		// East of the date line, UTC+12.
		{"08:00", "Pacific/Auckland", "20:00"},
		// UTC in, UTC out.
		{"13:45", "UTC", "13:45"},
	}

	for _, tc := range cases {
		got, err := LocalToUTC(tc.hhmm, tc.tz)
		if err != nil {
			t.Errorf("LocalToUTC(%q, %q) error: %v", tc.hhmm, tc.tz, err)
			continue
		}
		if got != tc.want {
			t.Errorf("LocalToUTC(%q, %q) = %q, want %q", tc.hhmm, tc.tz, got, tc.want)
		}
	}
}

func TestUTCToLocalInverts(t *testing.T) {
	zones := []string{"Asia/Karachi", "Europe/Istanbul", "America/New_York", "Pacific/Auckland"}
	times := []string{"00:00", "04:30", "12:00", "23:59"}

	for _, tz := range zones {
		for _, hhmm := range times {
			utc, err := LocalToUTC(hhmm, tz)
			if err != nil {
				t.Fatalf("LocalToUTC(%q, %q) error: %v", hhmm, tz, err)
			}
			back, err := UTCToLocal(utc, tz)
			if err != nil {
				t.Fatalf("UTCToLocal(%q, %q) error: %v", utc, tz, err)
			}
			if back != hhmm {
				t.Errorf("round trip %q via %q: got %q", hhmm, tz, back)
			}
		}
	}
}

func TestConvertRejectsBadInput(t *testing.T) {
	if _, err := LocalToUTC("25:00", "Asia/Karachi"); err == nil {
		t.Error("expected error for malformed time")
	}
	if _, err := LocalToUTC("09:00", "Mars/Olympus"); err != ErrInvalidTimezone {
		t.Errorf("expected ErrInvalidTimezone, got %v", err)
	}
	if _, err := LocalToUTC("09:00", ""); err != ErrInvalidTimezone {
		t.Errorf("expected ErrInvalidTimezone for empty zone, got %v", err)
	}
}

func TestIsValid(t *testing.T) {
	cases := []struct {
		tz   string
		want bool
	}{
		{"Asia/Karachi", true},
		{"Europe/Istanbul", true},
		{"UTC", true},
		{"Mars/Olympus", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := IsValid(tc.tz); got != tc.want {
			t.Errorf("IsValid(%q) = %v, want %v", tc.tz, got, tc.want)
		}
	}
}
