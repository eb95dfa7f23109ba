package usecase

import (
	"errors"
	"testing"
)

func TestNormalizeRuleTimes(t *testing.T) {
	cases := []struct {
		name      string
		start     string
		end       string
		tz        string
		wantStart string
		wantEnd   string
		wantErr   error
	}{
		{"already utc", "08:00", "16:00", "", "08:00", "16:00", nil},
		{"karachi converts", "09:00", "17:00", "Asia/Karachi", "04:00", "12:00", nil},
		{"istanbul converts", "09:00", "17:00", "Europe/Istanbul", "06:00", "14:00", nil},
		// A late local shift wraps past UTC midnight; the stored pair is
		// the valid crossover state.
		{"karachi night shift wraps", "22:00", "06:00", "Asia/Karachi", "", "", ErrInvalidTimeRange},
		{"karachi evening wraps", "20:00", "23:30", "Asia/Karachi", "15:00", "18:30", nil},
		{"auckland wraps to crossover", "09:00", "17:00", "Pacific/Auckland", "21:00", "05:00", nil},
		{"bad start", "8am", "16:00", "", "", "", ErrInvalidTimeFormat},
		{"bad end", "08:00", "26:00", "", "", "", ErrInvalidTimeFormat},
		{"equal pair", "08:00", "08:00", "", "", "", ErrInvalidTimeRange},
		{"inverted pair", "16:00", "08:00", "", "", "", ErrInvalidTimeRange},
		{"bad timezone", "08:00", "16:00", "Mars/Olympus", "", "", ErrInvalidTimezone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end, err := normalizeRuleTimes(tc.start, tc.end, tc.tz)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("error = %v, want %v", err, tc.wantErr)
			}
			if tc.wantErr != nil {
				return
			}
			if start != tc.wantStart || end != tc.wantEnd {
				t.Errorf("got %s-%s, want %s-%s", start, end, tc.wantStart, tc.wantEnd)
			}
		})
	}
}
