package clock

import (
	"testing"
	"time"
)

func TestParseDateRoundTrip(t *testing.T) {
	cases := []string{"2026-01-01", "2026-02-28", "2024-02-29", "2026-12-31"}
	for _, s := range cases {
		d, err := ParseDate(s)
		if err != nil {
			t.Fatalf("ParseDate(%q) error: %v", s, err)
		}
		if got := FormatDate(d); got != s {
			t.Errorf("FormatDate(ParseDate(%q)) = %q", s, got)
		}
		if d.Location() != time.UTC {
			t.Errorf("ParseDate(%q) location = %v, want UTC", s, d.Location())
		}
	}
}

func TestParseDateInvalid(t *testing.T) {
	cases := []string{"2026-13-01", "2026-02-30", "01-01-2026", "2026/01/01", "yesterday", ""}
	for _, s := range cases {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) succeeded, want error", s)
		}
	}
}

func TestAddDays(t *testing.T) {
	d, _ := ParseDate("2026-02-28")
	if got := FormatDate(AddDays(d, 1)); got != "2026-03-01" {
		t.Errorf("2026-02-28 + 1 day = %q, want 2026-03-01", got)
	}
	if got := FormatDate(AddDays(d, -28)); got != "2026-01-31" {
		t.Errorf("2026-02-28 - 28 days = %q, want 2026-01-31", got)
	}
}

func TestWeekday(t *testing.T) {
	// 2026-08-31 is a Monday.
	d, _ := ParseDate("2026-08-30")
	if got := Weekday(d); got != 0 {
		t.Errorf("Weekday(2026-08-30) = %d, want 0 (Sunday)", got)
	}
	d, _ = ParseDate("2026-08-31")
	if got := Weekday(d); got != 1 {
		t.Errorf("Weekday(2026-08-31) = %d, want 1 (Monday)", got)
	}
}

func TestIsPastDate(t *testing.T) {
	yesterday := FormatDate(AddDays(Today(), -1))
	tomorrow := FormatDate(AddDays(Today(), 1))

	if !IsPastDate(yesterday) {
		t.Errorf("IsPastDate(%q) = false, want true", yesterday)
	}
	if IsPastDate(FormatDate(Today())) {
		t.Error("IsPastDate(today) = true, want false")
	}
	if IsPastDate(tomorrow) {
		t.Errorf("IsPastDate(%q) = true, want false", tomorrow)
	}
	if IsPastDate("not-a-date") {
		t.Error("IsPastDate(malformed) = true, want false")
	}
}
