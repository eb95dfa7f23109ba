package clock

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		input  string
		hour   int
		minute int
		ok     bool
	}{
		{"09:00", 9, 0, true},
		{"9:00", 9, 0, true},
		{"00:00", 0, 0, true},
		{"23:59", 23, 59, true},
		{"24:00", 0, 0, false},
		{"12:60", 0, 0, false},
		{"-1:30", 0, 0, false},
		{"12:5", 0, 0, false},
		{"1200", 0, 0, false},
		{"12:00:00", 0, 0, false},
		{"", 0, 0, false},
		{"ab:cd", 0, 0, false},
	}

	for _, tc := range cases {
		got, err := Parse(tc.input)
		if tc.ok != (err == nil) {
			t.Errorf("Parse(%q) error = %v, want ok=%v", tc.input, err, tc.ok)
			continue
		}
		if !tc.ok {
			continue
		}
		if got.Hour() != tc.hour || got.Minute() != tc.minute {
			t.Errorf("Parse(%q) = %02d:%02d, want %02d:%02d", tc.input, got.Hour(), got.Minute(), tc.hour, tc.minute)
		}
	}
}

func TestFromMinutesWraps(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{90, "01:30"},
		{1439, "23:59"},
		{1440, "00:00"},
		{1500, "01:00"},
		{-60, "23:00"},
	}

	for _, tc := range cases {
		if got := FromMinutes(tc.minutes).String(); got != tc.want {
			t.Errorf("FromMinutes(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}

func TestAddWrapsAcrossMidnight(t *testing.T) {
	got := MustParse("23:30").Add(45)
	if got.String() != "00:15" {
		t.Errorf("23:30 + 45m = %q, want 00:15", got.String())
	}
}

func TestIsValidRange(t *testing.T) {
	cases := []struct {
		start, end string
		crossover  bool
		want       bool
	}{
		{"09:00", "17:00", false, true},
		{"17:00", "09:00", false, false},
		{"09:00", "09:00", false, false},
		{"22:00", "06:00", true, true},
		{"09:00", "17:00", true, true},
		{"09:00", "09:00", true, true},
		{"25:00", "17:00", false, false},
		{"09:00", "17:61", true, false},
	}

	for _, tc := range cases {
		got := IsValidRange(tc.start, tc.end, tc.crossover)
		if got != tc.want {
			t.Errorf("IsValidRange(%q, %q, %v) = %v, want %v", tc.start, tc.end, tc.crossover, got, tc.want)
		}
	}
}

func TestComparisons(t *testing.T) {
	a := MustParse("08:30")
	b := MustParse("08:31")

	if !a.Before(b) || b.Before(a) {
		t.Error("expected 08:30 before 08:31")
	}
	if !b.After(a) || a.After(b) {
		t.Error("expected 08:31 after 08:30")
	}
	if !a.Equal(MustParse("08:30")) {
		t.Error("expected 08:30 equal to itself")
	}
}

func TestStringZeroPads(t *testing.T) {
	if got := MustParse("7:05").String(); got != "07:05" {
		t.Errorf("String = %q, want 07:05", got)
	}
	var zero Time
	if zero.String() != "00:00" {
		t.Errorf("zero value String = %q, want 00:00", zero.String())
	}
}
