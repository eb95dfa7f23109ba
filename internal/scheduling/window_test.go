package scheduling

import (
	"testing"

	"clinic-scheduling-service/pkg/clock"
)

func TestNewWindowDetectsCrossover(t *testing.T) {
	cases := []struct {
		start, end string
		crosses    bool
	}{
		{"09:00", "17:00", false},
		{"00:00", "23:59", false},
		{"22:00", "06:00", true},
		{"23:00", "00:30", true},
		// Equal start and end is the wrapped form of a full-day shift.
		{"09:00", "09:00", true},
	}

	for _, tc := range cases {
		w := NewWindow(clock.MustParse(tc.start), clock.MustParse(tc.end))
		if w.CrossesMidnight() != tc.crosses {
			t.Errorf("NewWindow(%s, %s).CrossesMidnight() = %v, want %v", tc.start, tc.end, w.CrossesMidnight(), tc.crosses)
		}
	}
}

func TestSegmentsSameDay(t *testing.T) {
	w := NewWindow(clock.MustParse("08:00"), clock.MustParse("16:00"))
	segs := w.Segments()
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	if segs[0].Start.String() != "08:00" || segs[0].End.String() != "16:00" {
		t.Errorf("segment = %s-%s, want 08:00-16:00", segs[0].Start, segs[0].End)
	}
}

func TestSegmentsCrossesMidnight(t *testing.T) {
	w := NewWindow(clock.MustParse("22:00"), clock.MustParse("06:00"))
	segs := w.Segments()
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	if segs[0].Start.String() != "22:00" || segs[0].End.String() != "23:59" {
		t.Errorf("evening segment = %s-%s, want 22:00-23:59", segs[0].Start, segs[0].End)
	}
	if segs[1].Start.String() != "00:00" || segs[1].End.String() != "06:00" {
		t.Errorf("overnight segment = %s-%s, want 00:00-06:00", segs[1].Start, segs[1].End)
	}
}
