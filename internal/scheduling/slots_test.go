package scheduling

import (
	"testing"

	"clinic-scheduling-service/pkg/clock"
)

func seg(start, end string) Segment {
	return Segment{Start: clock.MustParse(start), End: clock.MustParse(end)}
}

func checkSlots(t *testing.T, slots []Slot, want [][2]string) {
	t.Helper()
	if len(slots) != len(want) {
		t.Fatalf("got %d slots, want %d", len(slots), len(want))
	}
	for i, w := range want {
		if slots[i].Start.String() != w[0] || slots[i].End.String() != w[1] {
			t.Errorf("slot %d = %s-%s, want %s-%s", i, slots[i].Start, slots[i].End, w[0], w[1])
		}
	}
}

func TestSegmentSlotsWithBreaks(t *testing.T) {
	// 08:00-16:00 at 20-minute slots with 10-minute breaks: starts every
	// 30 minutes, 16 slots, none extending past 16:00.
	slots := SegmentSlots(seg("08:00", "16:00"), 20, 10)

	if len(slots) != 16 {
		t.Fatalf("got %d slots, want 16", len(slots))
	}
	if slots[0].Start.String() != "08:00" || slots[0].End.String() != "08:20" {
		t.Errorf("first slot = %s-%s, want 08:00-08:20", slots[0].Start, slots[0].End)
	}
	if slots[1].Start.String() != "08:30" {
		t.Errorf("second slot starts %s, want 08:30", slots[1].Start)
	}
	last := slots[len(slots)-1]
	if last.Start.String() != "15:30" || last.End.String() != "15:50" {
		t.Errorf("last slot = %s-%s, want 15:30-15:50", last.Start, last.End)
	}
	for i, s := range slots {
		if s.End.Minutes() > 16*60 {
			t.Errorf("slot %d ends %s, past 16:00", i, s.End)
		}
	}
}

func TestSegmentSlotsExactFit(t *testing.T) {
	slots := SegmentSlots(seg("09:00", "11:00"), 30, 0)
	checkSlots(t, slots, [][2]string{
		{"09:00", "09:30"},
		{"09:30", "10:00"},
		{"10:00", "10:30"},
		{"10:30", "11:00"},
	})
}

func TestSegmentSlotsTruncatesFinalSlot(t *testing.T) {
	// The 45-minute step does not divide the 2-hour segment evenly; the
	// last slot is cut at the boundary instead of dropped.
	slots := SegmentSlots(seg("09:00", "11:00"), 45, 0)
	checkSlots(t, slots, [][2]string{
		{"09:00", "09:45"},
		{"09:45", "10:30"},
		{"10:30", "11:00"},
	})
}

func TestSegmentSlotsBreakOverrunsBoundary(t *testing.T) {
	// The break after the second slot pushes the cursor past the end;
	// nothing more is emitted.
	slots := SegmentSlots(seg("09:00", "10:10"), 30, 15)
	checkSlots(t, slots, [][2]string{
		{"09:00", "09:30"},
		{"09:45", "10:10"},
	})
}

func TestSegmentSlotsDegenerate(t *testing.T) {
	if got := SegmentSlots(seg("09:00", "09:00"), 30, 0); len(got) != 0 {
		t.Errorf("empty segment produced %d slots", len(got))
	}
	if got := SegmentSlots(seg("09:00", "10:00"), 0, 0); got != nil {
		t.Errorf("zero slot duration produced %d slots", len(got))
	}
}

func TestWindowSlotsCrossesMidnight(t *testing.T) {
	// The 22:00-06:00 shift expands as two passes on one schedule: the
	// evening run truncates at 23:59, the overnight run resumes at 00:00.
	w := NewWindow(clock.MustParse("22:00"), clock.MustParse("06:00"))
	slots := WindowSlots(w, 60, 0)

	checkSlots(t, slots, [][2]string{
		{"22:00", "23:00"},
		{"23:00", "23:59"},
		{"00:00", "01:00"},
		{"01:00", "02:00"},
		{"02:00", "03:00"},
		{"03:00", "04:00"},
		{"04:00", "05:00"},
		{"05:00", "06:00"},
	})
}

func TestWindowSlotsNoOverlap(t *testing.T) {
	w := NewWindow(clock.MustParse("08:00"), clock.MustParse("16:00"))
	slots := WindowSlots(w, 20, 10)

	for i := 1; i < len(slots); i++ {
		if slots[i].Start.Minutes() < slots[i-1].End.Minutes() {
			t.Errorf("slot %d starts %s before previous ends %s", i, slots[i].Start, slots[i-1].End)
		}
	}
	for i, s := range slots {
		if s.End.Minutes() <= s.Start.Minutes() {
			t.Errorf("slot %d is not forward: %s-%s", i, s.Start, s.End)
		}
	}
}
