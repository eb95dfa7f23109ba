package scheduling

import (
	"testing"

	"clinic-scheduling-service/pkg/clock"
)

func mondayRule() Rule {
	return Rule{
		WorkingHoursID: 7,
		Window:         NewWindow(clock.MustParse("09:00"), clock.MustParse("17:00")),
		SlotDuration:   30,
	}
}

func TestPlanRangeInclusive(t *testing.T) {
	// 2026-09-07 through 2026-09-21 holds three Mondays, both endpoints
	// included.
	start, _ := clock.ParseDate("2026-09-07")
	end, _ := clock.ParseDate("2026-09-21")

	plans := PlanRange(start, end, map[int]Rule{1: mondayRule()})

	if len(plans) != 3 {
		t.Fatalf("got %d plans, want 3", len(plans))
	}
	wantDates := []string{"2026-09-07", "2026-09-14", "2026-09-21"}
	for i, p := range plans {
		if got := clock.FormatDate(p.Date); got != wantDates[i] {
			t.Errorf("plan %d date = %s, want %s", i, got, wantDates[i])
		}
		if p.Rule.WorkingHoursID != 7 {
			t.Errorf("plan %d rule = %d, want 7", i, p.Rule.WorkingHoursID)
		}
	}
}

func TestPlanRangeSkipsOffDays(t *testing.T) {
	// A full week against a Monday-only rule plans exactly one day.
	start, _ := clock.ParseDate("2026-09-06")
	end, _ := clock.ParseDate("2026-09-12")

	plans := PlanRange(start, end, map[int]Rule{1: mondayRule()})

	if len(plans) != 1 {
		t.Fatalf("got %d plans, want 1", len(plans))
	}
	if got := clock.FormatDate(plans[0].Date); got != "2026-09-07" {
		t.Errorf("plan date = %s, want 2026-09-07", got)
	}
}

func TestPlanRangeNoRules(t *testing.T) {
	start, _ := clock.ParseDate("2026-09-06")
	end, _ := clock.ParseDate("2026-09-12")

	if plans := PlanRange(start, end, map[int]Rule{}); len(plans) != 0 {
		t.Errorf("got %d plans for empty rule set, want 0", len(plans))
	}
}

func TestPlanRangeSingleDay(t *testing.T) {
	day, _ := clock.ParseDate("2026-09-07")

	plans := PlanRange(day, day, map[int]Rule{1: mondayRule()})
	if len(plans) != 1 {
		t.Fatalf("got %d plans for single-day range, want 1", len(plans))
	}
}

func TestResultAddSkip(t *testing.T) {
	var r Result
	d, _ := clock.ParseDate("2026-09-07")

	r.AddSkip(d, SkipExisting, "")
	r.AddSkip(d, SkipBooked, "3 booked appointments")

	if len(r.Skips) != 2 {
		t.Fatalf("got %d skips, want 2", len(r.Skips))
	}
	if r.Skips[0].Reason != SkipExisting {
		t.Errorf("first skip reason = %s, want %s", r.Skips[0].Reason, SkipExisting)
	}
	if r.Skips[1].Detail != "3 booked appointments" {
		t.Errorf("second skip detail = %q", r.Skips[1].Detail)
	}
}
