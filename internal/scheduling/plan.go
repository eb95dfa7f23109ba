package scheduling

import (
	"time"

	"clinic-scheduling-service/pkg/clock"
)

// Rule is the generation view of one active working-hours record: the UTC
// window plus the slot parameters. WorkingHoursID ties generated schedules
// back to the record they were expanded from.
type Rule struct {
	WorkingHoursID int
	Window         Window
	SlotDuration   int
	BreakDuration  int
}

// DayPlan pairs a concrete UTC date with the rule that covers its weekday.
type DayPlan struct {
	Date time.Time
	Rule Rule
}

// PlanRange expands an inclusive UTC date range against the doctor's rules,
// keyed by weekday (0 = Sunday). Dates without a rule are off days and
// produce no plan. The fold is pure; persistence and existing-schedule
// checks happen at the usecase layer, one transaction per plan entry.
func PlanRange(start, end time.Time, rulesByWeekday map[int]Rule) []DayPlan {
	var plans []DayPlan
	for d := clock.DateOnly(start); !d.After(clock.DateOnly(end)); d = clock.AddDays(d, 1) {
		rule, ok := rulesByWeekday[clock.Weekday(d)]
		if !ok {
			continue
		}
		plans = append(plans, DayPlan{Date: d, Rule: rule})
	}
	return plans
}

// SkipReason classifies why a date in the range produced no schedule.
type SkipReason string

const (
	SkipExisting SkipReason = "schedule_exists"
	SkipBooked   SkipReason = "has_booked_appointments"
	SkipConflict SkipReason = "insert_conflict"
	SkipError    SkipReason = "error"
)

// Skip records one non-fatal per-date failure during batch generation.
type Skip struct {
	Date   time.Time  `json:"-"`
	Reason SkipReason `json:"reason"`
	Detail string     `json:"detail,omitempty"`
}

// Result accumulates the outcome of a generation run. Per-date failures
// are collected here instead of aborting the range.
type Result struct {
	Created int
	Skips   []Skip
}

func (r *Result) AddSkip(date time.Time, reason SkipReason, detail string) {
	r.Skips = append(r.Skips, Skip{Date: date, Reason: reason, Detail: detail})
}
