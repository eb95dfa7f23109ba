package usecase

import (
	"errors"
	"io"
	"testing"

	"clinic-scheduling-service/config"
	"clinic-scheduling-service/internal/domain/entity"
	"clinic-scheduling-service/pkg/clock"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testGenerator(maxRangeDays int) *scheduleGeneratorUsecase {
	return &scheduleGeneratorUsecase{
		log: testLogger(),
		cfg: config.ScheduleConfig{DefaultMaxAppointments: 1, MaxRangeDays: maxRangeDays},
	}
}

func TestValidateRange(t *testing.T) {
	today := clock.FormatDate(clock.Today())
	yesterday := clock.FormatDate(clock.AddDays(clock.Today(), -1))
	nextWeek := clock.FormatDate(clock.AddDays(clock.Today(), 7))
	farFuture := clock.FormatDate(clock.AddDays(clock.Today(), 120))

	cases := []struct {
		name    string
		start   string
		end     string
		wantErr error
	}{
		{"valid range", today, nextWeek, nil},
		{"malformed start", "2026/01/01", nextWeek, ErrInvalidDateFormat},
		{"malformed end", today, "soon", ErrInvalidDateFormat},
		{"start in past", yesterday, nextWeek, ErrStartDateInPast},
		{"end equals start", today, today, ErrInvalidDateRange},
		{"end before start", nextWeek, today, ErrInvalidDateRange},
		{"range too long", today, farFuture, ErrDateRangeTooLong},
	}

	u := testGenerator(90)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end, err := u.validateRange(tc.start, tc.end)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("validateRange(%q, %q) error = %v, want %v", tc.start, tc.end, err, tc.wantErr)
			}
			if tc.wantErr == nil && !start.Before(end) {
				t.Errorf("valid range returned start %v not before end %v", start, end)
			}
		})
	}
}

func TestValidateRangeUnlimitedWindow(t *testing.T) {
	today := clock.FormatDate(clock.Today())
	farFuture := clock.FormatDate(clock.AddDays(clock.Today(), 365))

	u := testGenerator(0)
	if _, _, err := u.validateRange(today, farFuture); err != nil {
		t.Errorf("validateRange with no window cap returned %v", err)
	}
}

func TestIsDoctorGenerable(t *testing.T) {
	boolPtr := func(b bool) *bool { return &b }

	cases := []struct {
		name      string
		active    *bool
		available *bool
		want      bool
	}{
		{"both unset", nil, nil, true},
		{"both true", boolPtr(true), boolPtr(true), true},
		{"inactive account", boolPtr(false), boolPtr(true), false},
		{"unavailable doctor", boolPtr(true), boolPtr(false), false},
		{"both off", boolPtr(false), boolPtr(false), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doctor := &entity.DoctorProfile{
				IsAvailable: tc.available,
				User:        entity.User{IsActive: tc.active},
			}
			if got := isDoctorGenerable(doctor); got != tc.want {
				t.Errorf("isDoctorGenerable = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseStoredTime(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"09:00", "09:00", true},
		{"09:00:00", "09:00", true},
		{"23:59:59", "23:59", true},
		{"junk", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, err := parseStoredTime(tc.input)
		if tc.ok != (err == nil) {
			t.Errorf("parseStoredTime(%q) error = %v, want ok=%v", tc.input, err, tc.ok)
			continue
		}
		if tc.ok && got.String() != tc.want {
			t.Errorf("parseStoredTime(%q) = %q, want %q", tc.input, got.String(), tc.want)
		}
	}
}

func TestRulesByWeekdaySkipsCorruptRules(t *testing.T) {
	u := testGenerator(90)

	rules := []entity.WorkingHours{
		{ID: 1, DayOfWeek: 1, StartTime: "09:00:00", EndTime: "17:00:00", SlotDuration: 30},
		{ID: 2, DayOfWeek: 2, StartTime: "garbage", EndTime: "17:00", SlotDuration: 30},
		{ID: 3, DayOfWeek: 3, StartTime: "22:00", EndTime: "06:00", SlotDuration: 60},
	}

	indexed := u.rulesByWeekday(rules)

	if len(indexed) != 2 {
		t.Fatalf("got %d indexed rules, want 2", len(indexed))
	}
	if _, ok := indexed[2]; ok {
		t.Error("corrupt rule was indexed")
	}
	monday := indexed[1]
	if monday.Window.Start().String() != "09:00" || monday.Window.End().String() != "17:00" {
		t.Errorf("monday window = %s-%s", monday.Window.Start(), monday.Window.End())
	}
	if monday.Window.CrossesMidnight() {
		t.Error("same-day rule marked as crossing midnight")
	}
	if !indexed[3].Window.CrossesMidnight() {
		t.Error("overnight rule not marked as crossing midnight")
	}
}
