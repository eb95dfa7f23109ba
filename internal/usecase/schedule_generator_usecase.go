package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"clinic-scheduling-service/config"
	"clinic-scheduling-service/internal/converter"
	"clinic-scheduling-service/internal/delivery/dto"
	"clinic-scheduling-service/internal/domain/entity"
	"clinic-scheduling-service/internal/domain/repository"
	"clinic-scheduling-service/internal/scheduling"
	"clinic-scheduling-service/internal/service"
	"clinic-scheduling-service/pkg/clock"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidDateFormat    = errors.New("invalid date format, use YYYY-MM-DD")
	ErrStartDateInPast      = errors.New("start date must not be in the past")
	ErrInvalidDateRange     = errors.New("end date must be after start date")
	ErrDateRangeTooLong     = errors.New("date range exceeds the maximum generation window")
	ErrDoctorUnavailable    = errors.New("doctor is not active or not available")
	ErrNoActiveWorkingHours = errors.New("doctor has no active working hours")
)

type ScheduleGeneratorUsecase interface {
	Generate(ctx context.Context, req *dto.GenerateSchedulesRequest) (*dto.GenerateSchedulesResponse, error)
}

type scheduleGeneratorUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	cfg              config.ScheduleConfig
	doctorRepo       repository.DoctorProfileRepository
	workingHoursRepo repository.WorkingHoursRepository
	scheduleRepo     repository.ScheduleRepository
	appointmentRepo  repository.AppointmentRepository
	slotCache        *service.SlotCacheService
	auditService     service.AuditService
}

func NewScheduleGeneratorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cfg config.ScheduleConfig,
	doctorRepo repository.DoctorProfileRepository,
	workingHoursRepo repository.WorkingHoursRepository,
	scheduleRepo repository.ScheduleRepository,
	appointmentRepo repository.AppointmentRepository,
	slotCache *service.SlotCacheService,
	auditService service.AuditService,
) ScheduleGeneratorUsecase {
	return &scheduleGeneratorUsecase{
		db:               db,
		log:              log,
		cfg:              cfg,
		doctorRepo:       doctorRepo,
		workingHoursRepo: workingHoursRepo,
		scheduleRepo:     scheduleRepo,
		appointmentRepo:  appointmentRepo,
		slotCache:        slotCache,
		auditService:     auditService,
	}
}

// Generate expands a doctor's active weekly rules over an inclusive date
// range. Date validation happens before any database access. Each date is
// its own transaction: the schedule and its slots commit together or not
// at all, and a failed date is recorded as a skip instead of aborting the
// remaining range.
func (u *scheduleGeneratorUsecase) Generate(ctx context.Context, req *dto.GenerateSchedulesRequest) (*dto.GenerateSchedulesResponse, error) {
	startDate, endDate, err := u.validateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if !isDoctorGenerable(doctor) {
		return nil, ErrDoctorUnavailable
	}

	rules, err := u.workingHoursRepo.FindActiveByDoctorID(u.db.WithContext(ctx), req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to load working hours: %+v", err)
		return nil, err
	}
	if len(rules) == 0 {
		return nil, ErrNoActiveWorkingHours
	}

	plans := scheduling.PlanRange(startDate, endDate, u.rulesByWeekday(rules))

	var result scheduling.Result
	var created []entity.Schedule
	for _, plan := range plans {
		schedule, skip := u.generateForDate(ctx, req.DoctorID, plan, req.RegenerateExisting)
		if skip != nil {
			result.Skips = append(result.Skips, *skip)
			continue
		}
		result.Created++
		created = append(created, *schedule)
	}

	if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), nil, entity.AuditActionScheduleGenerate, "schedule", req.DoctorID.String(), entity.JSON{
		"start_date":      req.StartDate,
		"end_date":        req.EndDate,
		"regenerate":      req.RegenerateExisting,
		"total_generated": result.Created,
		"total_skipped":   len(result.Skips),
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Schedule generation for doctor %s: %d created, %d skipped", req.DoctorID, result.Created, len(result.Skips))

	return &dto.GenerateSchedulesResponse{
		TotalGenerated:     result.Created,
		GeneratedSchedules: converter.SchedulesToResponses(created),
		Skipped:            converter.SkipsToResponses(result.Skips),
	}, nil
}

func (u *scheduleGeneratorUsecase) validateRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := clock.ParseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateFormat
	}
	endDate, err := clock.ParseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateFormat
	}
	if clock.IsPastDate(start) {
		return time.Time{}, time.Time{}, ErrStartDateInPast
	}
	if !startDate.Before(endDate) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	if u.cfg.MaxRangeDays > 0 && endDate.Sub(startDate) > time.Duration(u.cfg.MaxRangeDays)*24*time.Hour {
		return time.Time{}, time.Time{}, ErrDateRangeTooLong
	}
	return startDate, endDate, nil
}

func isDoctorGenerable(doctor *entity.DoctorProfile) bool {
	active := doctor.User.IsActive == nil || *doctor.User.IsActive
	available := doctor.IsAvailable == nil || *doctor.IsAvailable
	return active && available
}

// rulesByWeekday indexes active rules for the planner. Stored times were
// validated at creation; a rule that fails to parse anyway is logged and
// left out rather than failing the whole run.
func (u *scheduleGeneratorUsecase) rulesByWeekday(rules []entity.WorkingHours) map[int]scheduling.Rule {
	indexed := make(map[int]scheduling.Rule, len(rules))
	for i := range rules {
		rule := &rules[i]
		start, err := parseStoredTime(rule.StartTime)
		if err != nil {
			u.log.Warnf("Skipping working hours %d: bad start time %q", rule.ID, rule.StartTime)
			continue
		}
		end, err := parseStoredTime(rule.EndTime)
		if err != nil {
			u.log.Warnf("Skipping working hours %d: bad end time %q", rule.ID, rule.EndTime)
			continue
		}
		indexed[rule.DayOfWeek] = scheduling.Rule{
			WorkingHoursID: rule.ID,
			Window:         scheduling.NewWindow(start, end),
			SlotDuration:   rule.SlotDuration,
			BreakDuration:  rule.BreakDuration,
		}
	}
	return indexed
}

// parseStoredTime tolerates the seconds suffix a time column round-trips with.
func parseStoredTime(s string) (clock.Time, error) {
	if parts := strings.SplitN(s, ":", 3); len(parts) == 3 {
		s = parts[0] + ":" + parts[1]
	}
	return clock.Parse(s)
}

// generateForDate runs one date as a single transaction and classifies any
// failure as a skip. An existing schedule is either left untouched (the
// idempotent no-op) or, when regenerating, replaced only if none of its
// slots carry a booked appointment.
func (u *scheduleGeneratorUsecase) generateForDate(ctx context.Context, doctorID uuid.UUID, plan scheduling.DayPlan, regenerate bool) (*entity.Schedule, *scheduling.Skip) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	var droppedScheduleID int

	existing, err := u.scheduleRepo.FindByDoctorDateRule(tx, doctorID, plan.Date, plan.Rule.WorkingHoursID)
	if err != nil {
		u.log.Warnf("Failed to check existing schedule for %s: %+v", clock.FormatDate(plan.Date), err)
		return nil, &scheduling.Skip{Date: plan.Date, Reason: scheduling.SkipError, Detail: err.Error()}
	}
	if existing != nil {
		if !regenerate {
			return nil, &scheduling.Skip{Date: plan.Date, Reason: scheduling.SkipExisting}
		}

		booked, err := u.appointmentRepo.CountBookedBySchedule(tx, existing.ID)
		if err != nil {
			u.log.Warnf("Failed to count booked appointments for %s: %+v", clock.FormatDate(plan.Date), err)
			return nil, &scheduling.Skip{Date: plan.Date, Reason: scheduling.SkipError, Detail: err.Error()}
		}
		if booked > 0 {
			return nil, &scheduling.Skip{Date: plan.Date, Reason: scheduling.SkipBooked}
		}

		if _, err := u.scheduleRepo.DeleteWithSlots(tx, existing.ID); err != nil {
			u.log.Warnf("Failed to replace schedule for %s: %+v", clock.FormatDate(plan.Date), err)
			return nil, &scheduling.Skip{Date: plan.Date, Reason: scheduling.SkipError, Detail: err.Error()}
		}
		droppedScheduleID = existing.ID
	}

	slots := scheduling.WindowSlots(plan.Rule.Window, plan.Rule.SlotDuration, plan.Rule.BreakDuration)

	available := true
	schedule := &entity.Schedule{
		DoctorID:        doctorID,
		WorkingHoursID:  plan.Rule.WorkingHoursID,
		Date:            plan.Date,
		StartTime:       plan.Rule.Window.Start().String(),
		EndTime:         plan.Rule.Window.End().String(),
		IsAutoGenerated: true,
		IsAvailable:     &available,
		MaxAppointments: u.cfg.DefaultMaxAppointments,
		Slots:           make([]entity.Slot, len(slots)),
	}
	for i, slot := range slots {
		slotAvailable := true
		schedule.Slots[i] = entity.Slot{
			StartTime:   slot.Start.String(),
			EndTime:     slot.End.String(),
			IsAvailable: &slotAvailable,
		}
	}

	if err := u.scheduleRepo.Create(tx, schedule); err != nil {
		// A losing concurrent writer hits the (doctor, date, rule) unique
		// constraint; that is a skip, not a failure of the run.
		if isDuplicateKeyError(err, "doctor_date_rule") {
			return nil, &scheduling.Skip{Date: plan.Date, Reason: scheduling.SkipConflict}
		}
		u.log.Warnf("Failed to create schedule for %s: %+v", clock.FormatDate(plan.Date), err)
		return nil, &scheduling.Skip{Date: plan.Date, Reason: scheduling.SkipError, Detail: err.Error()}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit schedule for %s: %+v", clock.FormatDate(plan.Date), err)
		return nil, &scheduling.Skip{Date: plan.Date, Reason: scheduling.SkipError, Detail: err.Error()}
	}

	if droppedScheduleID != 0 {
		u.slotCache.DropSchedule(ctx, droppedScheduleID)
	}
	u.slotCache.SeedSchedule(ctx, schedule.ID, len(schedule.Slots))

	return schedule, nil
}
