package usecase

import (
	"context"
	"errors"
	"strconv"

	"clinic-scheduling-service/internal/converter"
	"clinic-scheduling-service/internal/delivery/dto"
	"clinic-scheduling-service/internal/domain/entity"
	"clinic-scheduling-service/internal/domain/repository"
	"clinic-scheduling-service/internal/service"
	"clinic-scheduling-service/pkg/clock"
	"clinic-scheduling-service/pkg/timezone"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrWorkingHoursNotFound = errors.New("working hours not found")
	ErrWorkingHoursConflict = errors.New("working hours already exist for this doctor and day")
	ErrWorkingHoursBooked   = errors.New("working hours have schedules with booked appointments")
	ErrInvalidTimeFormat    = errors.New("invalid time format, use HH:MM")
	ErrInvalidTimeRange     = errors.New("end time must be after start time")
	ErrInvalidTimezone      = errors.New("invalid timezone identifier")
)

type WorkingHoursUsecase interface {
	Create(ctx context.Context, req *dto.CreateWorkingHoursRequest) (*dto.WorkingHoursResponse, error)
	CreateBulk(ctx context.Context, req *dto.BulkCreateWorkingHoursRequest) (*dto.WorkingHoursListResponse, error)
	GetByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.WorkingHoursListResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateWorkingHoursRequest) (*dto.WorkingHoursResponse, error)
	Delete(ctx context.Context, id int) error
}

type workingHoursUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	workingHoursRepo repository.WorkingHoursRepository
	doctorRepo       repository.DoctorProfileRepository
	appointmentRepo  repository.AppointmentRepository
	scheduleRepo     repository.ScheduleRepository
	auditService     service.AuditService
}

func NewWorkingHoursUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	workingHoursRepo repository.WorkingHoursRepository,
	doctorRepo repository.DoctorProfileRepository,
	appointmentRepo repository.AppointmentRepository,
	scheduleRepo repository.ScheduleRepository,
	auditService service.AuditService,
) WorkingHoursUsecase {
	return &workingHoursUsecase{
		db:               db,
		log:              log,
		workingHoursRepo: workingHoursRepo,
		doctorRepo:       doctorRepo,
		appointmentRepo:  appointmentRepo,
		scheduleRepo:     scheduleRepo,
		auditService:     auditService,
	}
}

// normalizeRuleTimes validates a submitted start/end pair and converts it
// to UTC when a timezone is supplied. The submitted local pair must be
// chronological; the UTC result is allowed to cross midnight, which is the
// valid two-day state the generator handles.
func normalizeRuleTimes(startTime, endTime, tz string) (string, string, error) {
	if !clock.IsValid(startTime) || !clock.IsValid(endTime) {
		return "", "", ErrInvalidTimeFormat
	}
	if !clock.IsValidRange(startTime, endTime, false) {
		return "", "", ErrInvalidTimeRange
	}

	if tz == "" {
		return startTime, endTime, nil
	}
	if !timezone.IsValid(tz) {
		return "", "", ErrInvalidTimezone
	}

	utcStart, err := timezone.LocalToUTC(startTime, tz)
	if err != nil {
		return "", "", err
	}
	utcEnd, err := timezone.LocalToUTC(endTime, tz)
	if err != nil {
		return "", "", err
	}
	return utcStart, utcEnd, nil
}

func (u *workingHoursUsecase) buildRule(doctorID uuid.UUID, rule *dto.WorkingHoursRuleRequest) (*entity.WorkingHours, error) {
	utcStart, utcEnd, err := normalizeRuleTimes(rule.StartTime, rule.EndTime, rule.Timezone)
	if err != nil {
		return nil, err
	}

	breakDuration := 0
	if rule.BreakDuration != nil {
		breakDuration = *rule.BreakDuration
	}

	return &entity.WorkingHours{
		DoctorID:      doctorID,
		DayOfWeek:     *rule.DayOfWeek,
		StartTime:     utcStart,
		EndTime:       utcEnd,
		SlotDuration:  rule.SlotDuration,
		BreakDuration: breakDuration,
		IsActive:      rule.IsActive,
	}, nil
}

func (u *workingHoursUsecase) Create(ctx context.Context, req *dto.CreateWorkingHoursRequest) (*dto.WorkingHoursResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	rule, err := u.buildRule(req.DoctorID, &dto.WorkingHoursRuleRequest{
		DayOfWeek:     req.DayOfWeek,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		SlotDuration:  req.SlotDuration,
		BreakDuration: req.BreakDuration,
		IsActive:      req.IsActive,
		Timezone:      req.Timezone,
	})
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.insertRule(tx, rule); err != nil {
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, nil, entity.AuditActionWorkingHoursCreate, "working_hours", strconv.Itoa(rule.ID), converter.WorkingHoursToResponse(rule)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return converter.WorkingHoursToResponse(rule), nil
}

func (u *workingHoursUsecase) insertRule(tx *gorm.DB, rule *entity.WorkingHours) error {
	existing, err := u.workingHoursRepo.FindByDoctorAndDay(tx, rule.DoctorID, rule.DayOfWeek)
	if err != nil {
		u.log.Warnf("Failed to check existing working hours: %+v", err)
		return err
	}
	if existing != nil {
		return ErrWorkingHoursConflict
	}

	if err := u.workingHoursRepo.Create(tx, rule); err != nil {
		u.log.Warnf("Failed to create working hours: %+v", err)
		if isDuplicateKeyError(err, "doctor_day") {
			return ErrWorkingHoursConflict
		}
		if isForeignKeyError(err, "doctor") {
			return ErrDoctorNotFound
		}
		return err
	}
	return nil
}

// CreateBulk inserts several weekly rules for one doctor in a single
// transaction: any invalid or conflicting rule aborts the whole call
// before anything is persisted.
func (u *workingHoursUsecase) CreateBulk(ctx context.Context, req *dto.BulkCreateWorkingHoursRequest) (*dto.WorkingHoursListResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	rules := make([]*entity.WorkingHours, 0, len(req.Rules))
	for i := range req.Rules {
		rule, err := u.buildRule(req.DoctorID, &req.Rules[i])
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	created := make([]entity.WorkingHours, 0, len(rules))
	for _, rule := range rules {
		if err := u.insertRule(tx, rule); err != nil {
			return nil, err
		}
		created = append(created, *rule)
	}

	if err := u.auditService.LogCreate(ctx, tx, nil, entity.AuditActionWorkingHoursCreate, "working_hours", req.DoctorID.String(), converter.WorkingHoursToResponses(created)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return &dto.WorkingHoursListResponse{
		WorkingHours: converter.WorkingHoursToResponses(created),
		Total:        len(created),
	}, nil
}

func (u *workingHoursUsecase) GetByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.WorkingHoursListResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	rules, err := u.workingHoursRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find working hours: %+v", err)
		return nil, err
	}

	return &dto.WorkingHoursListResponse{
		WorkingHours: converter.WorkingHoursToResponses(rules),
		Total:        len(rules),
	}, nil
}

func (u *workingHoursUsecase) Update(ctx context.Context, id int, req *dto.UpdateWorkingHoursRequest) (*dto.WorkingHoursResponse, error) {
	rule, err := u.workingHoursRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find working hours: %+v", err)
		return nil, err
	}
	if rule == nil {
		return nil, ErrWorkingHoursNotFound
	}

	oldValue := converter.WorkingHoursToResponse(rule)

	// Supplied times go through the same conversion as creation. The stored
	// pair stays UTC, where a midnight-crossing result is a valid state, so
	// no chronological check is applied against the merged pair.
	if req.Timezone != "" && !timezone.IsValid(req.Timezone) {
		return nil, ErrInvalidTimezone
	}
	if req.StartTime != "" {
		converted, err := u.convertSuppliedTime(req.StartTime, req.Timezone)
		if err != nil {
			return nil, err
		}
		rule.StartTime = converted
	}
	if req.EndTime != "" {
		converted, err := u.convertSuppliedTime(req.EndTime, req.Timezone)
		if err != nil {
			return nil, err
		}
		rule.EndTime = converted
	}
	if req.SlotDuration != nil {
		rule.SlotDuration = *req.SlotDuration
	}
	if req.BreakDuration != nil {
		rule.BreakDuration = *req.BreakDuration
	}
	if req.IsActive != nil {
		rule.IsActive = req.IsActive
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.workingHoursRepo.Update(tx, rule); err != nil {
		u.log.Warnf("Failed to update working hours: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, nil, entity.AuditActionWorkingHoursUpdate, "working_hours", strconv.Itoa(rule.ID), oldValue, converter.WorkingHoursToResponse(rule)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return converter.WorkingHoursToResponse(rule), nil
}

func (u *workingHoursUsecase) convertSuppliedTime(value, tz string) (string, error) {
	if !clock.IsValid(value) {
		return "", ErrInvalidTimeFormat
	}
	if tz == "" {
		return value, nil
	}
	return timezone.LocalToUTC(value, tz)
}

// Delete removes the rule and every schedule generated from it. The booked
// check runs inside the same transaction as the delete so a booking landing
// between check and delete cannot be destroyed.
func (u *workingHoursUsecase) Delete(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rule, err := u.workingHoursRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find working hours: %+v", err)
		return err
	}
	if rule == nil {
		return ErrWorkingHoursNotFound
	}

	booked, err := u.appointmentRepo.CountBookedByWorkingHours(tx, id)
	if err != nil {
		u.log.Warnf("Failed to count booked appointments: %+v", err)
		return err
	}
	if booked > 0 {
		return ErrWorkingHoursBooked
	}

	if _, err := u.scheduleRepo.DeleteByWorkingHours(tx, id); err != nil {
		u.log.Warnf("Failed to delete generated schedules: %+v", err)
		return err
	}

	if _, err := u.workingHoursRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete working hours: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, nil, entity.AuditActionWorkingHoursDelete, "working_hours", strconv.Itoa(rule.ID), converter.WorkingHoursToResponse(rule)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return err
	}

	return nil
}
