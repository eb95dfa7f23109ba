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

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrScheduleBooked   = errors.New("schedule has booked appointments")
)

type ScheduleUsecase interface {
	GetSchedule(ctx context.Context, scheduleID int) (*dto.ScheduleResponse, error)
	GetSchedulesByDoctor(ctx context.Context, doctorID uuid.UUID, startAt, endAt string) (*dto.ScheduleListResponse, error)
	DeleteSchedule(ctx context.Context, scheduleID int) error
}

type scheduleUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	scheduleRepo    repository.ScheduleRepository
	appointmentRepo repository.AppointmentRepository
	slotCache       *service.SlotCacheService
	auditService    service.AuditService
}

func NewScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.ScheduleRepository,
	appointmentRepo repository.AppointmentRepository,
	slotCache *service.SlotCacheService,
	auditService service.AuditService,
) ScheduleUsecase {
	return &scheduleUsecase{
		db:              db,
		log:             log,
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		slotCache:       slotCache,
		auditService:    auditService,
	}
}

func (u *scheduleUsecase) GetSchedule(ctx context.Context, scheduleID int) (*dto.ScheduleResponse, error) {
	schedule, err := u.scheduleRepo.FindByID(u.db.WithContext(ctx), scheduleID)
	if err != nil {
		u.log.Warnf("Failed to find schedule: %+v", err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	return converter.ScheduleToResponse(schedule), nil
}

func (u *scheduleUsecase) GetSchedulesByDoctor(ctx context.Context, doctorID uuid.UUID, startAt, endAt string) (*dto.ScheduleListResponse, error) {
	if startAt != "" {
		if _, err := clock.ParseDate(startAt); err != nil {
			return nil, ErrInvalidDateFormat
		}
	}
	if endAt != "" {
		if _, err := clock.ParseDate(endAt); err != nil {
			return nil, ErrInvalidDateFormat
		}
	}

	schedules, err := u.scheduleRepo.FindByDoctorAndRange(u.db.WithContext(ctx), doctorID, startAt, endAt)
	if err != nil {
		u.log.Warnf("Failed to find schedules: %+v", err)
		return nil, err
	}

	return &dto.ScheduleListResponse{
		Schedules: converter.SchedulesToResponses(schedules),
		Total:     len(schedules),
	}, nil
}

// DeleteSchedule removes a schedule and its slots. The booked check runs
// inside the same transaction as the delete.
func (u *scheduleUsecase) DeleteSchedule(ctx context.Context, scheduleID int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	schedule, err := u.scheduleRepo.FindByID(tx, scheduleID)
	if err != nil {
		u.log.Warnf("Failed to find schedule: %+v", err)
		return err
	}
	if schedule == nil {
		return ErrScheduleNotFound
	}

	booked, err := u.appointmentRepo.CountBookedBySchedule(tx, scheduleID)
	if err != nil {
		u.log.Warnf("Failed to count booked appointments: %+v", err)
		return err
	}
	if booked > 0 {
		return ErrScheduleBooked
	}

	if _, err := u.scheduleRepo.DeleteWithSlots(tx, scheduleID); err != nil {
		u.log.Warnf("Failed to delete schedule: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, nil, entity.AuditActionScheduleDelete, "schedule", strconv.Itoa(scheduleID), converter.ScheduleToResponse(schedule)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return err
	}

	u.slotCache.DropSchedule(ctx, scheduleID)

	return nil
}
