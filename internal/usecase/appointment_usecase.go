package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

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
	ErrSlotNotFound                = errors.New("slot not found")
	ErrSlotUnavailable             = errors.New("slot is no longer available")
	ErrSchedulePast                = errors.New("cannot book a slot on a past date")
	ErrAppointmentNotFound         = errors.New("appointment not found")
	ErrAppointmentAlreadyCancelled = errors.New("appointment is already cancelled")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, request *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	GetAppointmentsByPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
	CancelAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	slotRepo        repository.SlotRepository
	patientRepo     repository.PatientProfileRepository
	slotCache       *service.SlotCacheService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	slotRepo repository.SlotRepository,
	patientRepo repository.PatientProfileRepository,
	slotCache *service.SlotCacheService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		slotRepo:        slotRepo,
		patientRepo:     patientRepo,
		slotCache:       slotCache,
	}
}

// CreateAppointment books a slot. The Redis availability counter is claimed
// first; the guarded slot update inside the transaction is the authoritative
// check. If the database claim fails after Redis succeeded, the counter is
// incremented back.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, request *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	slot, err := u.slotRepo.FindByID(u.db.WithContext(ctx), request.SlotID)
	if err != nil {
		u.log.Warnf("Failed to find slot: %+v", err)
		return nil, err
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}

	if clock.DateOnly(slot.Schedule.Date).Before(clock.Today()) {
		return nil, ErrSchedulePast
	}
	if slot.IsAvailable != nil && !*slot.IsAvailable {
		return nil, ErrSlotUnavailable
	}

	patient, err := u.patientRepo.FindByUserID(u.db.WithContext(ctx), request.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if err := u.slotCache.ClaimSlot(ctx, slot.ScheduleID); err != nil {
		if errors.Is(err, service.ErrNoAvailability) {
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}

	appointment, err := u.bookSlot(ctx, slot, request)
	if err != nil {
		// Give the claimed unit back so the counter stays in step with
		// the database.
		u.slotCache.RestoreSlot(ctx, slot.ScheduleID)
		return nil, err
	}

	appointment.Slot = *slot
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) bookSlot(ctx context.Context, slot *entity.Slot, request *dto.CreateAppointmentRequest) (*entity.Appointment, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	claimed, err := u.slotRepo.ClaimSlot(tx, slot.ID)
	if err != nil {
		u.log.Warnf("Failed to claim slot: %+v", err)
		return nil, err
	}
	if claimed == 0 {
		return nil, ErrSlotUnavailable
	}

	code, err := generateBookingCode(slot.Schedule.Date)
	if err != nil {
		u.log.Warnf("Failed to generate booking code: %+v", err)
		return nil, err
	}

	appointment := &entity.Appointment{
		ID:          uuid.New(),
		PatientID:   request.PatientID,
		SlotID:      slot.ID,
		BookingCode: code,
		Status:      entity.AppointmentStatusPending,
		Notes:       request.Notes,
	}
	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return appointment, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointmentsByPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// CancelAppointment releases the slot back to availability. The guarded
// update makes a double cancel a no-op error instead of a second release.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	cancelled, err := u.appointmentRepo.Cancel(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment: %+v", err)
		return nil, err
	}
	if cancelled == 0 {
		return nil, ErrAppointmentAlreadyCancelled
	}

	if err := u.slotRepo.ReleaseSlot(tx, appointment.SlotID); err != nil {
		u.log.Warnf("Failed to release slot: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	u.slotCache.RestoreSlot(ctx, appointment.Slot.ScheduleID)

	appointment.Cancel()
	return converter.AppointmentToResponse(appointment), nil
}

func generateBookingCode(date time.Time) (string, error) {
	const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	suffix := make([]byte, 6)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(letters))))
		if err != nil {
			return "", err
		}
		suffix[i] = letters[n.Int64()]
	}
	return fmt.Sprintf("APT-%s-%s", date.Format("20060102"), suffix), nil
}
