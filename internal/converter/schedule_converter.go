package converter

import (
	"clinic-scheduling-service/internal/delivery/dto"
	"clinic-scheduling-service/internal/domain/entity"
	"clinic-scheduling-service/internal/scheduling"
	"clinic-scheduling-service/pkg/clock"
)

// SlotToResponse converts a Slot entity to its response DTO
func SlotToResponse(slot *entity.Slot) *dto.SlotResponse {
	if slot == nil {
		return nil
	}

	return &dto.SlotResponse{
		ID:          slot.ID,
		ScheduleID:  slot.ScheduleID,
		StartTime:   slot.StartTime,
		EndTime:     slot.EndTime,
		IsAvailable: slot.IsAvailable,
	}
}

// ScheduleToResponse converts a Schedule entity, including loaded slots
func ScheduleToResponse(schedule *entity.Schedule) *dto.ScheduleResponse {
	if schedule == nil {
		return nil
	}

	response := &dto.ScheduleResponse{
		ID:              schedule.ID,
		DoctorID:        schedule.DoctorID,
		WorkingHoursID:  schedule.WorkingHoursID,
		Date:            clock.FormatDate(schedule.Date),
		StartTime:       schedule.StartTime,
		EndTime:         schedule.EndTime,
		IsAutoGenerated: schedule.IsAutoGenerated,
		IsAvailable:     schedule.IsAvailable,
		MaxAppointments: schedule.MaxAppointments,
		CreatedAt:       schedule.CreatedAt,
		UpdatedAt:       schedule.UpdatedAt,
	}

	if len(schedule.Slots) > 0 {
		response.Slots = make([]dto.SlotResponse, len(schedule.Slots))
		for i := range schedule.Slots {
			response.Slots[i] = *SlotToResponse(&schedule.Slots[i])
		}
	}

	return response
}

// SchedulesToResponses converts a slice of Schedule entities
func SchedulesToResponses(schedules []entity.Schedule) []dto.ScheduleResponse {
	responses := make([]dto.ScheduleResponse, len(schedules))
	for i := range schedules {
		responses[i] = *ScheduleToResponse(&schedules[i])
	}
	return responses
}

// SkipsToResponses converts generator skip records for the response payload
func SkipsToResponses(skips []scheduling.Skip) []dto.SkippedDateResponse {
	if len(skips) == 0 {
		return nil
	}
	responses := make([]dto.SkippedDateResponse, len(skips))
	for i, skip := range skips {
		responses[i] = dto.SkippedDateResponse{
			Date:   clock.FormatDate(skip.Date),
			Reason: string(skip.Reason),
			Detail: skip.Detail,
		}
	}
	return responses
}
