package converter

import (
	"clinic-scheduling-service/internal/delivery/dto"
	"clinic-scheduling-service/internal/domain/entity"
)

// WorkingHoursToResponse converts a WorkingHours entity to its response DTO
func WorkingHoursToResponse(workingHours *entity.WorkingHours) *dto.WorkingHoursResponse {
	if workingHours == nil {
		return nil
	}

	return &dto.WorkingHoursResponse{
		ID:            workingHours.ID,
		DoctorID:      workingHours.DoctorID,
		DayOfWeek:     workingHours.DayOfWeek,
		StartTime:     workingHours.StartTime,
		EndTime:       workingHours.EndTime,
		SlotDuration:  workingHours.SlotDuration,
		BreakDuration: workingHours.BreakDuration,
		IsActive:      workingHours.IsActive,
		CreatedAt:     workingHours.CreatedAt,
		UpdatedAt:     workingHours.UpdatedAt,
	}
}

// WorkingHoursToResponses converts a slice of WorkingHours entities
func WorkingHoursToResponses(rules []entity.WorkingHours) []dto.WorkingHoursResponse {
	responses := make([]dto.WorkingHoursResponse, len(rules))
	for i := range rules {
		responses[i] = *WorkingHoursToResponse(&rules[i])
	}
	return responses
}
