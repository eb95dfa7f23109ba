package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-scheduling-service/internal/delivery/dto"
	"clinic-scheduling-service/internal/usecase"
	"clinic-scheduling-service/pkg/response"
	"clinic-scheduling-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type WorkingHoursHandler struct {
	workingHoursUsecase usecase.WorkingHoursUsecase
	validator           *validator.CustomValidator
}

func NewWorkingHoursHandler(workingHoursUsecase usecase.WorkingHoursUsecase, validator *validator.CustomValidator) *WorkingHoursHandler {
	return &WorkingHoursHandler{
		workingHoursUsecase: workingHoursUsecase,
		validator:           validator,
	}
}

func (h *WorkingHoursHandler) CreateWorkingHours(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateWorkingHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	workingHours, err := h.workingHoursUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrInvalidTimeFormat:
			response.BadRequest(w, "Invalid time format, use HH:MM")
		case usecase.ErrInvalidTimeRange:
			response.BadRequest(w, "End time must be after start time")
		case usecase.ErrInvalidTimezone:
			response.BadRequest(w, "Invalid timezone identifier")
		case usecase.ErrWorkingHoursConflict:
			response.Conflict(w, "Working hours already exist for this doctor and day")
		default:
			response.InternalServerError(w, "Failed to create working hours")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Working hours created successfully", workingHours)
}

func (h *WorkingHoursHandler) CreateWorkingHoursBulk(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkCreateWorkingHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	workingHours, err := h.workingHoursUsecase.CreateBulk(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrInvalidTimeFormat:
			response.BadRequest(w, "Invalid time format, use HH:MM")
		case usecase.ErrInvalidTimeRange:
			response.BadRequest(w, "End time must be after start time")
		case usecase.ErrInvalidTimezone:
			response.BadRequest(w, "Invalid timezone identifier")
		case usecase.ErrWorkingHoursConflict:
			response.Conflict(w, "Working hours already exist for this doctor and day")
		default:
			response.InternalServerError(w, "Failed to create working hours")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Working hours created successfully", workingHours)
}

func (h *WorkingHoursHandler) GetWorkingHoursByDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	workingHours, err := h.workingHoursUsecase.GetByDoctor(r.Context(), doctorID)
	if err != nil {
		if err == usecase.ErrDoctorNotFound {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get working hours")
		return
	}

	response.Success(w, http.StatusOK, "Working hours retrieved successfully", workingHours)
}

func (h *WorkingHoursHandler) UpdateWorkingHours(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid working hours ID", nil)
		return
	}

	var req dto.UpdateWorkingHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	workingHours, err := h.workingHoursUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrWorkingHoursNotFound:
			response.NotFound(w, "Working hours not found")
		case usecase.ErrInvalidTimeFormat:
			response.BadRequest(w, "Invalid time format, use HH:MM")
		case usecase.ErrInvalidTimezone:
			response.BadRequest(w, "Invalid timezone identifier")
		default:
			response.InternalServerError(w, "Failed to update working hours")
		}
		return
	}

	response.Success(w, http.StatusOK, "Working hours updated successfully", workingHours)
}

func (h *WorkingHoursHandler) DeleteWorkingHours(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid working hours ID", nil)
		return
	}

	if err := h.workingHoursUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrWorkingHoursNotFound:
			response.NotFound(w, "Working hours not found")
		case usecase.ErrWorkingHoursBooked:
			response.PreconditionFailed(w, "Working hours have schedules with booked appointments")
		default:
			response.InternalServerError(w, "Failed to delete working hours")
		}
		return
	}

	response.Success(w, http.StatusOK, "Working hours deleted successfully", nil)
}
