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

type ScheduleHandler struct {
	scheduleUsecase  usecase.ScheduleUsecase
	generatorUsecase usecase.ScheduleGeneratorUsecase
	validator        *validator.CustomValidator
}

func NewScheduleHandler(
	scheduleUsecase usecase.ScheduleUsecase,
	generatorUsecase usecase.ScheduleGeneratorUsecase,
	validator *validator.CustomValidator,
) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase:  scheduleUsecase,
		generatorUsecase: generatorUsecase,
		validator:        validator,
	}
}

func (h *ScheduleHandler) GenerateSchedules(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateSchedulesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.generatorUsecase.Generate(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		case usecase.ErrStartDateInPast:
			response.BadRequest(w, "Start date must not be in the past")
		case usecase.ErrInvalidDateRange:
			response.BadRequest(w, "End date must be after start date")
		case usecase.ErrDateRangeTooLong:
			response.BadRequest(w, "Date range exceeds the maximum generation window")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrDoctorUnavailable:
			response.Error(w, http.StatusConflict, "Doctor is not active or not available", nil)
		case usecase.ErrNoActiveWorkingHours:
			response.Error(w, http.StatusConflict, "Doctor has no active working hours", nil)
		default:
			response.InternalServerError(w, "Failed to generate schedules")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Schedules generated successfully", result)
}

func (h *ScheduleHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid schedule ID", nil)
		return
	}

	schedule, err := h.scheduleUsecase.GetSchedule(r.Context(), id)
	if err != nil {
		if err == usecase.ErrScheduleNotFound {
			response.NotFound(w, "Schedule not found")
			return
		}
		response.InternalServerError(w, "Failed to get schedule")
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", schedule)
}

func (h *ScheduleHandler) GetSchedulesByDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	startAt := r.URL.Query().Get("start_date")
	endAt := r.URL.Query().Get("end_date")

	schedules, err := h.scheduleUsecase.GetSchedulesByDoctor(r.Context(), doctorID, startAt, endAt)
	if err != nil {
		if err == usecase.ErrInvalidDateFormat {
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
			return
		}
		response.InternalServerError(w, "Failed to get schedules")
		return
	}

	response.Success(w, http.StatusOK, "Schedules retrieved successfully", schedules)
}

func (h *ScheduleHandler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid schedule ID", nil)
		return
	}

	if err := h.scheduleUsecase.DeleteSchedule(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrScheduleNotFound:
			response.NotFound(w, "Schedule not found")
		case usecase.ErrScheduleBooked:
			response.PreconditionFailed(w, "Schedule has booked appointments")
		default:
			response.InternalServerError(w, "Failed to delete schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule deleted successfully", nil)
}
