package http

import (
	"net/http"

	"clinic-scheduling-service/internal/delivery/http/handler"
	"clinic-scheduling-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	doctorHandler       *handler.DoctorHandler
	patientHandler      *handler.PatientHandler
	workingHoursHandler *handler.WorkingHoursHandler
	scheduleHandler     *handler.ScheduleHandler
	appointmentHandler  *handler.AppointmentHandler
	auditLogHandler     *handler.AuditLogHandler
	corsMiddleware      *middleware.CORSMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	workingHoursHandler *handler.WorkingHoursHandler,
	scheduleHandler *handler.ScheduleHandler,
	appointmentHandler *handler.AppointmentHandler,
	auditLogHandler *handler.AuditLogHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		doctorHandler:       doctorHandler,
		patientHandler:      patientHandler,
		workingHoursHandler: workingHoursHandler,
		scheduleHandler:     scheduleHandler,
		appointmentHandler:  appointmentHandler,
		auditLogHandler:     auditLogHandler,
		corsMiddleware:      corsMiddleware,
		loggingMiddleware:   loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Doctor management
	api.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Patient management
	api.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	api.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)

	// Working hours rules
	api.HandleFunc("/working-hours", r.workingHoursHandler.CreateWorkingHours).Methods(http.MethodPost)
	api.HandleFunc("/working-hours/bulk", r.workingHoursHandler.CreateWorkingHoursBulk).Methods(http.MethodPost)
	api.HandleFunc("/working-hours/{id}", r.workingHoursHandler.UpdateWorkingHours).Methods(http.MethodPut)
	api.HandleFunc("/working-hours/{id}", r.workingHoursHandler.DeleteWorkingHours).Methods(http.MethodDelete)
	api.HandleFunc("/doctors/{doctorId}/working-hours", r.workingHoursHandler.GetWorkingHoursByDoctor).Methods(http.MethodGet)

	// Schedule generation and management
	api.HandleFunc("/schedules/generate", r.scheduleHandler.GenerateSchedules).Methods(http.MethodPost)
	api.HandleFunc("/schedules/{id}", r.scheduleHandler.GetSchedule).Methods(http.MethodGet)
	api.HandleFunc("/schedules/{id}", r.scheduleHandler.DeleteSchedule).Methods(http.MethodDelete)
	api.HandleFunc("/doctors/{doctorId}/schedules", r.scheduleHandler.GetSchedulesByDoctor).Methods(http.MethodGet)

	// Appointments
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPost)
	api.HandleFunc("/patients/{patientId}/appointments", r.appointmentHandler.GetAppointmentsByPatient).Methods(http.MethodGet)

	// Audit trail
	api.HandleFunc("/audit-logs", r.auditLogHandler.GetRecentAuditLogs).Methods(http.MethodGet)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
