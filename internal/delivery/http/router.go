package http

import (
	"net/http"

	"medicita/internal/delivery/http/handler"
	"medicita/internal/delivery/http/middleware"
	"medicita/internal/domain/entity"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	doctorHandler      *handler.DoctorHandler
	patientHandler     *handler.PatientHandler
	appointmentHandler *handler.AppointmentHandler
	historyHandler     *handler.HistoryHandler
	auditLogHandler    *handler.AuditLogHandler
	snapshotHandler    *handler.SnapshotHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	requestMiddleware  *middleware.RequestMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	historyHandler *handler.HistoryHandler,
	auditLogHandler *handler.AuditLogHandler,
	snapshotHandler *handler.SnapshotHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	requestMiddleware *middleware.RequestMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		doctorHandler:      doctorHandler,
		patientHandler:     patientHandler,
		appointmentHandler: appointmentHandler,
		historyHandler:     historyHandler,
		auditLogHandler:    auditLogHandler,
		snapshotHandler:    snapshotHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
		requestMiddleware:  requestMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Doctor list is open to every role so forms can offer a doctor picker
	doctors := api.PathPrefix("/doctors").Subrouter()
	doctors.Use(r.authMiddleware.Authenticate)
	anyStaff := middleware.RequireRole(entity.RoleAdmin, entity.RoleReceptionist, entity.RoleDoctor)
	doctorsView := middleware.RequireView(entity.ViewDoctors)
	doctors.Handle("", anyStaff(http.HandlerFunc(r.doctorHandler.GetAllDoctors))).Methods(http.MethodGet)
	doctors.Handle("", doctorsView(http.HandlerFunc(r.doctorHandler.CreateDoctor))).Methods(http.MethodPost)
	doctors.Handle("/{id}", doctorsView(http.HandlerFunc(r.doctorHandler.GetDoctor))).Methods(http.MethodGet)
	doctors.Handle("/{id}", doctorsView(http.HandlerFunc(r.doctorHandler.UpdateDoctor))).Methods(http.MethodPut)
	doctors.Handle("/{id}", doctorsView(http.HandlerFunc(r.doctorHandler.DeleteDoctor))).Methods(http.MethodDelete)

	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.Use(middleware.RequireView(entity.ViewPatients))
	patients.HandleFunc("", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	patients.HandleFunc("", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	patients.HandleFunc("/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	patients.HandleFunc("/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	citas := api.PathPrefix("/citas").Subrouter()
	citas.Use(r.authMiddleware.Authenticate)
	citas.Use(middleware.RequireView(entity.ViewAppointments))
	citas.HandleFunc("", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	citas.HandleFunc("", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	citas.HandleFunc("/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	citas.HandleFunc("/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	citas.HandleFunc("/{id}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPost)

	historial := api.PathPrefix("/historial").Subrouter()
	historial.Use(r.authMiddleware.Authenticate)
	historial.Use(middleware.RequireView(entity.ViewHistory))
	historial.HandleFunc("", r.historyHandler.GetAllRecords).Methods(http.MethodGet)
	historial.HandleFunc("", r.historyHandler.CreateRecord).Methods(http.MethodPost)
	historial.HandleFunc("/{id}", r.historyHandler.GetRecord).Methods(http.MethodGet)
	historial.HandleFunc("/{id}", r.historyHandler.UpdateRecord).Methods(http.MethodPut)
	historial.HandleFunc("/{id}", r.historyHandler.DeleteRecord).Methods(http.MethodDelete)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/users", r.authHandler.GetAllUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.authHandler.DeleteUser).Methods(http.MethodDelete)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)
	admin.HandleFunc("/export", r.snapshotHandler.Export).Methods(http.MethodGet)
	admin.HandleFunc("/backup", r.snapshotHandler.Backup).Methods(http.MethodPost)

	r.router.Use(r.requestMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
