package http

import (
	"net/http"

	"patient-health-api/internal/delivery/http/handler"
	"patient-health-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	healthHandler        *handler.HealthHandler
	authHandler          *handler.AuthHandler
	coverageHandler      *handler.HealthCoverageHandler
	professionalHandler  *handler.HealthProfessionalHandler
	accountLinkedHandler *handler.AccountLinkedHandler
	auditLogHandler      *handler.AuditLogHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
	loggingMiddleware    *middleware.LoggingMiddleware
	recoveryMiddleware   *middleware.RecoveryMiddleware
}

func NewRouter(
	healthHandler *handler.HealthHandler,
	authHandler *handler.AuthHandler,
	coverageHandler *handler.HealthCoverageHandler,
	professionalHandler *handler.HealthProfessionalHandler,
	accountLinkedHandler *handler.AccountLinkedHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	recoveryMiddleware *middleware.RecoveryMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		healthHandler:        healthHandler,
		authHandler:          authHandler,
		coverageHandler:      coverageHandler,
		professionalHandler:  professionalHandler,
		accountLinkedHandler: accountLinkedHandler,
		auditLogHandler:      auditLogHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
		loggingMiddleware:    loggingMiddleware,
		recoveryMiddleware:   recoveryMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.Use(middleware.RequestID)
	r.router.Use(r.recoveryMiddleware.Handle)
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check (public)
	api.HandleFunc("/health", r.healthHandler.Live).Methods(http.MethodGet)
	api.HandleFunc("/health/ready", r.healthHandler.Ready).Methods(http.MethodGet)

	// Auth routes (protected)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.Use(r.authMiddleware.Authenticate)
	auth.HandleFunc("/me", r.authHandler.GetCurrentAccount).Methods(http.MethodGet)
	auth.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Health coverages
	api.Handle("/health-coverages/patient/{patientId}", r.protect(r.coverageHandler.ListCoverages, middleware.RequireAdminOrPatient)).Methods(http.MethodGet)
	api.Handle("/health-coverage/{id}", r.protect(r.coverageHandler.GetCoverage, middleware.RequireAdminOrPatient)).Methods(http.MethodGet)
	api.Handle("/health-coverage/patient/{patientId}", r.protect(r.coverageHandler.CreateCoverage, middleware.RequireAdminOrPatient)).Methods(http.MethodPost)
	api.Handle("/health-coverage/{id}/patient/{patientId}", r.protect(r.coverageHandler.UpdateCoverage, middleware.RequireAdminOrPatient)).Methods(http.MethodPatch)
	api.Handle("/health-coverage/{id}/patient/{patientId}", r.protect(r.coverageHandler.DeleteCoverage, middleware.RequireAdminOrPatient)).Methods(http.MethodDelete)

	// Health professional contacts
	api.Handle("/health-professional-contacts", r.protect(r.professionalHandler.ListProfessionals, middleware.RequireAdminOrPatient)).Methods(http.MethodGet)
	api.Handle("/health-professional-contact/{id}", r.protect(r.professionalHandler.GetProfessional, middleware.RequireAdminOrPatient)).Methods(http.MethodGet)
	api.Handle("/health-professional-contact", r.protect(r.professionalHandler.CreateProfessional, middleware.RequireAdminOrPatient)).Methods(http.MethodPost)
	api.Handle("/health-professional-contact/{id}", r.protect(r.professionalHandler.UpdateProfessional, middleware.RequireAdminOrPatient)).Methods(http.MethodPatch)
	api.Handle("/health-professional-contact/{id}", r.protect(r.professionalHandler.DeleteProfessional, middleware.RequireAdminOrPatient)).Methods(http.MethodDelete)

	// Account links
	api.Handle("/account-linked/{patientId}", r.protect(r.accountLinkedHandler.ListLinks, middleware.RequireAdminDoctorOrPatient)).Methods(http.MethodGet)
	api.Handle("/check-account-linked/{patientId}", r.protect(r.accountLinkedHandler.CheckLinks)).Methods(http.MethodGet)
	api.Handle("/account-linked", r.protect(r.accountLinkedHandler.CreateLink, middleware.RequireAdminOrPatient)).Methods(http.MethodPost)
	api.Handle("/account-linked/patients/{patientId}/remove/{linkedPatientId}", r.protect(r.accountLinkedHandler.RemoveLink, middleware.RequireAdminOrPatient)).Methods(http.MethodDelete)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	return r.router
}

// protect authenticates the request, then applies the role gates in order.
func (r *Router) protect(h http.HandlerFunc, gates ...func(http.Handler) http.Handler) http.Handler {
	var next http.Handler = h
	for i := len(gates) - 1; i >= 0; i-- {
		next = gates[i](next)
	}
	return r.authMiddleware.Authenticate(next)
}
