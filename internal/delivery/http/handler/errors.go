package handler

import (
	"errors"
	"net/http"
	"strconv"

	"patient-health-api/internal/delivery/http/middleware"
	"patient-health-api/internal/service"
	"patient-health-api/internal/usecase"
	"patient-health-api/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type errorMapping struct {
	err    error
	status int
	code   string
}

var errorMappings = []errorMapping{
	{usecase.ErrCoverageNotFound, http.StatusNotFound, "HEALTH_COVERAGE_NOT_FOUND"},
	{usecase.ErrCoverageListNotFound, http.StatusNotFound, "HEALTH_COVERAGE_LIST_NOT_FOUND"},
	{usecase.ErrCoverageNotMatchPatient, http.StatusForbidden, "HEALTH_COVERAGE_NOT_MATCH_PATIENT"},
	{usecase.ErrProfessionalNotFound, http.StatusNotFound, "HEALTH_PROFESSIONAL_NOT_FOUND"},
	{usecase.ErrProfessionalNotMatchPatient, http.StatusForbidden, "HEALTH_PROFESSIONAL_NOT_MATCH_PATIENT"},
	{usecase.ErrPatientNotFound, http.StatusNotFound, "PATIENT_NOT_FOUND"},
	{usecase.ErrDoctorNotFound, http.StatusNotFound, "DOCTOR_NOT_FOUND"},
	{usecase.ErrNoRelationBetweenPatients, http.StatusNotFound, "NO_RELATION_BETWEEN_PATIENTS"},
	{usecase.ErrRelationTypeNotFound, http.StatusNotFound, "PATIENT_RELATION_NOT_FOUND"},
	{usecase.ErrLinkAlreadyExists, http.StatusConflict, "ACCOUNT_LINK_ALREADY_EXISTS"},
	{usecase.ErrCannotLinkSelf, http.StatusBadRequest, "ACCOUNT_LINK_SELF"},
	{usecase.ErrAuditLogNotFound, http.StatusNotFound, "AUDIT_LOG_NOT_FOUND"},
	{usecase.ErrInvalidToken, http.StatusUnauthorized, "INVALID_TOKEN"},
	{service.ErrForbidden, http.StatusForbidden, response.CodeForbidden},
	{service.ErrUnauthenticated, http.StatusUnauthorized, response.CodeUnauthorized},
}

// writeError maps a usecase error to its status and code. Unknown errors are
// logged with the trace id and answered with a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	traceID := middleware.GetRequestIDFromContext(r.Context())

	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			response.Fail(w, m.status, err.Error(), m.code, traceID)
			return
		}
	}

	logrus.WithFields(logrus.Fields{
		"request_id": traceID,
		"method":     r.Method,
		"path":       r.URL.Path,
	}).Errorf("Unhandled error: %+v", err)
	response.Fail(w, http.StatusInternalServerError, "Internal server error", response.CodeInternalServer, traceID)
}

func badRequest(w http.ResponseWriter, r *http.Request, message string) {
	response.Fail(w, http.StatusBadRequest, message, response.CodeBadRequest, middleware.GetRequestIDFromContext(r.Context()))
}

// pathID parses a positive integer route variable.
func pathID(r *http.Request, name string) (int64, bool) {
	return parseID(mux.Vars(r)[name])
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
