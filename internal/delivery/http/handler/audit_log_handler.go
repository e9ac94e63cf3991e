package handler

import (
	"net/http"

	"patient-health-api/internal/delivery/dto"
	"patient-health-api/internal/usecase"
	"patient-health-api/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	auditLogID, ok := pathID(r, "id")
	if !ok {
		badRequest(w, r, "Invalid audit log ID")
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), auditLogID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Audit log retrieved successfully", auditLog)
}

// GetAllAuditLogs accepts the optional ?accountId, ?entity, ?entityId and
// ?action filters.
func (h *AuditLogHandler) GetAllAuditLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &dto.AuditLogListRequest{
		AccountID: query.Get("accountId"),
		Entity:    query.Get("entity"),
		Action:    query.Get("action"),
	}
	if raw := query.Get("entityId"); raw != "" {
		entityID, ok := parseID(raw)
		if !ok {
			badRequest(w, r, "Invalid entity ID")
			return
		}
		req.EntityID = entityID
	}

	auditLogs, err := h.auditLogUsecase.GetAllAuditLogs(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", auditLogs)
}
