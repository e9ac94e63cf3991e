package dto

import (
	"patient-health-api/internal/domain/entity"
	"time"
)

// Request DTOs

// AuditLogListRequest carries the optional query filters of the audit listing.
type AuditLogListRequest struct {
	AccountID string
	Entity    string
	EntityID  int64
	Action    string
}

// Response DTOs

type AuditLogResponse struct {
	ID        int64       `json:"id"`
	AccountID string      `json:"account_id"`
	Role      string      `json:"role"`
	Action    string      `json:"action"`
	Entity    string      `json:"entity,omitempty"`
	EntityID  int64       `json:"entity_id,omitempty"`
	Metadata  entity.JSON `json:"metadata"`
	CreatedAt time.Time   `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}
