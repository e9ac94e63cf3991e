package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// AuditLog represents a system audit trail entry. EntityName and EntityID
// repeat the metadata keys so listings can filter on them.
type AuditLog struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountID  string    `gorm:"type:varchar(64);index" json:"account_id,omitempty"`
	Role       string    `gorm:"type:varchar(20)" json:"role,omitempty"`
	Action     string    `gorm:"type:varchar(100);not null;index" json:"action"`
	EntityName string    `gorm:"type:varchar(64);index:idx_audit_logs_entity" json:"entity_name,omitempty"`
	EntityID   int64     `gorm:"index:idx_audit_logs_entity" json:"entity_id,omitempty"`
	Metadata   JSON      `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// Common audit actions
const (
	AuditActionCoverageCreate     = "health_coverage.create"
	AuditActionCoverageUpdate     = "health_coverage.update"
	AuditActionCoverageDelete     = "health_coverage.delete"
	AuditActionProfessionalCreate = "health_professional.create"
	AuditActionProfessionalUpdate = "health_professional.update"
	AuditActionProfessionalDelete = "health_professional.delete"
	AuditActionLinkCreate         = "account_link.create"
	AuditActionLinkRemove         = "account_link.remove"
)
