package entity

// AuditLogFilter narrows an audit trail listing. Zero fields are ignored.
type AuditLogFilter struct {
	AccountID  string
	EntityName string
	EntityID   int64
	Action     string
}
