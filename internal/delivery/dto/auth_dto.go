package dto

// Response DTOs

type AccountResponse struct {
	AccountID string                  `json:"account_id"`
	Role      string                  `json:"role"`
	Patient   *PatientSummaryResponse `json:"patient,omitempty"`
}

type HealthStatusResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
