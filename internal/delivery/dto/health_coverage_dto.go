package dto

import "time"

// Request DTOs

type CreateHealthCoverageRequest struct {
	Type           string  `json:"type" validate:"required,oneof=MUTUAL SUPPLEMENTAL"`
	Name           *string `json:"name" validate:"omitempty,max=100"`
	IdentityNumber *string `json:"identity_number" validate:"omitempty,max=100"`
}

// UpdateHealthCoverageRequest is a partial update: nil fields keep their value.
type UpdateHealthCoverageRequest struct {
	Type           *string `json:"type" validate:"omitempty,oneof=MUTUAL SUPPLEMENTAL"`
	Name           *string `json:"name" validate:"omitempty,max=100"`
	IdentityNumber *string `json:"identity_number" validate:"omitempty,max=100"`
}

// Response DTOs

type HealthCoverageResponse struct {
	ID             int64     `json:"id"`
	Name           *string   `json:"name"`
	IdentityNumber *string   `json:"identity_number"`
	Type           int       `json:"type"`
	SType          string    `json:"stype"`
	PatientID      int64     `json:"patient_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type HealthCoverageListResponse struct {
	Mutuals       []HealthCoverageResponse `json:"mutuals"`
	Supplementals []HealthCoverageResponse `json:"supplementals"`
}
