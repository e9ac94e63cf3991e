package dto

import "time"

// Request DTOs

type CreateHealthProfessionalRequest struct {
	PatientID         int64   `json:"patientId" validate:"required,gt=0"`
	DoctorID          *int64  `json:"doctorId" validate:"omitempty,gte=0"`
	Speciality        *string `json:"speciality" validate:"omitempty,max=100"`
	FranceHealthProID *int64  `json:"franceHealthProfessionalId" validate:"omitempty,gte=0"`
	Name              *string `json:"name" validate:"omitempty,max=50"`
	PhoneNumber1      *string `json:"phoneNumber1" validate:"omitempty,max=40"`
	PhoneLabel1       *string `json:"phoneLabel1" validate:"omitempty,max=255"`
	PhoneNumber2      *string `json:"phoneNumber2" validate:"omitempty,max=40"`
	PhoneLabel2       *string `json:"phoneLabel2" validate:"omitempty,max=40"`
	GooglePlaceID     *string `json:"googlePlaceId" validate:"omitempty,max=255"`
	Comment           *string `json:"comment" validate:"omitempty,max=255"`
}

// UpdateHealthProfessionalRequest is a partial update: nil fields keep their
// value. A non-nil DoctorID, zero included, re-resolves the doctor.
type UpdateHealthProfessionalRequest struct {
	PatientID         int64   `json:"patientId" validate:"required,gt=0"`
	DoctorID          *int64  `json:"doctorId" validate:"omitempty,gte=0"`
	Speciality        *string `json:"speciality" validate:"omitempty,max=100"`
	FranceHealthProID *int64  `json:"franceHealthProfessionalId" validate:"omitempty,gte=0"`
	Name              *string `json:"name" validate:"omitempty,max=50"`
	PhoneNumber1      *string `json:"phoneNumber1" validate:"omitempty,max=40"`
	PhoneLabel1       *string `json:"phoneLabel1" validate:"omitempty,max=255"`
	PhoneNumber2      *string `json:"phoneNumber2" validate:"omitempty,max=40"`
	PhoneLabel2       *string `json:"phoneLabel2" validate:"omitempty,max=40"`
	GooglePlaceID     *string `json:"googlePlaceId" validate:"omitempty,max=255"`
	Comment           *string `json:"comment" validate:"omitempty,max=255"`
}

// Response DTOs

type DoctorSummaryResponse struct {
	ID          int64   `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	MobilePhone *string `json:"mobile_phone"`
	Speciality  *string `json:"speciality"`
}

type HealthProfessionalResponse struct {
	ID                int64                  `json:"id"`
	DoctorID          *int64                 `json:"doctor_id"`
	Doctor            *DoctorSummaryResponse `json:"doctor,omitempty"`
	Name              *string                `json:"name"`
	GooglePlaceID     *string                `json:"google_place_id"`
	FranceHealthProID *int64                 `json:"france_health_professional_id"`
	Speciality        *string                `json:"speciality"`
	PhoneNumber1      *string                `json:"phone_number_1"`
	PhoneLabel1       *string                `json:"phone_label_1"`
	PhoneNumber2      *string                `json:"phone_number_2"`
	PhoneLabel2       *string                `json:"phone_label_2"`
	Comment           *string                `json:"comment"`
	PatientID         int64                  `json:"patient_id"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

type HealthProfessionalListResponse struct {
	Professionals []HealthProfessionalResponse `json:"professionals"`
	Total         int                          `json:"total"`
}
