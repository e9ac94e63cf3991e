package converter

import (
	"patient-health-api/internal/delivery/dto"
	"patient-health-api/internal/domain/entity"
)

// DoctorToSummary converts a Doctor entity to DoctorSummaryResponse DTO
func DoctorToSummary(doctor *entity.Doctor) *dto.DoctorSummaryResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorSummaryResponse{
		ID:          doctor.ID,
		FirstName:   doctor.FirstName,
		LastName:    doctor.LastName,
		MobilePhone: doctor.MobilePhone,
		Speciality:  doctor.Speciality,
	}
}

// HealthProfessionalToResponse converts a HealthProfessional entity to HealthProfessionalResponse DTO
func HealthProfessionalToResponse(professional *entity.HealthProfessional) *dto.HealthProfessionalResponse {
	if professional == nil {
		return nil
	}

	return &dto.HealthProfessionalResponse{
		ID:                professional.ID,
		DoctorID:          professional.DoctorID,
		Doctor:            DoctorToSummary(professional.Doctor),
		Name:              professional.Name,
		GooglePlaceID:     professional.GooglePlaceID,
		FranceHealthProID: professional.FranceHealthProID,
		Speciality:        professional.Speciality,
		PhoneNumber1:      professional.PhoneNumber1,
		PhoneLabel1:       professional.PhoneLabel1,
		PhoneNumber2:      professional.PhoneNumber2,
		PhoneLabel2:       professional.PhoneLabel2,
		Comment:           professional.Comment,
		PatientID:         professional.PatientID,
		CreatedAt:         professional.CreatedAt,
		UpdatedAt:         professional.UpdatedAt,
	}
}

// HealthProfessionalsToResponses converts a slice of HealthProfessional entities to slice of HealthProfessionalResponse DTOs
func HealthProfessionalsToResponses(professionals []entity.HealthProfessional) []dto.HealthProfessionalResponse {
	responses := make([]dto.HealthProfessionalResponse, len(professionals))
	for i := range professionals {
		responses[i] = *HealthProfessionalToResponse(&professionals[i])
	}
	return responses
}
