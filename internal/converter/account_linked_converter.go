package converter

import (
	"patient-health-api/internal/delivery/dto"
	"patient-health-api/internal/domain/entity"
)

// PatientToSummary converts a Patient entity to PatientSummaryResponse DTO
func PatientToSummary(patient *entity.Patient) *dto.PatientSummaryResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientSummaryResponse{
		ID:        patient.ID,
		AccountID: patient.AccountID,
		FullName:  patient.FullName(),
	}
}

// AccountLinkToResponse converts a PatientAccountLinked entity to AccountLinkResponse DTO
func AccountLinkToResponse(link *entity.PatientAccountLinked) *dto.AccountLinkResponse {
	if link == nil {
		return nil
	}

	resp := &dto.AccountLinkResponse{
		ID:              link.ID,
		RelationID:      link.RelationID,
		ParentPatientID: link.ParentPatientID,
		PatientLinkedID: link.PatientLinkedID,
		HasBloodLink:    link.HasBloodLink,
		ParentPatient:   PatientToSummary(link.ParentPatient),
		PatientLinked:   PatientToSummary(link.PatientLinked),
	}
	if link.Relation != nil {
		resp.Relation = link.Relation.Name
	}
	return resp
}

// AccountLinksToResponses converts a slice of PatientAccountLinked entities to slice of AccountLinkResponse DTOs
func AccountLinksToResponses(links []entity.PatientAccountLinked) []dto.AccountLinkResponse {
	responses := make([]dto.AccountLinkResponse, len(links))
	for i := range links {
		responses[i] = *AccountLinkToResponse(&links[i])
	}
	return responses
}

// AccountLinksToCheck reports the counterpart of every link around patientID.
func AccountLinksToCheck(patientID int64, links []entity.PatientAccountLinked) *dto.CheckAccountLinkedResponse {
	ids := make([]int64, 0, len(links))
	for i := range links {
		ids = append(ids, links[i].Counterpart(patientID))
	}

	return &dto.CheckAccountLinkedResponse{
		HasRelation:     len(ids) > 0,
		PatientLinkedID: ids,
	}
}
