package converter

import (
	"testing"

	"patient-health-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestHealthCoveragesToPartition(t *testing.T) {
	coverages := []entity.HealthCoverage{
		{ID: 1, Type: entity.CoverageTypeMutual, SType: entity.CoverageLabelMutual, PatientID: 3},
		{ID: 2, Type: entity.CoverageTypeSupplemental, SType: entity.CoverageLabelSupplemental, PatientID: 3},
		{ID: 3, Type: entity.CoverageTypeMutual, SType: entity.CoverageLabelMutual, PatientID: 3},
	}

	result := HealthCoveragesToPartition(coverages)

	require.Len(t, result.Mutuals, 2)
	require.Len(t, result.Supplementals, 1)
	assert.Equal(t, int64(1), result.Mutuals[0].ID)
	assert.Equal(t, int64(3), result.Mutuals[1].ID)
	assert.Equal(t, int64(2), result.Supplementals[0].ID)
	assert.Equal(t, 1, result.Supplementals[0].Type)
}

func TestHealthCoveragesToPartition_EmptyListsNotNil(t *testing.T) {
	result := HealthCoveragesToPartition(nil)
	assert.NotNil(t, result.Mutuals)
	assert.NotNil(t, result.Supplementals)
}

func TestHealthProfessionalToResponse_WithDoctor(t *testing.T) {
	doctorID := int64(9)
	professional := &entity.HealthProfessional{
		ID:           4,
		DoctorID:     &doctorID,
		Name:         strPtr("Ada Lovelace"),
		PhoneNumber1: strPtr("999"),
		PatientID:    2,
		Doctor:       &entity.Doctor{ID: 9, FirstName: "Ada", LastName: "Lovelace", MobilePhone: strPtr("999")},
	}

	resp := HealthProfessionalToResponse(professional)

	require.NotNil(t, resp.Doctor)
	assert.Equal(t, int64(9), resp.Doctor.ID)
	assert.Equal(t, "Ada Lovelace", *resp.Name)
	assert.Equal(t, "999", *resp.PhoneNumber1)
	assert.Nil(t, HealthProfessionalToResponse(nil))
}

func TestAccountLinksToCheck(t *testing.T) {
	links := []entity.PatientAccountLinked{
		{ParentPatientID: 1, PatientLinkedID: 2},
		{ParentPatientID: 3, PatientLinkedID: 1},
	}

	check := AccountLinksToCheck(1, links)
	assert.True(t, check.HasRelation)
	assert.Equal(t, []int64{2, 3}, check.PatientLinkedID)

	empty := AccountLinksToCheck(1, nil)
	assert.False(t, empty.HasRelation)
	assert.Empty(t, empty.PatientLinkedID)
}

func TestAccountLinkToResponse(t *testing.T) {
	link := &entity.PatientAccountLinked{
		ID:              5,
		RelationID:      2,
		ParentPatientID: 1,
		PatientLinkedID: 2,
		Relation:        &entity.PatientRelation{ID: 2, Name: entity.RelationChild},
		ParentPatient:   &entity.Patient{ID: 1, AccountID: "acc-1", FirstName: "Jane", LastName: "Doe"},
	}

	resp := AccountLinkToResponse(link)
	assert.Equal(t, entity.RelationChild, resp.Relation)
	assert.Equal(t, "Jane Doe", resp.ParentPatient.FullName)
	assert.Nil(t, resp.PatientLinked)
}
