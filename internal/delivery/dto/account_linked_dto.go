package dto

// Request DTOs

// CreateAccountLinkRequest links two patients identified by their account ids.
type CreateAccountLinkRequest struct {
	IDPatient       string `json:"idPatient" validate:"required,max=64"`
	IDPatientLinked string `json:"idPatientLinked" validate:"required,max=64,nefield=IDPatient"`
	PatientRelation string `json:"patientRelation" validate:"required,max=50"`
	HasBloodLink    *bool  `json:"hasBloodLink"`
}

// Response DTOs

type PatientSummaryResponse struct {
	ID        int64  `json:"id"`
	AccountID string `json:"account_id"`
	FullName  string `json:"full_name"`
}

type AccountLinkResponse struct {
	ID              int64                   `json:"id"`
	RelationID      int64                   `json:"relation_id"`
	Relation        string                  `json:"relation,omitempty"`
	ParentPatientID int64                   `json:"parent_patient_id"`
	PatientLinkedID int64                   `json:"patient_linked_id"`
	HasBloodLink    *bool                   `json:"has_blood_link"`
	ParentPatient   *PatientSummaryResponse `json:"parent_patient,omitempty"`
	PatientLinked   *PatientSummaryResponse `json:"patient_linked,omitempty"`
}

type AccountLinkListResponse struct {
	Links []AccountLinkResponse `json:"links"`
	Total int                   `json:"total"`
}

// CheckAccountLinkedResponse keeps the field names the mobile clients read.
type CheckAccountLinkedResponse struct {
	HasRelation     bool    `json:"hasRelation"`
	PatientLinkedID []int64 `json:"patientLinkedId"`
}
