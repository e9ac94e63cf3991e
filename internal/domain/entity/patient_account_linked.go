package entity

import "gorm.io/gorm"

// PatientAccountLinked is the edge between two patient accounts. The edge is
// stored once, from ParentPatientID to PatientLinkedID, and looked up from
// either side through the unordered pair key (PairLow, PairHigh).
type PatientAccountLinked struct {
	ID              int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	RelationID      int64 `gorm:"not null;index" json:"relation_id"`
	PatientLinkedID int64 `gorm:"not null;index" json:"patient_linked_id"`
	ParentPatientID int64 `gorm:"not null;index" json:"parent_patient_id"`
	HasBloodLink    *bool `json:"has_blood_link"`
	PairLow         int64 `gorm:"not null;uniqueIndex:idx_patient_account_linked_pair" json:"-"`
	PairHigh        int64 `gorm:"not null;uniqueIndex:idx_patient_account_linked_pair" json:"-"`

	// Relationships
	Relation      *PatientRelation `gorm:"foreignKey:RelationID" json:"relation,omitempty"`
	PatientLinked *Patient         `gorm:"foreignKey:PatientLinkedID;constraint:OnDelete:CASCADE" json:"patient_linked,omitempty"`
	ParentPatient *Patient         `gorm:"foreignKey:ParentPatientID;constraint:OnDelete:CASCADE" json:"parent_patient,omitempty"`
}

func (PatientAccountLinked) TableName() string {
	return "patient_account_linked"
}

// PairKey orders two patient ids so that (a, b) and (b, a) share one key.
func PairKey(a, b int64) (low, high int64) {
	if a <= b {
		return a, b
	}
	return b, a
}

// BeforeSave keeps the pair key in sync with the two endpoints.
func (l *PatientAccountLinked) BeforeSave(tx *gorm.DB) error {
	l.PairLow, l.PairHigh = PairKey(l.ParentPatientID, l.PatientLinkedID)
	return nil
}

// Counterpart returns the id on the other side of the edge from patientID.
func (l *PatientAccountLinked) Counterpart(patientID int64) int64 {
	if l.ParentPatientID == patientID {
		return l.PatientLinkedID
	}
	return l.ParentPatientID
}
