package entity

import "time"

// Relation is the generic, timestamped relation entry between two patients
// recorded next to every account link.
type Relation struct {
	ID               int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID        int64      `gorm:"not null;index" json:"patient_id"`
	RelatedPatientID int64      `gorm:"not null;index" json:"related_patient_id"`
	StartedAt        time.Time  `gorm:"not null" json:"started_at"`
	EndedAt          *time.Time `json:"ended_at,omitempty"`
}

func (Relation) TableName() string {
	return "relations"
}
