package entity

import "time"

// Patient is the patient aggregate. Coverages, professional contacts and
// account links are owned through their patient_id / parent_patient_id keys.
type Patient struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountID string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"account_id"`
	FirstName string    `gorm:"type:varchar(100)" json:"first_name,omitempty"`
	LastName  string    `gorm:"type:varchar(100)" json:"last_name,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// FullName returns "First Last", trimmed when either part is empty.
func (p *Patient) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
