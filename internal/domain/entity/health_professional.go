package entity

import "time"

// HealthProfessional is a patient's contact card for a health professional.
// It is stored in health_professional_contacts.
type HealthProfessional struct {
	ID                int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID          *int64    `gorm:"index" json:"doctor_id,omitempty"`
	Name              *string   `gorm:"type:varchar(50)" json:"name"`
	GooglePlaceID     *string   `gorm:"type:varchar(255)" json:"google_place_id"`
	FranceHealthProID *int64    `gorm:"column:france_health_professional_id" json:"france_health_professional_id"`
	Speciality        *string   `gorm:"type:varchar(100)" json:"speciality"`
	PhoneNumber1      *string   `gorm:"column:phone_number_1;type:varchar(40)" json:"phone_number_1"`
	PhoneLabel1       *string   `gorm:"column:phone_label_1;type:varchar(255)" json:"phone_label_1"`
	PhoneNumber2      *string   `gorm:"column:phone_number_2;type:varchar(40)" json:"phone_number_2"`
	PhoneLabel2       *string   `gorm:"column:phone_label_2;type:varchar(40)" json:"phone_label_2"`
	Comment           *string   `gorm:"type:varchar(255)" json:"comment"`
	PatientID         int64     `gorm:"not null;index" json:"patient_id"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"doctor,omitempty"`
	Patient *Patient `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"-"`
}

func (HealthProfessional) TableName() string {
	return "health_professional_contacts"
}

// IsOwnedBy reports whether the contact belongs to the given patient.
func (p *HealthProfessional) IsOwnedBy(patientID int64) bool {
	return p.PatientID == patientID
}

// AttachDoctor links the registry entry and copies its name onto the contact.
// The caller decides how the primary phone is overwritten.
func (p *HealthProfessional) AttachDoctor(doctor *Doctor) {
	name := doctor.DisplayName()
	p.Doctor = doctor
	p.DoctorID = &doctor.ID
	p.Name = &name
}
