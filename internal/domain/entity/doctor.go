package entity

import "time"

// Doctor is a canonical doctor-registry entry that a health professional
// contact may reference.
type Doctor struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName   string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName    string    `gorm:"type:varchar(100);not null" json:"last_name"`
	MobilePhone *string   `gorm:"type:varchar(40)" json:"mobile_phone,omitempty"`
	Speciality  *string   `gorm:"type:varchar(100)" json:"speciality,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// DisplayName is the name copied onto a professional contact.
func (d *Doctor) DisplayName() string {
	return d.FirstName + " " + d.LastName
}
