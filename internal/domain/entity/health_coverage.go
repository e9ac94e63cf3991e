package entity

import "time"

// CoverageType is the numeric coverage kind stored in health_coverages.type
type CoverageType int

const (
	CoverageTypeMutual       CoverageType = 0
	CoverageTypeSupplemental CoverageType = 1
)

// Coverage type labels, stored in health_coverages.stype
const (
	CoverageLabelMutual       = "MUTUAL"
	CoverageLabelSupplemental = "SUPPLEMENTAL"
)

// String returns the label of a known type, or "" otherwise.
func (t CoverageType) String() string {
	switch t {
	case CoverageTypeMutual:
		return CoverageLabelMutual
	case CoverageTypeSupplemental:
		return CoverageLabelSupplemental
	}
	return ""
}

// ParseCoverageType maps a label to its type. ok is false for unknown labels.
func ParseCoverageType(label string) (CoverageType, bool) {
	switch label {
	case CoverageLabelMutual:
		return CoverageTypeMutual, true
	case CoverageLabelSupplemental:
		return CoverageTypeSupplemental, true
	}
	return CoverageTypeSupplemental, false
}

// CoverageTypeFromLabel derives the stored type from the label.
// Only "MUTUAL" maps to CoverageTypeMutual; every other label is supplemental.
func CoverageTypeFromLabel(label string) CoverageType {
	t, _ := ParseCoverageType(label)
	return t
}

// HealthCoverage is an insurance policy attached to a patient
type HealthCoverage struct {
	ID             int64        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           *string      `gorm:"type:varchar(100)" json:"name"`
	IdentityNumber *string      `gorm:"type:varchar(100)" json:"identity_number"`
	Type           CoverageType `gorm:"not null" json:"type"`
	SType          string       `gorm:"column:stype;type:varchar(20);not null" json:"stype"`
	PatientID      int64        `gorm:"not null;index" json:"patient_id"`
	CreatedAt      time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"-"`
}

func (HealthCoverage) TableName() string {
	return "health_coverages"
}

// SetLabel sets the label and re-derives the numeric type from it.
func (c *HealthCoverage) SetLabel(label string) {
	c.SType = label
	c.Type = CoverageTypeFromLabel(label)
}

// IsOwnedBy reports whether the coverage belongs to the given patient.
func (c *HealthCoverage) IsOwnedBy(patientID int64) bool {
	return c.PatientID == patientID
}
