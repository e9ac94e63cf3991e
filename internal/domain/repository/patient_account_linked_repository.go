package repository

import (
	"context"

	"patient-health-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientAccountLinkedRepository interface {
	Create(ctx context.Context, db *gorm.DB, link *entity.PatientAccountLinked) error
	// FindByPatientID returns the links where the patient is on either side.
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) ([]entity.PatientAccountLinked, error)
	// FindByPair returns the link between a and b regardless of direction.
	FindByPair(ctx context.Context, db *gorm.DB, a, b int64) (*entity.PatientAccountLinked, error)
	DeleteByPair(ctx context.Context, db *gorm.DB, a, b int64) (int64, error)
}
