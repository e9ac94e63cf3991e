package repository

import (
	"context"

	"patient-health-api/internal/domain/entity"

	"gorm.io/gorm"
)

type HealthCoverageRepository interface {
	Create(ctx context.Context, db *gorm.DB, coverage *entity.HealthCoverage) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.HealthCoverage, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) ([]entity.HealthCoverage, error)
	Update(ctx context.Context, db *gorm.DB, coverage *entity.HealthCoverage) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
