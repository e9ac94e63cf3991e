package repository

import (
	"context"

	"patient-health-api/internal/domain/entity"

	"gorm.io/gorm"
)

type HealthProfessionalRepository interface {
	Create(ctx context.Context, db *gorm.DB, professional *entity.HealthProfessional) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.HealthProfessional, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.HealthProfessional, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) ([]entity.HealthProfessional, error)
	Update(ctx context.Context, db *gorm.DB, professional *entity.HealthProfessional) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
