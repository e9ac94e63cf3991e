package repository

import (
	"context"

	"patient-health-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Patient, error)
	FindByAccountID(ctx context.Context, db *gorm.DB, accountID string) (*entity.Patient, error)
}
