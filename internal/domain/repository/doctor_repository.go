package repository

import (
	"context"

	"patient-health-api/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Doctor, error)
}
