package repository

import (
	"context"
	"errors"

	"patient-health-api/internal/domain/entity"
	domainRepo "patient-health-api/internal/domain/repository"

	"gorm.io/gorm"
)

type healthCoverageRepository struct{}

func NewHealthCoverageRepository() domainRepo.HealthCoverageRepository {
	return &healthCoverageRepository{}
}

func (r *healthCoverageRepository) Create(ctx context.Context, db *gorm.DB, coverage *entity.HealthCoverage) error {
	return db.WithContext(ctx).Create(coverage).Error
}

func (r *healthCoverageRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.HealthCoverage, error) {
	var coverage entity.HealthCoverage
	err := db.WithContext(ctx).Where("id = ?", id).First(&coverage).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coverage, nil
}

func (r *healthCoverageRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) ([]entity.HealthCoverage, error) {
	var coverages []entity.HealthCoverage
	err := db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("id").
		Find(&coverages).Error
	if err != nil {
		return nil, err
	}
	return coverages, nil
}

func (r *healthCoverageRepository) Update(ctx context.Context, db *gorm.DB, coverage *entity.HealthCoverage) error {
	return db.WithContext(ctx).Omit("Patient").Save(coverage).Error
}

func (r *healthCoverageRepository) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&entity.HealthCoverage{}).Error
}
