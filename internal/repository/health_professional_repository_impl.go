package repository

import (
	"context"
	"errors"

	"patient-health-api/internal/domain/entity"
	domainRepo "patient-health-api/internal/domain/repository"

	"gorm.io/gorm"
)

type healthProfessionalRepository struct{}

func NewHealthProfessionalRepository() domainRepo.HealthProfessionalRepository {
	return &healthProfessionalRepository{}
}

func (r *healthProfessionalRepository) Create(ctx context.Context, db *gorm.DB, professional *entity.HealthProfessional) error {
	return db.WithContext(ctx).Omit("Doctor", "Patient").Create(professional).Error
}

func (r *healthProfessionalRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.HealthProfessional, error) {
	var professional entity.HealthProfessional
	err := db.WithContext(ctx).Preload("Doctor").Where("id = ?", id).First(&professional).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &professional, nil
}

func (r *healthProfessionalRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.HealthProfessional, error) {
	var professionals []entity.HealthProfessional
	err := db.WithContext(ctx).Preload("Doctor").Order("id").Find(&professionals).Error
	if err != nil {
		return nil, err
	}
	return professionals, nil
}

func (r *healthProfessionalRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) ([]entity.HealthProfessional, error) {
	var professionals []entity.HealthProfessional
	err := db.WithContext(ctx).
		Preload("Doctor").
		Where("patient_id = ?", patientID).
		Order("id").
		Find(&professionals).Error
	if err != nil {
		return nil, err
	}
	return professionals, nil
}

func (r *healthProfessionalRepository) Update(ctx context.Context, db *gorm.DB, professional *entity.HealthProfessional) error {
	return db.WithContext(ctx).Omit("Doctor", "Patient").Save(professional).Error
}

func (r *healthProfessionalRepository) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&entity.HealthProfessional{}).Error
}
