package repository

import (
	"context"
	"errors"

	"patient-health-api/internal/domain/entity"
	domainRepo "patient-health-api/internal/domain/repository"

	"gorm.io/gorm"
)

type patientAccountLinkedRepository struct{}

func NewPatientAccountLinkedRepository() domainRepo.PatientAccountLinkedRepository {
	return &patientAccountLinkedRepository{}
}

func (r *patientAccountLinkedRepository) Create(ctx context.Context, db *gorm.DB, link *entity.PatientAccountLinked) error {
	return db.WithContext(ctx).Omit("Relation", "PatientLinked", "ParentPatient").Create(link).Error
}

func (r *patientAccountLinkedRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) ([]entity.PatientAccountLinked, error) {
	var links []entity.PatientAccountLinked
	err := db.WithContext(ctx).
		Preload("Relation").
		Preload("ParentPatient").
		Preload("PatientLinked").
		Where("parent_patient_id = ? OR patient_linked_id = ?", patientID, patientID).
		Order("id").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *patientAccountLinkedRepository) FindByPair(ctx context.Context, db *gorm.DB, a, b int64) (*entity.PatientAccountLinked, error) {
	low, high := entity.PairKey(a, b)

	var link entity.PatientAccountLinked
	err := db.WithContext(ctx).
		Preload("Relation").
		Where("pair_low = ? AND pair_high = ?", low, high).
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

// DeleteByPair removes every edge between a and b and returns the number of
// rows removed.
func (r *patientAccountLinkedRepository) DeleteByPair(ctx context.Context, db *gorm.DB, a, b int64) (int64, error) {
	low, high := entity.PairKey(a, b)
	result := db.WithContext(ctx).
		Where("pair_low = ? AND pair_high = ?", low, high).
		Delete(&entity.PatientAccountLinked{})
	return result.RowsAffected, result.Error
}
