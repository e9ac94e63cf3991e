package repository

import (
	"context"
	"errors"
	"time"

	"patient-health-api/internal/domain/entity"
	domainRepo "patient-health-api/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRelationRepository struct{}

func NewPatientRelationRepository() domainRepo.PatientRelationRepository {
	return &patientRelationRepository{}
}

func (r *patientRelationRepository) FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.PatientRelation, error) {
	var relation entity.PatientRelation
	err := db.WithContext(ctx).Where("name = ?", name).First(&relation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &relation, nil
}

type relationRepository struct{}

func NewRelationRepository() domainRepo.RelationRepository {
	return &relationRepository{}
}

func (r *relationRepository) Create(ctx context.Context, db *gorm.DB, relation *entity.Relation) error {
	return db.WithContext(ctx).Create(relation).Error
}

func (r *relationRepository) EndBetween(ctx context.Context, db *gorm.DB, a, b int64, endedAt time.Time) error {
	return db.WithContext(ctx).
		Model(&entity.Relation{}).
		Where("ended_at IS NULL AND ((patient_id = ? AND related_patient_id = ?) OR (patient_id = ? AND related_patient_id = ?))", a, b, b, a).
		Update("ended_at", endedAt).Error
}
