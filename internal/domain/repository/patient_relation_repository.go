package repository

import (
	"context"
	"time"

	"patient-health-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRelationRepository interface {
	FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.PatientRelation, error)
}

type RelationRepository interface {
	Create(ctx context.Context, db *gorm.DB, relation *entity.Relation) error
	// EndBetween closes every open relation entry between a and b.
	EndBetween(ctx context.Context, db *gorm.DB, a, b int64, endedAt time.Time) error
}
