package repository

import (
	"context"
	"errors"

	"patient-health-api/internal/domain/entity"
	domainRepo "patient-health-api/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error {
	return db.WithContext(ctx).Create(log).Error
}

// FindAll returns the trail newest first, narrowed by the optional filter.
func (r *auditLogRepository) FindAll(ctx context.Context, db *gorm.DB, filter *entity.AuditLogFilter) ([]entity.AuditLog, error) {
	var logs []entity.AuditLog
	query := db.WithContext(ctx)

	if filter != nil {
		if filter.AccountID != "" {
			query = query.Where("account_id = ?", filter.AccountID)
		}
		if filter.EntityName != "" {
			query = query.Where("entity_name = ?", filter.EntityName)
		}
		if filter.EntityID != 0 {
			query = query.Where("entity_id = ?", filter.EntityID)
		}
		if filter.Action != "" {
			query = query.Where("action = ?", filter.Action)
		}
	}

	err := query.Order("created_at DESC, id DESC").Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *auditLogRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.AuditLog, error) {
	var log entity.AuditLog
	err := db.WithContext(ctx).Where("id = ?", id).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}
