package usecase

import (
	"context"
	"errors"

	"patient-health-api/internal/converter"
	"patient-health-api/internal/delivery/dto"
	"patient-health-api/internal/domain/entity"
	"patient-health-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAuditLogNotFound = errors.New("audit log not found")
)

type AuditLogUsecase interface {
	GetAllAuditLogs(ctx context.Context, req *dto.AuditLogListRequest) (*dto.AuditLogListResponse, error)
	GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

// GetAllAuditLogs lists the trail, optionally narrowed to one account, one
// entity (and entity id) or one action. An empty result is a success.
func (u *auditLogUsecase) GetAllAuditLogs(ctx context.Context, req *dto.AuditLogListRequest) (*dto.AuditLogListResponse, error) {
	if req == nil {
		req = &dto.AuditLogListRequest{}
	}
	filter := &entity.AuditLogFilter{
		AccountID:  req.AccountID,
		EntityName: req.Entity,
		EntityID:   req.EntityID,
		Action:     req.Action,
	}

	logs, err := u.auditLogRepo.FindAll(ctx, u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.WithFields(logrus.Fields{
			"account_id": req.AccountID,
			"entity":     req.Entity,
			"action":     req.Action,
		}).Warnf("Failed to find audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}

func (u *auditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	auditLog, err := u.auditLogRepo.FindByID(ctx, u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find audit log %d: %+v", id, err)
		return nil, err
	}
	if auditLog == nil {
		return nil, ErrAuditLogNotFound
	}

	return converter.AuditLogToResponse(auditLog), nil
}
