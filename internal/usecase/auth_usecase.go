package usecase

import (
	"context"
	"errors"

	"patient-health-api/internal/converter"
	"patient-health-api/internal/delivery/dto"
	"patient-health-api/internal/delivery/http/middleware"
	"patient-health-api/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
)

type AuthUsecase interface {
	GetCurrentAccount(ctx context.Context) (*dto.AccountResponse, error)
	Logout(ctx context.Context) error
}

type authUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	redisClient *redis.Client
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	redisClient *redis.Client,
) AuthUsecase {
	return &authUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
		redisClient: redisClient,
	}
}

// GetCurrentAccount describes the token's account and, when one is bound to
// it, the patient record.
func (u *authUsecase) GetCurrentAccount(ctx context.Context) (*dto.AccountResponse, error) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		return nil, ErrInvalidToken
	}
	role, _ := middleware.GetRoleFromContext(ctx)

	patient, err := u.patientRepo.FindByAccountID(ctx, u.db.WithContext(ctx), accountID)
	if err != nil {
		u.log.Warnf("Failed to find patient for account %s: %+v", accountID, err)
		return nil, err
	}

	return &dto.AccountResponse{
		AccountID: accountID,
		Role:      role,
		Patient:   converter.PatientToSummary(patient),
	}, nil
}

// Logout denylists the presented token until it would have expired anyway.
func (u *authUsecase) Logout(ctx context.Context) error {
	tokenID, ok := middleware.GetTokenIDFromContext(ctx)
	if !ok || tokenID == "" {
		return ErrInvalidToken
	}

	ttl, ok := middleware.GetTokenExpiryFromContext(ctx)
	if !ok || ttl <= 0 {
		return ErrInvalidToken
	}

	if err := u.redisClient.Set(ctx, middleware.RevokedTokenKey(tokenID), "revoked", ttl).Err(); err != nil {
		u.log.Warnf("Failed to revoke token in Redis: %+v", err)
		return err
	}

	return nil
}
