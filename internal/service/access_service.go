package service

import (
	"context"
	"errors"
	"fmt"

	"patient-health-api/internal/delivery/http/middleware"
	"patient-health-api/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

var (
	ErrUnauthenticated = errors.New("no authenticated account in request")
	ErrForbidden       = errors.New("account is not allowed to access this patient")
)

// AccessService decides whether the authenticated account may act on a
// patient's records. Admins may act on any patient, doctors may only read,
// and patients are limited to the record bound to their own account.
type AccessService interface {
	CheckPatientAccess(ctx context.Context, patient *entity.Patient) error
	CheckPatientReadAccess(ctx context.Context, patient *entity.Patient) error
	CheckAccountAccess(ctx context.Context, accountID string) error
	CheckAdminAccess(ctx context.Context) error
}

type accessService struct {
	log *logrus.Logger
}

func NewAccessService(log *logrus.Logger) AccessService {
	return &accessService{log: log}
}

func (s *accessService) CheckPatientAccess(ctx context.Context, patient *entity.Patient) error {
	return s.check(ctx, patient.AccountID, false)
}

func (s *accessService) CheckPatientReadAccess(ctx context.Context, patient *entity.Patient) error {
	return s.check(ctx, patient.AccountID, true)
}

func (s *accessService) CheckAccountAccess(ctx context.Context, accountID string) error {
	return s.check(ctx, accountID, false)
}

// CheckAdminAccess allows only admins, for operations spanning every patient.
func (s *accessService) CheckAdminAccess(ctx context.Context) error {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		return ErrUnauthenticated
	}
	role, ok := middleware.GetRoleFromContext(ctx)
	if !ok {
		return ErrUnauthenticated
	}
	if role == entity.RoleAdmin {
		return nil
	}

	s.log.Warnf("Admin access denied for account %s (%s)", accountID, role)
	return fmt.Errorf("%w: account %s", ErrForbidden, accountID)
}

func (s *accessService) check(ctx context.Context, ownerAccountID string, allowDoctor bool) error {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		return ErrUnauthenticated
	}
	role, ok := middleware.GetRoleFromContext(ctx)
	if !ok {
		return ErrUnauthenticated
	}

	switch role {
	case entity.RoleAdmin:
		return nil
	case entity.RoleDoctor:
		if allowDoctor {
			return nil
		}
	case entity.RolePatient:
		if accountID == ownerAccountID {
			return nil
		}
	}

	s.log.Warnf("Access denied for account %s (%s) on patient account %s", accountID, role, ownerAccountID)
	return fmt.Errorf("%w: account %s", ErrForbidden, accountID)
}
