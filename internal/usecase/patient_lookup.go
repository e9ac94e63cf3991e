package usecase

import (
	"context"
	"fmt"

	"patient-health-api/internal/domain/entity"
	"patient-health-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func findPatient(ctx context.Context, db *gorm.DB, log *logrus.Logger, repo repository.PatientRepository, id int64) (*entity.Patient, error) {
	patient, err := repo.FindByID(ctx, db, id)
	if err != nil {
		log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, fmt.Errorf("%w: id %d", ErrPatientNotFound, id)
	}
	return patient, nil
}

func findPatientByAccount(ctx context.Context, db *gorm.DB, log *logrus.Logger, repo repository.PatientRepository, accountID string) (*entity.Patient, error) {
	patient, err := repo.FindByAccountID(ctx, db, accountID)
	if err != nil {
		log.Warnf("Failed to find patient for account %s: %+v", accountID, err)
		return nil, err
	}
	if patient == nil {
		return nil, fmt.Errorf("%w: account %s", ErrPatientNotFound, accountID)
	}
	return patient, nil
}
