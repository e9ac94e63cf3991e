package usecase

import (
	"context"
	"errors"
	"fmt"

	"patient-health-api/internal/converter"
	"patient-health-api/internal/delivery/dto"
	"patient-health-api/internal/domain/entity"
	"patient-health-api/internal/domain/repository"
	"patient-health-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrCoverageNotFound        = errors.New("health coverage not found")
	ErrCoverageListNotFound    = errors.New("no health coverage found for patient")
	ErrCoverageNotMatchPatient = errors.New("health coverage does not belong to patient")
)

const auditEntityCoverage = "health_coverage"

type HealthCoverageUsecase interface {
	ListCoverages(ctx context.Context, patientID int64) (*dto.HealthCoverageListResponse, error)
	GetCoverage(ctx context.Context, id int64) (*dto.HealthCoverageResponse, error)
	CreateCoverage(ctx context.Context, patientID int64, req *dto.CreateHealthCoverageRequest) (*dto.HealthCoverageResponse, error)
	UpdateCoverage(ctx context.Context, id, patientID int64, req *dto.UpdateHealthCoverageRequest) (*dto.HealthCoverageResponse, error)
	DeleteCoverage(ctx context.Context, id, patientID int64) (bool, error)
}

type healthCoverageUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	coverageRepo  repository.HealthCoverageRepository
	patientRepo   repository.PatientRepository
	accessService service.AccessService
	auditService  service.AuditService
}

func NewHealthCoverageUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	coverageRepo repository.HealthCoverageRepository,
	patientRepo repository.PatientRepository,
	accessService service.AccessService,
	auditService service.AuditService,
) HealthCoverageUsecase {
	return &healthCoverageUsecase{
		db:            db,
		log:           log,
		coverageRepo:  coverageRepo,
		patientRepo:   patientRepo,
		accessService: accessService,
		auditService:  auditService,
	}
}

// ListCoverages returns the patient's coverages split by type. A patient
// without any coverage is reported as ErrCoverageListNotFound.
func (u *healthCoverageUsecase) ListCoverages(ctx context.Context, patientID int64) (*dto.HealthCoverageListResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.findPatient(ctx, db, patientID)
	if err != nil {
		return nil, err
	}
	if err := u.accessService.CheckPatientAccess(ctx, patient); err != nil {
		return nil, err
	}

	coverages, err := u.coverageRepo.FindByPatientID(ctx, db, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find health coverages for patient %d: %+v", patient.ID, err)
		return nil, err
	}
	if len(coverages) == 0 {
		return nil, fmt.Errorf("%w: patient %d", ErrCoverageListNotFound, patient.ID)
	}

	return converter.HealthCoveragesToPartition(coverages), nil
}

func (u *healthCoverageUsecase) GetCoverage(ctx context.Context, id int64) (*dto.HealthCoverageResponse, error) {
	db := u.db.WithContext(ctx)

	coverage, err := u.findCoverage(ctx, db, id)
	if err != nil {
		return nil, err
	}

	patient, err := u.findPatient(ctx, db, coverage.PatientID)
	if err != nil {
		return nil, err
	}
	if err := u.accessService.CheckPatientAccess(ctx, patient); err != nil {
		return nil, err
	}

	return converter.HealthCoverageToResponse(coverage), nil
}

func (u *healthCoverageUsecase) CreateCoverage(ctx context.Context, patientID int64, req *dto.CreateHealthCoverageRequest) (*dto.HealthCoverageResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.findPatient(ctx, tx, patientID)
	if err != nil {
		return nil, err
	}
	if err := u.accessService.CheckPatientAccess(ctx, patient); err != nil {
		return nil, err
	}

	coverage := &entity.HealthCoverage{
		Name:           req.Name,
		IdentityNumber: req.IdentityNumber,
		PatientID:      patient.ID,
	}
	coverage.SetLabel(req.Type)

	if err := u.coverageRepo.Create(ctx, tx, coverage); err != nil {
		u.log.Warnf("Failed to create health coverage: %+v", err)
		return nil, err
	}

	resp := converter.HealthCoverageToResponse(coverage)
	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionCoverageCreate, auditEntityCoverage, coverage.ID, resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

// UpdateCoverage overwrites only the fields present in req. The numeric type
// is always re-derived from the resulting label.
func (u *healthCoverageUsecase) UpdateCoverage(ctx context.Context, id, patientID int64, req *dto.UpdateHealthCoverageRequest) (*dto.HealthCoverageResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.findPatient(ctx, tx, patientID)
	if err != nil {
		return nil, err
	}
	if err := u.accessService.CheckPatientAccess(ctx, patient); err != nil {
		return nil, err
	}

	coverage, err := u.findCoverage(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if !coverage.IsOwnedBy(patient.ID) {
		u.log.Warnf("Health coverage %d does not belong to patient %d", id, patient.ID)
		return nil, fmt.Errorf("%w: health coverage %d, patient %d", ErrCoverageNotMatchPatient, id, patient.ID)
	}

	oldValue := converter.HealthCoverageToResponse(coverage)

	label := coverage.SType
	if req.Type != nil {
		label = *req.Type
	}
	coverage.SetLabel(label)
	if req.Name != nil {
		coverage.Name = req.Name
	}
	if req.IdentityNumber != nil {
		coverage.IdentityNumber = req.IdentityNumber
	}

	if err := u.coverageRepo.Update(ctx, tx, coverage); err != nil {
		u.log.Warnf("Failed to update health coverage %d: %+v", id, err)
		return nil, err
	}

	resp := converter.HealthCoverageToResponse(coverage)
	if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionCoverageUpdate, auditEntityCoverage, coverage.ID, oldValue, resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

// DeleteCoverage removes the coverage and reports whether a re-read confirms
// that it is gone.
func (u *healthCoverageUsecase) DeleteCoverage(ctx context.Context, id, patientID int64) (bool, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.findPatient(ctx, tx, patientID)
	if err != nil {
		return false, err
	}
	if err := u.accessService.CheckPatientAccess(ctx, patient); err != nil {
		return false, err
	}

	coverage, err := u.findCoverage(ctx, tx, id)
	if err != nil {
		return false, err
	}
	if !coverage.IsOwnedBy(patient.ID) {
		u.log.Warnf("Health coverage %d does not belong to patient %d", id, patient.ID)
		return false, fmt.Errorf("%w: health coverage %d, patient %d", ErrCoverageNotMatchPatient, id, patient.ID)
	}

	if err := u.coverageRepo.Delete(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete health coverage %d: %+v", id, err)
		return false, err
	}

	remaining, err := u.coverageRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to confirm deletion of health coverage %d: %+v", id, err)
		return false, err
	}
	if remaining != nil {
		// The deferred rollback discards the delete
		u.log.Warnf("Health coverage %d still present after delete", id)
		return false, nil
	}

	if err := u.auditService.LogDelete(ctx, tx, entity.AuditActionCoverageDelete, auditEntityCoverage, id, converter.HealthCoverageToResponse(coverage)); err != nil {
		return false, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return false, err
	}

	return true, nil
}

func (u *healthCoverageUsecase) findCoverage(ctx context.Context, db *gorm.DB, id int64) (*entity.HealthCoverage, error) {
	coverage, err := u.coverageRepo.FindByID(ctx, db, id)
	if err != nil {
		u.log.Warnf("Failed to find health coverage %d: %+v", id, err)
		return nil, err
	}
	if coverage == nil {
		return nil, fmt.Errorf("%w: id %d", ErrCoverageNotFound, id)
	}
	return coverage, nil
}

func (u *healthCoverageUsecase) findPatient(ctx context.Context, db *gorm.DB, id int64) (*entity.Patient, error) {
	return findPatient(ctx, db, u.log, u.patientRepo, id)
}
