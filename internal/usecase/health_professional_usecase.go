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
	ErrProfessionalNotFound        = errors.New("health professional not found")
	ErrProfessionalNotMatchPatient = errors.New("health professional does not belong to patient")
)

const auditEntityProfessional = "health_professional"

type HealthProfessionalUsecase interface {
	ListAll(ctx context.Context) (*dto.HealthProfessionalListResponse, error)
	ListByPatient(ctx context.Context, patientID int64) (*dto.HealthProfessionalListResponse, error)
	GetProfessional(ctx context.Context, id int64) (*dto.HealthProfessionalResponse, error)
	CreateProfessional(ctx context.Context, req *dto.CreateHealthProfessionalRequest) (*dto.HealthProfessionalResponse, error)
	UpdateProfessional(ctx context.Context, id int64, req *dto.UpdateHealthProfessionalRequest) (*dto.HealthProfessionalResponse, error)
	DeleteProfessional(ctx context.Context, id, patientID int64) (bool, error)
}

type healthProfessionalUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	professionalRepo repository.HealthProfessionalRepository
	patientRepo      repository.PatientRepository
	doctorRepo       repository.DoctorRepository
	accessService    service.AccessService
	auditService     service.AuditService
}

func NewHealthProfessionalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	professionalRepo repository.HealthProfessionalRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	accessService service.AccessService,
	auditService service.AuditService,
) HealthProfessionalUsecase {
	return &healthProfessionalUsecase{
		db:               db,
		log:              log,
		professionalRepo: professionalRepo,
		patientRepo:      patientRepo,
		doctorRepo:       doctorRepo,
		accessService:    accessService,
		auditService:     auditService,
	}
}

// ListAll returns every contact of every patient and fails when there is none.
func (u *healthProfessionalUsecase) ListAll(ctx context.Context) (*dto.HealthProfessionalListResponse, error) {
	if err := u.accessService.CheckAdminAccess(ctx); err != nil {
		return nil, err
	}

	professionals, err := u.professionalRepo.FindAll(ctx, u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all health professionals: %+v", err)
		return nil, err
	}
	if len(professionals) == 0 {
		return nil, ErrProfessionalNotFound
	}

	return &dto.HealthProfessionalListResponse{
		Professionals: converter.HealthProfessionalsToResponses(professionals),
		Total:         len(professionals),
	}, nil
}

// ListByPatient returns the patient's contacts. An empty list is a success.
func (u *healthProfessionalUsecase) ListByPatient(ctx context.Context, patientID int64) (*dto.HealthProfessionalListResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := findPatient(ctx, db, u.log, u.patientRepo, patientID)
	if err != nil {
		return nil, err
	}
	if err := u.accessService.CheckPatientAccess(ctx, patient); err != nil {
		return nil, err
	}

	professionals, err := u.professionalRepo.FindByPatientID(ctx, db, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find health professionals for patient %d: %+v", patient.ID, err)
		return nil, err
	}

	return &dto.HealthProfessionalListResponse{
		Professionals: converter.HealthProfessionalsToResponses(professionals),
		Total:         len(professionals),
	}, nil
}

func (u *healthProfessionalUsecase) GetProfessional(ctx context.Context, id int64) (*dto.HealthProfessionalResponse, error) {
	db := u.db.WithContext(ctx)

	professional, err := u.findProfessional(ctx, db, id)
	if err != nil {
		return nil, err
	}

	patient, err := findPatient(ctx, db, u.log, u.patientRepo, professional.PatientID)
	if err != nil {
		return nil, err
	}
	if err := u.accessService.CheckPatientAccess(ctx, patient); err != nil {
		return nil, err
	}

	return converter.HealthProfessionalToResponse(professional), nil
}

// CreateProfessional stores a new contact. A non-zero doctor id attaches the
// registry doctor, whose name replaces the supplied one and whose mobile
// replaces the primary phone when the doctor has one.
func (u *healthProfessionalUsecase) CreateProfessional(ctx context.Context, req *dto.CreateHealthProfessionalRequest) (*dto.HealthProfessionalResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := findPatient(ctx, tx, u.log, u.patientRepo, req.PatientID)
	if err != nil {
		return nil, err
	}
	if err := u.accessService.CheckPatientAccess(ctx, patient); err != nil {
		return nil, err
	}

	professional := &entity.HealthProfessional{
		Speciality:    req.Speciality,
		Name:          req.Name,
		PhoneNumber1:  req.PhoneNumber1,
		PhoneLabel1:   req.PhoneLabel1,
		PhoneNumber2:  req.PhoneNumber2,
		PhoneLabel2:   req.PhoneLabel2,
		GooglePlaceID: req.GooglePlaceID,
		Comment:       req.Comment,
		PatientID:     patient.ID,
	}
	if req.FranceHealthProID != nil && *req.FranceHealthProID != 0 {
		professional.FranceHealthProID = req.FranceHealthProID
	}

	if req.DoctorID != nil && *req.DoctorID != 0 {
		doctor, err := u.findDoctor(ctx, tx, *req.DoctorID)
		if err != nil {
			return nil, err
		}
		professional.AttachDoctor(doctor)
		if doctor.MobilePhone != nil {
			professional.PhoneNumber1 = doctor.MobilePhone
		}
	}

	if err := u.professionalRepo.Create(ctx, tx, professional); err != nil {
		u.log.Warnf("Failed to create health professional: %+v", err)
		return nil, err
	}

	resp := converter.HealthProfessionalToResponse(professional)
	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionProfessionalCreate, auditEntityProfessional, professional.ID, resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

// UpdateProfessional overwrites only the fields present in req. Any doctor id,
// zero included, is resolved and then overwrites the name and primary phone,
// even when the doctor has no mobile.
func (u *healthProfessionalUsecase) UpdateProfessional(ctx context.Context, id int64, req *dto.UpdateHealthProfessionalRequest) (*dto.HealthProfessionalResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := findPatient(ctx, tx, u.log, u.patientRepo, req.PatientID)
	if err != nil {
		return nil, err
	}
	if err := u.accessService.CheckPatientAccess(ctx, patient); err != nil {
		return nil, err
	}

	professional, err := u.findProfessional(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if !professional.IsOwnedBy(patient.ID) {
		u.log.Warnf("Health professional %d does not belong to patient %d", id, patient.ID)
		return nil, fmt.Errorf("%w: health professional %d, patient %d", ErrProfessionalNotMatchPatient, id, patient.ID)
	}

	oldValue := converter.HealthProfessionalToResponse(professional)

	if req.Speciality != nil {
		professional.Speciality = req.Speciality
	}
	if req.FranceHealthProID != nil {
		professional.FranceHealthProID = req.FranceHealthProID
	}
	if req.Name != nil {
		professional.Name = req.Name
	}
	if req.PhoneNumber1 != nil {
		professional.PhoneNumber1 = req.PhoneNumber1
	}
	if req.PhoneLabel1 != nil {
		professional.PhoneLabel1 = req.PhoneLabel1
	}
	if req.PhoneNumber2 != nil {
		professional.PhoneNumber2 = req.PhoneNumber2
	}
	if req.PhoneLabel2 != nil {
		professional.PhoneLabel2 = req.PhoneLabel2
	}
	if req.GooglePlaceID != nil {
		professional.GooglePlaceID = req.GooglePlaceID
	}
	if req.Comment != nil {
		professional.Comment = req.Comment
	}

	if req.DoctorID != nil {
		doctor, err := u.findDoctor(ctx, tx, *req.DoctorID)
		if err != nil {
			return nil, err
		}
		professional.AttachDoctor(doctor)
		professional.PhoneNumber1 = doctor.MobilePhone
	}

	if err := u.professionalRepo.Update(ctx, tx, professional); err != nil {
		u.log.Warnf("Failed to update health professional %d: %+v", id, err)
		return nil, err
	}

	resp := converter.HealthProfessionalToResponse(professional)
	if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionProfessionalUpdate, auditEntityProfessional, professional.ID, oldValue, resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

// DeleteProfessional removes the contact and reports whether a re-read
// confirms that it is gone.
func (u *healthProfessionalUsecase) DeleteProfessional(ctx context.Context, id, patientID int64) (bool, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := findPatient(ctx, tx, u.log, u.patientRepo, patientID)
	if err != nil {
		return false, err
	}
	if err := u.accessService.CheckPatientAccess(ctx, patient); err != nil {
		return false, err
	}

	professional, err := u.findProfessional(ctx, tx, id)
	if err != nil {
		return false, err
	}
	if !professional.IsOwnedBy(patient.ID) {
		u.log.Warnf("Health professional %d does not belong to patient %d", id, patient.ID)
		return false, fmt.Errorf("%w: health professional %d, patient %d", ErrProfessionalNotMatchPatient, id, patient.ID)
	}

	if err := u.professionalRepo.Delete(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete health professional %d: %+v", id, err)
		return false, err
	}

	remaining, err := u.professionalRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to confirm deletion of health professional %d: %+v", id, err)
		return false, err
	}
	if remaining != nil {
		// The deferred rollback discards the delete
		u.log.Warnf("Health professional %d still present after delete", id)
		return false, nil
	}

	if err := u.auditService.LogDelete(ctx, tx, entity.AuditActionProfessionalDelete, auditEntityProfessional, id, converter.HealthProfessionalToResponse(professional)); err != nil {
		return false, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return false, err
	}

	return true, nil
}

func (u *healthProfessionalUsecase) findProfessional(ctx context.Context, db *gorm.DB, id int64) (*entity.HealthProfessional, error) {
	professional, err := u.professionalRepo.FindByID(ctx, db, id)
	if err != nil {
		u.log.Warnf("Failed to find health professional %d: %+v", id, err)
		return nil, err
	}
	if professional == nil {
		return nil, fmt.Errorf("%w: id %d", ErrProfessionalNotFound, id)
	}
	return professional, nil
}

func (u *healthProfessionalUsecase) findDoctor(ctx context.Context, db *gorm.DB, id int64) (*entity.Doctor, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, db, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, fmt.Errorf("%w: id %d", ErrDoctorNotFound, id)
	}
	return doctor, nil
}
