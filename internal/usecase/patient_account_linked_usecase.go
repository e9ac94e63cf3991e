package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"patient-health-api/internal/converter"
	"patient-health-api/internal/delivery/dto"
	"patient-health-api/internal/domain/entity"
	"patient-health-api/internal/domain/repository"
	"patient-health-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrNoRelationBetweenPatients = errors.New("the two patients does not have any relation between them")
	ErrRelationTypeNotFound      = errors.New("patient relation type not found")
	ErrLinkAlreadyExists         = errors.New("the two patients are already linked")
	ErrCannotLinkSelf            = errors.New("a patient cannot be linked to itself")
)

const auditEntityAccountLink = "patient_account_linked"

type PatientAccountLinkedUsecase interface {
	ListLinks(ctx context.Context, patientID int64) (*dto.AccountLinkListResponse, error)
	CheckLinks(ctx context.Context, patientID int64) (*dto.CheckAccountLinkedResponse, error)
	CreateLink(ctx context.Context, req *dto.CreateAccountLinkRequest) (*dto.AccountLinkResponse, error)
	RemoveLink(ctx context.Context, patientID, linkedPatientID int64) error
}

type patientAccountLinkedUsecase struct {
	db                  *gorm.DB
	log                 *logrus.Logger
	linkRepo            repository.PatientAccountLinkedRepository
	patientRepo         repository.PatientRepository
	patientRelationRepo repository.PatientRelationRepository
	relationRepo        repository.RelationRepository
	accessService       service.AccessService
	auditService        service.AuditService
}

func NewPatientAccountLinkedUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	linkRepo repository.PatientAccountLinkedRepository,
	patientRepo repository.PatientRepository,
	patientRelationRepo repository.PatientRelationRepository,
	relationRepo repository.RelationRepository,
	accessService service.AccessService,
	auditService service.AuditService,
) PatientAccountLinkedUsecase {
	return &patientAccountLinkedUsecase{
		db:                  db,
		log:                 log,
		linkRepo:            linkRepo,
		patientRepo:         patientRepo,
		patientRelationRepo: patientRelationRepo,
		relationRepo:        relationRepo,
		accessService:       accessService,
		auditService:        auditService,
	}
}

// ListLinks returns every link where the patient is either the parent or the
// linked side.
func (u *patientAccountLinkedUsecase) ListLinks(ctx context.Context, patientID int64) (*dto.AccountLinkListResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := findPatient(ctx, db, u.log, u.patientRepo, patientID)
	if err != nil {
		return nil, err
	}
	if err := u.accessService.CheckPatientReadAccess(ctx, patient); err != nil {
		return nil, err
	}

	links, err := u.linkRepo.FindByPatientID(ctx, db, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find account links for patient %d: %+v", patient.ID, err)
		return nil, err
	}

	return &dto.AccountLinkListResponse{
		Links: converter.AccountLinksToResponses(links),
		Total: len(links),
	}, nil
}

// CheckLinks reports whether the patient has any link and lists the patients
// on the other side.
func (u *patientAccountLinkedUsecase) CheckLinks(ctx context.Context, patientID int64) (*dto.CheckAccountLinkedResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := findPatient(ctx, db, u.log, u.patientRepo, patientID)
	if err != nil {
		return nil, err
	}

	links, err := u.linkRepo.FindByPatientID(ctx, db, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find account links for patient %d: %+v", patient.ID, err)
		return nil, err
	}

	return converter.AccountLinksToCheck(patient.ID, links), nil
}

// CreateLink links the two accounts' patients. The edge and the generic
// relation entry are written in one transaction.
func (u *patientAccountLinkedUsecase) CreateLink(ctx context.Context, req *dto.CreateAccountLinkRequest) (*dto.AccountLinkResponse, error) {
	if err := u.accessService.CheckAccountAccess(ctx, req.IDPatient); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	parent, err := findPatientByAccount(ctx, tx, u.log, u.patientRepo, req.IDPatient)
	if err != nil {
		return nil, err
	}
	linked, err := findPatientByAccount(ctx, tx, u.log, u.patientRepo, req.IDPatientLinked)
	if err != nil {
		return nil, err
	}
	if parent.ID == linked.ID {
		return nil, ErrCannotLinkSelf
	}

	relationType, err := u.patientRelationRepo.FindByName(ctx, tx, req.PatientRelation)
	if err != nil {
		u.log.Warnf("Failed to find patient relation %q: %+v", req.PatientRelation, err)
		return nil, err
	}
	if relationType == nil {
		return nil, fmt.Errorf("%w: %s", ErrRelationTypeNotFound, req.PatientRelation)
	}

	existing, err := u.linkRepo.FindByPair(ctx, tx, parent.ID, linked.ID)
	if err != nil {
		u.log.Warnf("Failed to check existing account link: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: patients %d and %d", ErrLinkAlreadyExists, parent.ID, linked.ID)
	}

	hasBloodLink := true
	if req.HasBloodLink != nil {
		hasBloodLink = *req.HasBloodLink
	}

	link := &entity.PatientAccountLinked{
		RelationID:      relationType.ID,
		ParentPatientID: parent.ID,
		PatientLinkedID: linked.ID,
		HasBloodLink:    &hasBloodLink,
	}
	if err := u.linkRepo.Create(ctx, tx, link); err != nil {
		if isDuplicateKeyError(err, "pair") {
			return nil, fmt.Errorf("%w: patients %d and %d", ErrLinkAlreadyExists, parent.ID, linked.ID)
		}
		u.log.Warnf("Failed to create account link: %+v", err)
		return nil, err
	}

	relation := &entity.Relation{
		PatientID:        parent.ID,
		RelatedPatientID: linked.ID,
		StartedAt:        time.Now(),
	}
	if err := u.relationRepo.Create(ctx, tx, relation); err != nil {
		u.log.Warnf("Failed to create relation entry: %+v", err)
		return nil, err
	}

	link.Relation = relationType
	link.ParentPatient = parent
	link.PatientLinked = linked
	resp := converter.AccountLinkToResponse(link)

	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionLinkCreate, auditEntityAccountLink, link.ID, resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

// RemoveLink deletes every edge between the two patients, whichever side
// created it, and closes their open relation entries.
func (u *patientAccountLinkedUsecase) RemoveLink(ctx context.Context, patientID, linkedPatientID int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := findPatient(ctx, tx, u.log, u.patientRepo, patientID)
	if err != nil {
		return err
	}
	if err := u.accessService.CheckPatientAccess(ctx, patient); err != nil {
		return err
	}

	link, err := u.linkRepo.FindByPair(ctx, tx, patientID, linkedPatientID)
	if err != nil {
		u.log.Warnf("Failed to find account link: %+v", err)
		return err
	}
	if link == nil {
		return fmt.Errorf("%w: patients %d and %d", ErrNoRelationBetweenPatients, patientID, linkedPatientID)
	}

	if _, err := findPatient(ctx, tx, u.log, u.patientRepo, linkedPatientID); err != nil {
		return err
	}

	removed, err := u.linkRepo.DeleteByPair(ctx, tx, patientID, linkedPatientID)
	if err != nil {
		u.log.Warnf("Failed to delete account link: %+v", err)
		return err
	}
	if removed == 0 {
		return fmt.Errorf("%w: patients %d and %d", ErrNoRelationBetweenPatients, patientID, linkedPatientID)
	}

	if err := u.relationRepo.EndBetween(ctx, tx, patientID, linkedPatientID, time.Now()); err != nil {
		u.log.Warnf("Failed to close relation entries: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, entity.AuditActionLinkRemove, auditEntityAccountLink, link.ID, converter.AccountLinkToResponse(link)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
