package usecase

import (
	"context"
	"fmt"
	"io"
	"testing"

	"patient-health-api/internal/delivery/http/middleware"
	"patient-health-api/internal/domain/entity"
	"patient-health-api/internal/repository"
	"patient-health-api/internal/service"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	adminAccount  = "acc-admin"
	aliceAccount  = "acc-alice"
	bobAccount    = "acc-bob"
	carolAccount  = "acc-carol"
	doctorAccount = "acc-doctor"
)

type fixture struct {
	db     *gorm.DB
	log    *logrus.Logger
	alice  *entity.Patient
	bob    *entity.Patient
	carol  *entity.Patient
	access service.AccessService
	audit  service.AuditService
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func boolPtr(v bool) *bool { return &v }

func adminCtx() context.Context {
	return middleware.WithAccount(context.Background(), adminAccount, entity.RoleAdmin)
}

func patientCtx(accountID string) context.Context {
	return middleware.WithAccount(context.Background(), accountID, entity.RolePatient)
}

func doctorCtx() context.Context {
	return middleware.WithAccount(context.Background(), doctorAccount, entity.RoleDoctor)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&entity.Patient{},
		&entity.Doctor{},
		&entity.HealthCoverage{},
		&entity.HealthProfessional{},
		&entity.PatientRelation{},
		&entity.PatientAccountLinked{},
		&entity.Relation{},
		&entity.AuditLog{},
	))

	for _, name := range entity.DefaultRelationNames {
		require.NoError(t, db.Create(&entity.PatientRelation{Name: name}).Error)
	}

	return db
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	db := setupTestDB(t)
	f := &fixture{
		db:     db,
		log:    log,
		alice:  &entity.Patient{AccountID: aliceAccount, FirstName: "Alice", LastName: "Martin"},
		bob:    &entity.Patient{AccountID: bobAccount, FirstName: "Bob", LastName: "Martin"},
		carol:  &entity.Patient{AccountID: carolAccount, FirstName: "Carol", LastName: "Durand"},
		access: service.NewAccessService(log),
		audit:  service.NewAuditService(log, repository.NewAuditLogRepository()),
	}
	for _, p := range []*entity.Patient{f.alice, f.bob, f.carol} {
		require.NoError(t, db.Create(p).Error)
	}
	return f
}

func (f *fixture) addDoctor(t *testing.T, first, last string, mobile *string) *entity.Doctor {
	t.Helper()
	doctor := &entity.Doctor{FirstName: first, LastName: last, MobilePhone: mobile}
	require.NoError(t, f.db.Create(doctor).Error)
	return doctor
}

func (f *fixture) auditCount(t *testing.T, action string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, f.db.Model(&entity.AuditLog{}).Where("action = ?", action).Count(&count).Error)
	return count
}
