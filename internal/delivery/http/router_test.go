package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"patient-health-api/config"
	"patient-health-api/internal/delivery/http/handler"
	"patient-health-api/internal/delivery/http/middleware"
	"patient-health-api/internal/domain/entity"
	"patient-health-api/pkg/jwt"
	"patient-health-api/pkg/validator"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter wires the router with nil usecases; every request below is
// answered before a usecase would be reached.
func setupRouter(t *testing.T) (*mux.Router, *jwt.JWTService) {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "router-secret", AccessExpiry: time.Hour})
	v := validator.NewValidator()

	router := NewRouter(
		handler.NewHealthHandler(db, redisClient),
		handler.NewAuthHandler(nil),
		handler.NewHealthCoverageHandler(nil, v),
		handler.NewHealthProfessionalHandler(nil, v),
		handler.NewAccountLinkedHandler(nil, v),
		handler.NewAuditLogHandler(nil),
		middleware.NewAuthMiddleware(jwtService, redisClient, log),
		middleware.NewCORSMiddleware(),
		middleware.NewLoggingMiddleware(log),
		middleware.NewRecoveryMiddleware(log),
	)
	return router.Setup(), jwtService
}

func serve(t *testing.T, r *mux.Router, method, target, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func tokenFor(t *testing.T, jwtService *jwt.JWTService, role string) string {
	t.Helper()
	token, _, err := jwtService.GenerateAccessToken("acc-"+role, role)
	require.NoError(t, err)
	return token
}

func TestRouter_PublicHealth(t *testing.T) {
	r, _ := setupRouter(t)

	rec := serve(t, r, http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	rec = serve(t, r, http.MethodGet, "/api/v1/health/ready", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_RequiresToken(t *testing.T) {
	r, _ := setupRouter(t)

	paths := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/v1/auth/me"},
		{http.MethodGet, "/api/v1/health-coverages/patient/1"},
		{http.MethodPatch, "/api/v1/health-coverage/1/patient/1"},
		{http.MethodGet, "/api/v1/health-professional-contacts"},
		{http.MethodDelete, "/api/v1/health-professional-contact/1"},
		{http.MethodGet, "/api/v1/check-account-linked/1"},
		{http.MethodPost, "/api/v1/account-linked"},
		{http.MethodGet, "/api/v1/admin/audit-logs"},
	}

	for _, p := range paths {
		rec := serve(t, r, p.method, p.target, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, p.target)
	}
}

func TestRouter_RoleGates(t *testing.T) {
	r, jwtService := setupRouter(t)
	doctor := tokenFor(t, jwtService, entity.RoleDoctor)
	patient := tokenFor(t, jwtService, entity.RolePatient)

	tests := []struct {
		name   string
		method string
		target string
		token  string
	}{
		{"doctor cannot read coverages", http.MethodGet, "/api/v1/health-coverage/1", doctor},
		{"doctor cannot create links", http.MethodPost, "/api/v1/account-linked", doctor},
		{"doctor cannot remove links", http.MethodDelete, "/api/v1/account-linked/patients/1/remove/2", doctor},
		{"patient cannot read audit logs", http.MethodGet, "/api/v1/admin/audit-logs", patient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, r, tt.method, tt.target, tt.token)
			assert.Equal(t, http.StatusForbidden, rec.Code)
		})
	}
}

func TestRouter_PathValidationAfterAuth(t *testing.T) {
	r, jwtService := setupRouter(t)
	admin := tokenFor(t, jwtService, entity.RoleAdmin)

	rec := serve(t, r, http.MethodGet, "/api/v1/health-coverage/abc", admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, r, http.MethodDelete, "/api/v1/health-professional-contact/4", admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	r, _ := setupRouter(t)

	rec := serve(t, r, http.MethodGet, "/api/v1/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
