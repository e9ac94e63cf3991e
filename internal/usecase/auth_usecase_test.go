package usecase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"patient-health-api/config"
	"patient-health-api/internal/delivery/http/middleware"
	"patient-health-api/internal/domain/entity"
	"patient-health-api/internal/repository"
	"patient-health-api/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthUsecase(t *testing.T, f *fixture) (*miniredis.Miniredis, AuthUsecase) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return mr, NewAuthUsecase(f.db, f.log, repository.NewPatientRepository(), client)
}

func TestAuth_GetCurrentAccount(t *testing.T) {
	f := newFixture(t)
	_, uc := newAuthUsecase(t, f)

	account, err := uc.GetCurrentAccount(patientCtx(aliceAccount))
	require.NoError(t, err)
	assert.Equal(t, aliceAccount, account.AccountID)
	assert.Equal(t, entity.RolePatient, account.Role)
	require.NotNil(t, account.Patient)
	assert.Equal(t, f.alice.ID, account.Patient.ID)

	account, err = uc.GetCurrentAccount(adminCtx())
	require.NoError(t, err)
	assert.Nil(t, account.Patient)

	_, err = uc.GetCurrentAccount(context.Background())
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuth_LogoutRevokesUntilExpiry(t *testing.T) {
	f := newFixture(t)
	mr, uc := newAuthUsecase(t, f)

	ctx := context.WithValue(adminCtx(), middleware.TokenIDKey, "token-1")
	ctx = context.WithValue(ctx, middleware.TokenExpiryKey, 10*time.Minute)

	require.NoError(t, uc.Logout(ctx))

	key := middleware.RevokedTokenKey("token-1")
	assert.True(t, mr.Exists(key))
	assert.Equal(t, 10*time.Minute, mr.TTL(key))
}

func TestAuth_LogoutWithoutToken(t *testing.T) {
	f := newFixture(t)
	_, uc := newAuthUsecase(t, f)

	assert.ErrorIs(t, uc.Logout(adminCtx()), ErrInvalidToken)
}

func TestAuth_LogoutWithoutExpiry(t *testing.T) {
	f := newFixture(t)
	mr, uc := newAuthUsecase(t, f)

	ctx := context.WithValue(adminCtx(), middleware.TokenIDKey, "token-1")

	assert.ErrorIs(t, uc.Logout(ctx), ErrInvalidToken)
	assert.False(t, mr.Exists(middleware.RevokedTokenKey("token-1")))
}

func TestAuth_LogoutThroughAuthenticate(t *testing.T) {
	f := newFixture(t)
	mr, uc := newAuthUsecase(t, f)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "auth-secret", AccessExpiry: time.Hour})
	auth := middleware.NewAuthMiddleware(jwtService, client, f.log)

	logout := auth.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := uc.Logout(r.Context()); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	call := func(token string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		logout.ServeHTTP(rec, req)
		return rec.Code
	}

	token, tokenID, err := jwtService.GenerateAccessToken(aliceAccount, entity.RolePatient)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, call(token))
	assert.True(t, mr.Exists(middleware.RevokedTokenKey(tokenID)))
	assert.Equal(t, http.StatusUnauthorized, call(token))

	neverExpires, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{
		AccountID: aliceAccount,
		Role:      entity.RolePatient,
		TokenType: jwt.AccessToken,
		TokenID:   "token-forever",
	}).SignedString([]byte("auth-secret"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, call(neverExpires))
	assert.False(t, mr.Exists(middleware.RevokedTokenKey("token-forever")))
}
