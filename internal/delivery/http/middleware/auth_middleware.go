package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"patient-health-api/pkg/jwt"
	"patient-health-api/pkg/response"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	AccountIDKey   contextKey = "account_id"
	RoleKey        contextKey = "role"
	TokenIDKey     contextKey = "token_id"
	TokenExpiryKey contextKey = "token_expiry"
)

// RevokedTokenKey is the Redis key marking an access token as logged out.
func RevokedTokenKey(tokenID string) string {
	return "revoked_token:" + tokenID
}

type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewAuthMiddleware(jwtService *jwt.JWTService, redisClient *redis.Client, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		redisClient: redisClient,
		log:         log,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Invalid token type")
			return
		}

		if claims.AccountID == "" || claims.Role == "" {
			response.Unauthorized(w, "Token does not carry an account")
			return
		}

		// Tokens without an id cannot be revoked on logout
		if claims.TokenID == "" {
			response.Unauthorized(w, "Token does not carry a token id")
			return
		}

		revoked, err := m.redisClient.Exists(r.Context(), RevokedTokenKey(claims.TokenID)).Result()
		if err != nil {
			m.log.WithField("request_id", GetRequestIDFromContext(r.Context())).
				Warnf("Failed to check token revocation: %+v", err)
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if revoked > 0 {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		ctx := WithAccount(r.Context(), claims.AccountID, claims.Role)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)
		ctx = context.WithValue(ctx, TokenExpiryKey, claims.ExpiresIn())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithAccount stores the authenticated account on the context.
func WithAccount(ctx context.Context, accountID, role string) context.Context {
	ctx = context.WithValue(ctx, AccountIDKey, accountID)
	return context.WithValue(ctx, RoleKey, role)
}

// GetAccountIDFromContext extracts the account ID from context
func GetAccountIDFromContext(ctx context.Context) (string, bool) {
	accountID, ok := ctx.Value(AccountIDKey).(string)
	return accountID, ok && accountID != ""
}

// GetRoleFromContext extracts the role from context
func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok && role != ""
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}

// GetTokenExpiryFromContext returns the remaining lifetime of the presented token
func GetTokenExpiryFromContext(ctx context.Context) (time.Duration, bool) {
	expiry, ok := ctx.Value(TokenExpiryKey).(time.Duration)
	return expiry, ok
}
