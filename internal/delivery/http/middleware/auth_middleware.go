package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"healthhub-backend/pkg/jwt"
	"healthhub-backend/pkg/response"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	UserEmailKey contextKey = "user_email"
	TokenIDKey   contextKey = "token_id"
)

type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthMiddleware(jwtService *jwt.JWTService, redisClient *redis.Client) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

// Authenticate rejects requests without a valid, unrevoked bearer token
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, errMsg := m.resolve(r)
		if claims == nil {
			response.Unauthorized(w, errMsg)
			return
		}
		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), claims)))
	})
}

// OptionalAuthenticate resolves the caller when a valid token is presented and
// proceeds anonymously otherwise. There is no fallback identity: missing or
// invalid credentials simply leave the context empty.
func (m *AuthMiddleware) OptionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, _ := m.resolve(r); claims != nil {
			r = r.WithContext(withIdentity(r.Context(), claims))
		}
		next.ServeHTTP(w, r)
	})
}

// resolve extracts and validates the bearer token, returning nil claims with a
// reason when the request carries no usable identity
func (m *AuthMiddleware) resolve(r *http.Request) (*jwt.Claims, string) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, "Authorization header is required"
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, "Invalid authorization header format"
	}

	claims, err := m.jwtService.ValidateToken(parts[1])
	if err != nil {
		return nil, "Invalid or expired token"
	}

	if claims.TokenType != jwt.AccessToken {
		return nil, "Invalid token type"
	}

	// Check if token exists in Redis (not revoked)
	tokenKey := fmt.Sprintf("access_token:%s:%s", claims.UserID.String(), claims.TokenID)
	exists, err := m.redisClient.Exists(r.Context(), tokenKey).Result()
	if err != nil {
		return nil, "Failed to validate token"
	}
	if exists == 0 {
		return nil, "Token has been revoked"
	}

	return claims, ""
}

func withIdentity(ctx context.Context, claims *jwt.Claims) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
	ctx = context.WithValue(ctx, UserEmailKey, claims.Email)
	ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)
	return ctx
}

// GetUserIDFromContext extracts user ID from context
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

// GetUserEmailFromContext extracts user email from context
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailKey).(string)
	return email, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
