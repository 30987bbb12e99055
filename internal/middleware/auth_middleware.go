package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/tuan204-dev/ttcs-be/internal/models"
	"github.com/tuan204-dev/ttcs-be/internal/utils"
)

type contextKey string

const contextKeyIdentity = contextKey("identity")

// TokenIssuer identifies tokens minted by this service.
const TokenIssuer = "ttcs-be"

// Identity is the resolved caller attached to the request context by
// the auth guard.
type Identity struct {
	UserID uuid.UUID
	Role   models.RoleType
}

// Verifier is one token-verification strategy: a role with its signing
// secret. Guards take an ordered list and accept the first success.
type Verifier struct {
	Role   models.RoleType
	Secret []byte
}

// Auth builds a guard from an ordered list of verifier strategies. A
// single-verifier guard protects role-specific routes; passing both
// verifiers yields the "either" guard used by shared routes.
func Auth(verifiers ...Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := extractBearerToken(r)
			if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, err.Error())
				return
			}

			var (
				identity   *Identity
				sawExpired bool
				lastVerErr error
			)
			for _, v := range verifiers {
				id, vErr := verifyAccessToken(tokenStr, v)
				if vErr == nil {
					identity = id
					break
				}
				if errors.Is(vErr, jwt.ErrTokenExpired) {
					sawExpired = true
				}
				lastVerErr = vErr
			}

			if identity == nil {
				if sawExpired {
					utils.RespondError(w, http.StatusUnauthorized, "Token expired", lastVerErr)
					return
				}
				utils.RespondError(w, http.StatusUnauthorized, "Unauthorized access", lastVerErr)
				return
			}

			ctx := context.WithValue(r.Context(), contextKeyIdentity, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext returns the caller resolved by the auth guard.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(contextKeyIdentity).(*Identity)
	return id, ok
}

func extractBearerToken(r *http.Request) (string, error) {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", errors.New("Authorization header is missing or invalid")
	}
	return strings.TrimPrefix(h, "Bearer "), nil
}

func verifyAccessToken(tokenStr string, v Verifier) (*Identity, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.Secret, nil
	}, jwt.WithIssuer(TokenIssuer))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("missing subject claim")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.New("malformed subject claim")
	}

	role, ok := claims["role"].(string)
	if !ok || models.RoleType(role) != v.Role {
		return nil, errors.New("role mismatch")
	}

	return &Identity{UserID: userID, Role: v.Role}, nil
}
