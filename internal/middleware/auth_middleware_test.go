package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/tuan204-dev/ttcs-be/internal/models"
)

var (
	workerSecret    = []byte("worker-secret-for-tests")
	recruiterSecret = []byte("recruiter-secret-for-tests")
)

func signToken(t *testing.T, userID uuid.UUID, role models.RoleType, secret []byte, expiresIn time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":  TokenIssuer,
		"sub":  userID.String(),
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(expiresIn).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func runGuard(t *testing.T, guard func(http.Handler) http.Handler, authHeader string) (*httptest.ResponseRecorder, *Identity) {
	t.Helper()
	var captured *Identity
	handler := guard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFromContext(r.Context())
		require.True(t, ok)
		captured = id
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr, captured
}

func TestGuardAcceptsMatchingRole(t *testing.T) {
	userID := uuid.New()
	guard := Auth(Verifier{Role: models.RoleWorker, Secret: workerSecret})

	token := signToken(t, userID, models.RoleWorker, workerSecret, time.Hour)
	rr, identity := runGuard(t, guard, "Bearer "+token)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, userID, identity.UserID)
	require.Equal(t, models.RoleWorker, identity.Role)
}

func TestGuardRejectsWrongRoleSecret(t *testing.T) {
	guard := Auth(Verifier{Role: models.RoleWorker, Secret: workerSecret})

	// A recruiter token must not pass the worker guard.
	token := signToken(t, uuid.New(), models.RoleRecruiter, recruiterSecret, time.Hour)
	rr, _ := runGuard(t, guard, "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGuardRejectsRoleClaimMismatch(t *testing.T) {
	guard := Auth(Verifier{Role: models.RoleWorker, Secret: workerSecret})

	// Right secret, wrong role claim.
	token := signToken(t, uuid.New(), models.RoleRecruiter, workerSecret, time.Hour)
	rr, _ := runGuard(t, guard, "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestEitherGuardAcceptsBothRoles(t *testing.T) {
	guard := Auth(
		Verifier{Role: models.RoleWorker, Secret: workerSecret},
		Verifier{Role: models.RoleRecruiter, Secret: recruiterSecret},
	)

	workerToken := signToken(t, uuid.New(), models.RoleWorker, workerSecret, time.Hour)
	rr, identity := runGuard(t, guard, "Bearer "+workerToken)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, models.RoleWorker, identity.Role)

	recruiterToken := signToken(t, uuid.New(), models.RoleRecruiter, recruiterSecret, time.Hour)
	rr, identity = runGuard(t, guard, "Bearer "+recruiterToken)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, models.RoleRecruiter, identity.Role)
}

func TestExpiredTokenReportsExpiry(t *testing.T) {
	guard := Auth(Verifier{Role: models.RoleWorker, Secret: workerSecret})

	token := signToken(t, uuid.New(), models.RoleWorker, workerSecret, -time.Minute)
	rr, _ := runGuard(t, guard, "Bearer "+token)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Contains(t, rr.Body.String(), "Token expired")
}

func TestMissingOrMalformedHeaderRejected(t *testing.T) {
	guard := Auth(Verifier{Role: models.RoleWorker, Secret: workerSecret})

	for _, header := range []string{"", "Basic abc", "Bearer", "bearer x"} {
		rr, _ := runGuard(t, guard, header)
		require.Equal(t, http.StatusUnauthorized, rr.Code, "header %q", header)
	}
}
