package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/tuan204-dev/ttcs-be/internal/dtos"
	"github.com/tuan204-dev/ttcs-be/internal/models"
	"github.com/tuan204-dev/ttcs-be/internal/utils"
)

type workerAuthWorld struct {
	svc             WorkerAuthService
	workerRepo      *fakeWorkerRepo
	verifyTokenRepo *fakeVerifyTokenRepo
	mail            *fakeMailService
}

func newWorkerAuthWorld(t *testing.T) *workerAuthWorld {
	t.Helper()
	cfg := testConfig()
	w := &workerAuthWorld{
		workerRepo:      newFakeWorkerRepo(),
		verifyTokenRepo: newFakeVerifyTokenRepo(),
		mail:            &fakeMailService{},
	}
	tokenService := NewTokenService(cfg, newFakeRefreshTokenRepo())
	w.svc = NewWorkerAuthService(cfg, w.workerRepo, w.verifyTokenRepo, tokenService, w.mail)
	return w
}

// issuedToken digs the raw verify token out of the emailed link.
func (w *workerAuthWorld) issuedToken(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, w.mail.links)
	link := w.mail.links[len(w.mail.links)-1]
	i := strings.Index(link, "token=")
	require.GreaterOrEqual(t, i, 0)
	return link[i+len("token="):]
}

func registerRequest(token string) *dtos.RegisterWorkerRequest {
	return &dtos.RegisterWorkerRequest{
		Token:     token,
		Password:  "correct-horse-battery",
		FirstName: "Wes",
		LastName:  "Nguyen",
	}
}

func TestSendVerifyEmailRejectsExistingAccount(t *testing.T) {
	w := newWorkerAuthWorld(t)
	ctx := context.Background()

	require.NoError(t, w.workerRepo.Create(ctx, &models.Worker{ID: uuid.New(), Email: "taken@example.com"}))

	err := w.svc.SendVerifyEmail(ctx, "taken@example.com")
	require.ErrorIs(t, err, utils.ErrEmailExists)
	require.Empty(t, w.mail.sent)
}

func TestResendOverwritesVerifyToken(t *testing.T) {
	w := newWorkerAuthWorld(t)
	ctx := context.Background()

	require.NoError(t, w.svc.SendVerifyEmail(ctx, "new@example.com"))
	first := w.issuedToken(t)

	require.NoError(t, w.svc.SendVerifyEmail(ctx, "new@example.com"))
	second := w.issuedToken(t)
	require.NotEqual(t, first, second)

	// Only the latest token registers.
	_, err := w.svc.Register(ctx, registerRequest(first))
	require.ErrorIs(t, err, utils.ErrInvalidVerifyToken)

	resp, err := w.svc.Register(ctx, registerRequest(second))
	require.NoError(t, err)
	require.Equal(t, "new@example.com", resp.Worker.Email)
}

func TestRegisterFullFlow(t *testing.T) {
	w := newWorkerAuthWorld(t)
	ctx := context.Background()

	require.NoError(t, w.svc.SendVerifyEmail(ctx, "new@example.com"))
	require.Equal(t, []string{"new@example.com"}, w.mail.sent)

	resp, err := w.svc.Register(ctx, registerRequest(w.issuedToken(t)))
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)
	require.NotEqual(t, "correct-horse-battery", resp.Worker.PasswordHash)

	// The token is single use.
	_, err = w.svc.Register(ctx, registerRequest(w.issuedToken(t)))
	require.ErrorIs(t, err, utils.ErrInvalidVerifyToken)

	// And the account can log in with its password.
	login, err := w.svc.Login(ctx, "new@example.com", "correct-horse-battery")
	require.NoError(t, err)
	require.Equal(t, resp.Worker.ID, login.Worker.ID)
}

func TestRegisterRejectsExpiredToken(t *testing.T) {
	w := newWorkerAuthWorld(t)
	ctx := context.Background()

	vt := &models.VerifyToken{
		ID:        uuid.New(),
		Email:     "late@example.com",
		Role:      models.RoleWorker,
		Token:     "stale-token",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, w.verifyTokenRepo.Upsert(ctx, vt))

	_, err := w.svc.Register(ctx, registerRequest("stale-token"))
	require.ErrorIs(t, err, utils.ErrInvalidVerifyToken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	w := newWorkerAuthWorld(t)
	ctx := context.Background()

	require.NoError(t, w.svc.SendVerifyEmail(ctx, "user@example.com"))
	_, err := w.svc.Register(ctx, registerRequest(w.issuedToken(t)))
	require.NoError(t, err)

	_, err = w.svc.Login(ctx, "user@example.com", "wrong-password")
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)

	// Unknown email fails identically to a wrong password.
	_, err = w.svc.Login(ctx, "nobody@example.com", "whatever")
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestRefreshAndLogout(t *testing.T) {
	w := newWorkerAuthWorld(t)
	ctx := context.Background()

	require.NoError(t, w.svc.SendVerifyEmail(ctx, "user@example.com"))
	resp, err := w.svc.Register(ctx, registerRequest(w.issuedToken(t)))
	require.NoError(t, err)

	rotated, err := w.svc.Refresh(ctx, resp.RefreshToken)
	require.NoError(t, err)
	require.NotEqual(t, resp.RefreshToken, rotated.RefreshToken)

	require.NoError(t, w.svc.Logout(ctx, rotated.RefreshToken))

	_, err = w.svc.Refresh(ctx, rotated.RefreshToken)
	require.ErrorIs(t, err, utils.ErrInvalidRefreshToken)
}

func TestUpdateInfoAppliesOnlyProvidedFields(t *testing.T) {
	w := newWorkerAuthWorld(t)
	ctx := context.Background()

	require.NoError(t, w.svc.SendVerifyEmail(ctx, "user@example.com"))
	resp, err := w.svc.Register(ctx, registerRequest(w.issuedToken(t)))
	require.NoError(t, err)

	phone := "0123456789"
	open := true
	dob := time.Date(1998, time.March, 14, 0, 0, 0, 0, time.UTC)
	updated, err := w.svc.UpdateInfo(ctx, resp.Worker.ID, &dtos.UpdateWorkerRequest{
		Phone:         &phone,
		IsOpenToOffer: &open,
		DateOfBirth:   &dob,
	})
	require.NoError(t, err)
	require.Equal(t, phone, updated.Phone)
	require.True(t, updated.IsOpenToOffer)
	require.NotNil(t, updated.DateOfBirth)
	require.True(t, dob.Equal(*updated.DateOfBirth))

	// Fields left out of the request keep their registered values.
	require.Equal(t, "user@example.com", updated.Email)
	require.Equal(t, "Wes", updated.FirstName)
	require.Equal(t, "Nguyen", updated.LastName)
}

func TestUpdateInfoUnknownWorker(t *testing.T) {
	w := newWorkerAuthWorld(t)

	name := "Someone"
	_, err := w.svc.UpdateInfo(context.Background(), uuid.New(), &dtos.UpdateWorkerRequest{FirstName: &name})
	require.ErrorIs(t, err, utils.ErrNotFound)
}
