package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuan204-dev/ttcs-be/internal/dtos"
)

type recruiterAuthWorld struct {
	svc           RecruiterAuthService
	recruiterRepo *fakeRecruiterRepo
	mail          *fakeMailService
}

func newRecruiterAuthWorld(t *testing.T) *recruiterAuthWorld {
	t.Helper()
	cfg := testConfig()
	w := &recruiterAuthWorld{
		recruiterRepo: newFakeRecruiterRepo(),
		mail:          &fakeMailService{},
	}
	tokenService := NewTokenService(cfg, newFakeRefreshTokenRepo())
	w.svc = NewRecruiterAuthService(cfg, w.recruiterRepo, newFakeVerifyTokenRepo(), tokenService, w.mail)
	return w
}

func (w *recruiterAuthWorld) issuedToken(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, w.mail.links)
	link := w.mail.links[len(w.mail.links)-1]
	i := strings.Index(link, "token=")
	require.GreaterOrEqual(t, i, 0)
	return link[i+len("token="):]
}

func TestRecruiterRegisterKeepsProfileFields(t *testing.T) {
	w := newRecruiterAuthWorld(t)
	ctx := context.Background()

	require.NoError(t, w.svc.SendVerifyEmail(ctx, "recruiter@example.com"))
	resp, err := w.svc.Register(ctx, &dtos.RegisterRecruiterRequest{
		Token:     w.issuedToken(t),
		Password:  "correct-horse-battery",
		FirstName: "Rita",
		LastName:  "Tran",
		Location:  "Ha Noi",
	})
	require.NoError(t, err)
	require.Equal(t, "Ha Noi", resp.Recruiter.Location)

	stored, err := w.recruiterRepo.GetByEmail(ctx, "recruiter@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, "Ha Noi", stored.Location)

	info, err := w.svc.GetInfo(ctx, resp.Recruiter.ID)
	require.NoError(t, err)
	require.Equal(t, "Ha Noi", info.Location)
}
