package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/tuan204-dev/ttcs-be/internal/config"
	"github.com/tuan204-dev/ttcs-be/internal/utils"
)

// MailService delivers transactional email. Kept behind an interface
// so auth-service tests can swap in a recorder.
type MailService interface {
	SendVerifyEmail(ctx context.Context, toEmail, registerLink string) error
}

type sendgridMailService struct {
	cfg    *config.Config
	client *sendgrid.Client
}

func NewMailService(cfg *config.Config) MailService {
	return &sendgridMailService{
		cfg:    cfg,
		client: sendgrid.NewSendClient(cfg.SendGridAPIKey),
	}
}

func (s *sendgridMailService) SendVerifyEmail(_ context.Context, toEmail, registerLink string) error {
	from := mail.NewEmail("TTCS", s.cfg.SendGridFromEmail)
	to := mail.NewEmail("", toEmail)
	subject := "TTCS - Complete Your Registration"
	intro := fmt.Sprintf("Use the link below to set your password and finish creating your account. The link expires in %d minutes.", int(s.cfg.VerifyTokenTTL.Minutes()))
	plain := fmt.Sprintf("Finish creating your account: %s", registerLink)
	html := fmt.Sprintf(verifyEmailHTML, intro, registerLink, registerLink, time.Now().Year())
	msg := mail.NewSingleEmail(from, subject, to, plain, html)

	resp, err := s.client.Send(msg)
	if err != nil {
		utils.Logger.WithError(err).Errorf("Failed to send verification email to %s via SendGrid", toEmail)
		return fmt.Errorf("failed to send email via sendgrid: %w", err)
	}
	if resp.StatusCode >= 400 {
		utils.Logger.Errorf("SendGrid rejected verification email to %s: status %d", toEmail, resp.StatusCode)
		return fmt.Errorf("sendgrid rejected email: status %d", resp.StatusCode)
	}
	return nil
}
