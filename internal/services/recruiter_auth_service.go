package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tuan204-dev/ttcs-be/internal/config"
	"github.com/tuan204-dev/ttcs-be/internal/dtos"
	"github.com/tuan204-dev/ttcs-be/internal/models"
	"github.com/tuan204-dev/ttcs-be/internal/repositories"
	"github.com/tuan204-dev/ttcs-be/internal/utils"
)

// RecruiterAuthService mirrors the worker lifecycle for recruiter
// accounts. The two roles never share tokens or secrets.
type RecruiterAuthService interface {
	SendVerifyEmail(ctx context.Context, email string) error
	Register(ctx context.Context, req *dtos.RegisterRecruiterRequest) (*dtos.LoginRecruiterResponse, error)
	Login(ctx context.Context, email, password string) (*dtos.LoginRecruiterResponse, error)
	Refresh(ctx context.Context, rawRefreshToken string) (*dtos.RefreshTokenResponse, error)
	Logout(ctx context.Context, rawRefreshToken string) error
	GetInfo(ctx context.Context, recruiterID uuid.UUID) (*models.Recruiter, error)
}

type recruiterAuthService struct {
	cfg             *config.Config
	recruiterRepo   repositories.RecruiterRepository
	verifyTokenRepo repositories.VerifyTokenRepository
	tokenService    TokenService
	mailService     MailService
}

func NewRecruiterAuthService(
	cfg *config.Config,
	recruiterRepo repositories.RecruiterRepository,
	verifyTokenRepo repositories.VerifyTokenRepository,
	tokenService TokenService,
	mailService MailService,
) RecruiterAuthService {
	return &recruiterAuthService{
		cfg:             cfg,
		recruiterRepo:   recruiterRepo,
		verifyTokenRepo: verifyTokenRepo,
		tokenService:    tokenService,
		mailService:     mailService,
	}
}

func (s *recruiterAuthService) SendVerifyEmail(ctx context.Context, email string) error {
	existing, err := s.recruiterRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return utils.ErrEmailExists
	}

	vt := &models.VerifyToken{
		ID:        uuid.New(),
		Email:     email,
		Role:      models.RoleRecruiter,
		Token:     utils.SecureToken(verifyTokenLength),
		ExpiresAt: time.Now().Add(s.cfg.VerifyTokenTTL),
	}
	if err := s.verifyTokenRepo.Upsert(ctx, vt); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/auth/register/create?token=%s", s.cfg.FrontendURL, vt.Token)
	return s.mailService.SendVerifyEmail(ctx, email, link)
}

func (s *recruiterAuthService) Register(ctx context.Context, req *dtos.RegisterRecruiterRequest) (*dtos.LoginRecruiterResponse, error) {
	vt, err := s.verifyTokenRepo.GetByToken(ctx, req.Token, models.RoleRecruiter)
	if err != nil {
		return nil, err
	}
	if vt == nil || vt.IsExpired() {
		return nil, utils.ErrInvalidVerifyToken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	gender := models.GenderUnknown
	if req.Gender != "" {
		gender = models.GenderType(req.Gender)
	}

	recruiter := &models.Recruiter{
		ID:           uuid.New(),
		Email:        vt.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Gender:       gender,
		Location:     req.Location,
		Avatar:       req.Avatar,
	}
	if err := s.recruiterRepo.Create(ctx, recruiter); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, utils.ErrEmailExists
		}
		return nil, err
	}

	if err := s.verifyTokenRepo.Delete(ctx, vt.ID); err != nil {
		utils.Logger.WithError(err).Warnf("Failed to delete consumed verify token for %s", vt.Email)
	}

	created, err := s.recruiterRepo.GetByID(ctx, recruiter.ID)
	if err != nil {
		return nil, err
	}

	access, refresh, err := s.tokenService.IssuePair(ctx, recruiter.ID, models.RoleRecruiter)
	if err != nil {
		return nil, err
	}

	return &dtos.LoginRecruiterResponse{Recruiter: created, AccessToken: access, RefreshToken: refresh}, nil
}

func (s *recruiterAuthService) Login(ctx context.Context, email, password string) (*dtos.LoginRecruiterResponse, error) {
	recruiter, err := s.recruiterRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if recruiter == nil || !utils.CheckPasswordHash(password, recruiter.PasswordHash) {
		return nil, utils.ErrInvalidCredentials
	}

	access, refresh, err := s.tokenService.IssuePair(ctx, recruiter.ID, models.RoleRecruiter)
	if err != nil {
		return nil, err
	}

	return &dtos.LoginRecruiterResponse{Recruiter: recruiter, AccessToken: access, RefreshToken: refresh}, nil
}

func (s *recruiterAuthService) Refresh(ctx context.Context, rawRefreshToken string) (*dtos.RefreshTokenResponse, error) {
	access, refresh, err := s.tokenService.Refresh(ctx, rawRefreshToken, models.RoleRecruiter)
	if err != nil {
		return nil, err
	}
	return &dtos.RefreshTokenResponse{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *recruiterAuthService) Logout(ctx context.Context, rawRefreshToken string) error {
	return s.tokenService.Revoke(ctx, rawRefreshToken, models.RoleRecruiter)
}

func (s *recruiterAuthService) GetInfo(ctx context.Context, recruiterID uuid.UUID) (*models.Recruiter, error) {
	recruiter, err := s.recruiterRepo.GetByID(ctx, recruiterID)
	if err != nil {
		return nil, err
	}
	if recruiter == nil {
		return nil, utils.ErrNotFound
	}
	return recruiter, nil
}
