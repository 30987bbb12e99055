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

const verifyTokenLength = 64

// WorkerAuthService covers the worker account lifecycle: two-step
// registration, login, token refresh, logout, and profile lookup.
type WorkerAuthService interface {
	SendVerifyEmail(ctx context.Context, email string) error
	Register(ctx context.Context, req *dtos.RegisterWorkerRequest) (*dtos.LoginWorkerResponse, error)
	Login(ctx context.Context, email, password string) (*dtos.LoginWorkerResponse, error)
	Refresh(ctx context.Context, rawRefreshToken string) (*dtos.RefreshTokenResponse, error)
	Logout(ctx context.Context, rawRefreshToken string) error
	GetInfo(ctx context.Context, workerID uuid.UUID) (*models.Worker, error)
	UpdateInfo(ctx context.Context, workerID uuid.UUID, req *dtos.UpdateWorkerRequest) (*models.Worker, error)
}

type workerAuthService struct {
	cfg             *config.Config
	workerRepo      repositories.WorkerRepository
	verifyTokenRepo repositories.VerifyTokenRepository
	tokenService    TokenService
	mailService     MailService
}

func NewWorkerAuthService(
	cfg *config.Config,
	workerRepo repositories.WorkerRepository,
	verifyTokenRepo repositories.VerifyTokenRepository,
	tokenService TokenService,
	mailService MailService,
) WorkerAuthService {
	return &workerAuthService{
		cfg:             cfg,
		workerRepo:      workerRepo,
		verifyTokenRepo: verifyTokenRepo,
		tokenService:    tokenService,
		mailService:     mailService,
	}
}

// SendVerifyEmail starts registration. Re-sending for the same email
// overwrites the previous token, so only the latest link works.
func (s *workerAuthService) SendVerifyEmail(ctx context.Context, email string) error {
	existing, err := s.workerRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return utils.ErrEmailExists
	}

	vt := &models.VerifyToken{
		ID:        uuid.New(),
		Email:     email,
		Role:      models.RoleWorker,
		Token:     utils.SecureToken(verifyTokenLength),
		ExpiresAt: time.Now().Add(s.cfg.VerifyTokenTTL),
	}
	if err := s.verifyTokenRepo.Upsert(ctx, vt); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/auth/register/create?token=%s", s.cfg.FrontendURL, vt.Token)
	return s.mailService.SendVerifyEmail(ctx, email, link)
}

// Register finishes registration by consuming the emailed token. The
// account email comes from the token record, never from the request.
func (s *workerAuthService) Register(ctx context.Context, req *dtos.RegisterWorkerRequest) (*dtos.LoginWorkerResponse, error) {
	vt, err := s.verifyTokenRepo.GetByToken(ctx, req.Token, models.RoleWorker)
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

	worker := &models.Worker{
		ID:                uuid.New(),
		Email:             vt.Email,
		PasswordHash:      hash,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Phone:             req.Phone,
		Gender:            gender,
		Location:          req.Location,
		Avatar:            req.Avatar,
		Education:         req.Education,
		Skills:            req.Skills,
		Description:       req.Description,
		CareerOrientation: req.CareerOrientation,
	}
	if err := s.workerRepo.Create(ctx, worker); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, utils.ErrEmailExists
		}
		return nil, err
	}

	if err := s.verifyTokenRepo.Delete(ctx, vt.ID); err != nil {
		utils.Logger.WithError(err).Warnf("Failed to delete consumed verify token for %s", vt.Email)
	}

	created, err := s.workerRepo.GetByID(ctx, worker.ID)
	if err != nil {
		return nil, err
	}

	access, refresh, err := s.tokenService.IssuePair(ctx, worker.ID, models.RoleWorker)
	if err != nil {
		return nil, err
	}

	return &dtos.LoginWorkerResponse{Worker: created, AccessToken: access, RefreshToken: refresh}, nil
}

func (s *workerAuthService) Login(ctx context.Context, email, password string) (*dtos.LoginWorkerResponse, error) {
	worker, err := s.workerRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if worker == nil || !utils.CheckPasswordHash(password, worker.PasswordHash) {
		return nil, utils.ErrInvalidCredentials
	}

	access, refresh, err := s.tokenService.IssuePair(ctx, worker.ID, models.RoleWorker)
	if err != nil {
		return nil, err
	}

	return &dtos.LoginWorkerResponse{Worker: worker, AccessToken: access, RefreshToken: refresh}, nil
}

func (s *workerAuthService) Refresh(ctx context.Context, rawRefreshToken string) (*dtos.RefreshTokenResponse, error) {
	access, refresh, err := s.tokenService.Refresh(ctx, rawRefreshToken, models.RoleWorker)
	if err != nil {
		return nil, err
	}
	return &dtos.RefreshTokenResponse{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *workerAuthService) Logout(ctx context.Context, rawRefreshToken string) error {
	return s.tokenService.Revoke(ctx, rawRefreshToken, models.RoleWorker)
}

func (s *workerAuthService) GetInfo(ctx context.Context, workerID uuid.UUID) (*models.Worker, error) {
	worker, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, utils.ErrNotFound
	}
	return worker, nil
}

// UpdateInfo applies a partial profile update; email and password are
// never touched here.
func (s *workerAuthService) UpdateInfo(ctx context.Context, workerID uuid.UUID, req *dtos.UpdateWorkerRequest) (*models.Worker, error) {
	worker, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, utils.ErrNotFound
	}

	if req.FirstName != nil {
		worker.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		worker.LastName = *req.LastName
	}
	if req.Phone != nil {
		worker.Phone = *req.Phone
	}
	if req.Gender != nil {
		worker.Gender = models.GenderType(*req.Gender)
	}
	if req.Location != nil {
		worker.Location = *req.Location
	}
	if req.Avatar != nil {
		worker.Avatar = *req.Avatar
	}
	if req.Education != nil {
		worker.Education = *req.Education
	}
	if req.Skills != nil {
		worker.Skills = *req.Skills
	}
	if req.IsOpenToOffer != nil {
		worker.IsOpenToOffer = *req.IsOpenToOffer
	}
	if req.DateOfBirth != nil {
		worker.DateOfBirth = req.DateOfBirth
	}
	if req.Description != nil {
		worker.Description = *req.Description
	}
	if req.CareerOrientation != nil {
		worker.CareerOrientation = *req.CareerOrientation
	}

	if err := s.workerRepo.Update(ctx, worker); err != nil {
		return nil, err
	}
	return s.workerRepo.GetByID(ctx, workerID)
}
