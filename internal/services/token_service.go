package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/tuan204-dev/ttcs-be/internal/config"
	"github.com/tuan204-dev/ttcs-be/internal/middleware"
	"github.com/tuan204-dev/ttcs-be/internal/models"
	"github.com/tuan204-dev/ttcs-be/internal/repositories"
	"github.com/tuan204-dev/ttcs-be/internal/utils"
)

const refreshTokenLength = 64

// TokenService mints access tokens and manages the refresh-token
// lifecycle. Refresh is strict rotation: the presented token is
// removed and a fresh one issued in its place.
type TokenService interface {
	IssuePair(ctx context.Context, userID uuid.UUID, role models.RoleType) (accessToken, refreshToken string, err error)
	Refresh(ctx context.Context, rawRefreshToken string, role models.RoleType) (accessToken, refreshToken string, err error)
	Revoke(ctx context.Context, rawRefreshToken string, role models.RoleType) error
}

type tokenService struct {
	cfg              *config.Config
	refreshTokenRepo repositories.RefreshTokenRepository
}

func NewTokenService(cfg *config.Config, refreshTokenRepo repositories.RefreshTokenRepository) TokenService {
	return &tokenService{cfg: cfg, refreshTokenRepo: refreshTokenRepo}
}

func (s *tokenService) IssuePair(ctx context.Context, userID uuid.UUID, role models.RoleType) (string, string, error) {
	access, err := s.issueAccessToken(userID, role)
	if err != nil {
		return "", "", err
	}

	raw := utils.SecureToken(refreshTokenLength)
	rt := &models.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		Role:      role,
		Token:     raw,
		ExpiresAt: time.Now().Add(s.cfg.RefreshTokenTTL),
	}
	if err := s.refreshTokenRepo.Create(ctx, rt); err != nil {
		return "", "", err
	}

	return access, raw, nil
}

func (s *tokenService) Refresh(ctx context.Context, rawRefreshToken string, role models.RoleType) (string, string, error) {
	stored, err := s.refreshTokenRepo.GetByToken(ctx, rawRefreshToken, role)
	if err != nil {
		return "", "", err
	}
	if stored == nil || stored.Revoked || stored.IsExpired() {
		return "", "", utils.ErrInvalidRefreshToken
	}

	// Rotation: the old token is gone before the new pair exists, so a
	// replayed token can never mint a second session.
	if err := s.refreshTokenRepo.Delete(ctx, stored.ID); err != nil {
		return "", "", err
	}

	return s.IssuePair(ctx, stored.UserID, role)
}

func (s *tokenService) Revoke(ctx context.Context, rawRefreshToken string, role models.RoleType) error {
	stored, err := s.refreshTokenRepo.GetByToken(ctx, rawRefreshToken, role)
	if err != nil {
		return err
	}
	if stored == nil {
		return utils.ErrInvalidRefreshToken
	}
	return s.refreshTokenRepo.Revoke(ctx, stored.ID)
}

func (s *tokenService) issueAccessToken(userID uuid.UUID, role models.RoleType) (string, error) {
	secret := s.cfg.WorkerAccessSecret
	if role == models.RoleRecruiter {
		secret = s.cfg.RecruiterAccessSecret
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"iss":  middleware.TokenIssuer,
		"sub":  userID.String(),
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.cfg.AccessTokenTTL).Unix(),
		"jti":  uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
