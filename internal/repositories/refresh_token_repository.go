package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/tuan204-dev/ttcs-be/internal/models"
)

type RefreshTokenRepository interface {
	Create(ctx context.Context, rt *models.RefreshToken) error
	// GetByToken looks up by the hash of the presented raw token.
	GetByToken(ctx context.Context, raw string, role models.RoleType) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type refreshTokenRepo struct {
	db     DB
	hashFn func(string) string
}

func NewRefreshTokenRepository(db DB, hashFn func(string) string) RefreshTokenRepository {
	return &refreshTokenRepo{db: db, hashFn: hashFn}
}

func (r *refreshTokenRepo) Create(ctx context.Context, rt *models.RefreshToken) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO refresh_tokens (id, user_id, role, token_hash, expires_at, revoked)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, rt.ID, rt.UserID, rt.Role, r.hashFn(rt.Token), rt.ExpiresAt, rt.Revoked)
	return err
}

func (r *refreshTokenRepo) GetByToken(ctx context.Context, raw string, role models.RoleType) (*models.RefreshToken, error) {
	row := r.db.QueryRow(ctx, `
        SELECT id, user_id, role, token_hash, expires_at, revoked, created_at
        FROM refresh_tokens
        WHERE token_hash=$1 AND role=$2
    `, r.hashFn(raw), role)

	var rt models.RefreshToken
	err := row.Scan(&rt.ID, &rt.UserID, &rt.Role, &rt.Token, &rt.ExpiresAt, &rt.Revoked, &rt.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *refreshTokenRepo) Revoke(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE refresh_tokens SET revoked=TRUE WHERE id=$1`, id)
	return err
}

func (r *refreshTokenRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE id=$1`, id)
	return err
}
