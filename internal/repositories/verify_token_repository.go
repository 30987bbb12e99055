package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/tuan204-dev/ttcs-be/internal/models"
)

type VerifyTokenRepository interface {
	// Upsert keeps at most one active token per (email, role); a new
	// request overwrites the previous token and expiry.
	Upsert(ctx context.Context, vt *models.VerifyToken) error
	GetByToken(ctx context.Context, token string, role models.RoleType) (*models.VerifyToken, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type verifyTokenRepo struct {
	db DB
}

func NewVerifyTokenRepository(db DB) VerifyTokenRepository {
	return &verifyTokenRepo{db: db}
}

func (r *verifyTokenRepo) Upsert(ctx context.Context, vt *models.VerifyToken) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO verify_tokens (id, email, role, token, expires_at)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (email, role)
        DO UPDATE SET token=EXCLUDED.token, expires_at=EXCLUDED.expires_at,
                      created_at=NOW()
    `, vt.ID, vt.Email, vt.Role, vt.Token, vt.ExpiresAt)
	return err
}

func (r *verifyTokenRepo) GetByToken(ctx context.Context, token string, role models.RoleType) (*models.VerifyToken, error) {
	row := r.db.QueryRow(ctx, `
        SELECT id, email, role, token, expires_at, created_at
        FROM verify_tokens
        WHERE token=$1 AND role=$2
    `, token, role)

	var vt models.VerifyToken
	err := row.Scan(&vt.ID, &vt.Email, &vt.Role, &vt.Token, &vt.ExpiresAt, &vt.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vt, nil
}

func (r *verifyTokenRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM verify_tokens WHERE id=$1`, id)
	return err
}
