package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/tuan204-dev/ttcs-be/internal/models"
)

type RecruiterRepository interface {
	Create(ctx context.Context, rec *models.Recruiter) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Recruiter, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Recruiter, error)
	GetByEmail(ctx context.Context, email string) (*models.Recruiter, error)
}

type recruiterRepo struct {
	db DB
}

func NewRecruiterRepository(db DB) RecruiterRepository {
	return &recruiterRepo{db: db}
}

const baseSelectRecruiter = `
    SELECT id, email, password_hash, first_name, last_name, phone, gender,
           location, avatar, company_id, created_at, updated_at
    FROM recruiters
`

func (r *recruiterRepo) Create(ctx context.Context, rec *models.Recruiter) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO recruiters (
            id, email, password_hash, first_name, last_name, phone, gender,
            location, avatar, company_id
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
    `,
		rec.ID, rec.Email, rec.PasswordHash, rec.FirstName, rec.LastName,
		rec.Phone, rec.Gender, rec.Location, rec.Avatar, rec.CompanyID,
	)
	return err
}

func (r *recruiterRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Recruiter, error) {
	row := r.db.QueryRow(ctx, baseSelectRecruiter+" WHERE id=$1", id)
	return scanRecruiter(row)
}

func (r *recruiterRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Recruiter, error) {
	rows, err := r.db.Query(ctx, baseSelectRecruiter+" WHERE id = ANY($1)", ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Recruiter
	for rows.Next() {
		rec, err := scanRecruiter(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *recruiterRepo) GetByEmail(ctx context.Context, email string) (*models.Recruiter, error) {
	row := r.db.QueryRow(ctx, baseSelectRecruiter+" WHERE email=$1", email)
	return scanRecruiter(row)
}

func scanRecruiter(row pgx.Row) (*models.Recruiter, error) {
	var rec models.Recruiter
	err := row.Scan(
		&rec.ID, &rec.Email, &rec.PasswordHash, &rec.FirstName, &rec.LastName,
		&rec.Phone, &rec.Gender, &rec.Location, &rec.Avatar, &rec.CompanyID,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
