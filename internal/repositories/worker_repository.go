package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/tuan204-dev/ttcs-be/internal/models"
)

type WorkerRepository interface {
	Create(ctx context.Context, w *models.Worker) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Worker, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Worker, error)
	GetByEmail(ctx context.Context, email string) (*models.Worker, error)
	Update(ctx context.Context, w *models.Worker) error
}

type workerRepo struct {
	db DB
}

func NewWorkerRepository(db DB) WorkerRepository {
	return &workerRepo{db: db}
}

const baseSelectWorker = `
    SELECT id, email, password_hash, first_name, last_name, phone, gender,
           location, avatar, education, skills, is_open_to_offer,
           date_of_birth, description, career_orientation,
           created_at, updated_at
    FROM workers
`

func (r *workerRepo) Create(ctx context.Context, w *models.Worker) error {
	skills, err := json.Marshal(w.Skills)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
        INSERT INTO workers (
            id, email, password_hash, first_name, last_name, phone, gender,
            location, avatar, education, skills, is_open_to_offer,
            date_of_birth, description, career_orientation
        ) VALUES (
            $1,$2,$3,$4,$5,$6,$7,
            $8,$9,$10,$11,$12,
            $13,$14,$15
        )
    `,
		w.ID, w.Email, w.PasswordHash, w.FirstName, w.LastName, w.Phone, w.Gender,
		w.Location, w.Avatar, w.Education, skills, w.IsOpenToOffer,
		w.DateOfBirth, w.Description, w.CareerOrientation,
	)
	return err
}

func (r *workerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Worker, error) {
	row := r.db.QueryRow(ctx, baseSelectWorker+" WHERE id=$1", id)
	return scanWorker(row)
}

func (r *workerRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Worker, error) {
	rows, err := r.db.Query(ctx, baseSelectWorker+" WHERE id = ANY($1)", ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *workerRepo) GetByEmail(ctx context.Context, email string) (*models.Worker, error) {
	row := r.db.QueryRow(ctx, baseSelectWorker+" WHERE email=$1", email)
	return scanWorker(row)
}

func (r *workerRepo) Update(ctx context.Context, w *models.Worker) error {
	skills, err := json.Marshal(w.Skills)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
        UPDATE workers
        SET first_name=$2, last_name=$3, phone=$4, gender=$5, location=$6,
            avatar=$7, education=$8, skills=$9, is_open_to_offer=$10,
            date_of_birth=$11, description=$12, career_orientation=$13,
            updated_at=NOW()
        WHERE id=$1
    `,
		w.ID, w.FirstName, w.LastName, w.Phone, w.Gender, w.Location,
		w.Avatar, w.Education, skills, w.IsOpenToOffer,
		w.DateOfBirth, w.Description, w.CareerOrientation,
	)
	return err
}

func scanWorker(row pgx.Row) (*models.Worker, error) {
	var w models.Worker
	var skills []byte
	err := row.Scan(
		&w.ID, &w.Email, &w.PasswordHash, &w.FirstName, &w.LastName, &w.Phone, &w.Gender,
		&w.Location, &w.Avatar, &w.Education, &skills, &w.IsOpenToOffer,
		&w.DateOfBirth, &w.Description, &w.CareerOrientation,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &w.Skills); err != nil {
			return nil, err
		}
	}
	return &w, nil
}
