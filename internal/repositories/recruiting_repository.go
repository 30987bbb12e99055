package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/tuan204-dev/ttcs-be/internal/models"
	"github.com/tuan204-dev/ttcs-be/internal/utils"
)

type RecruitingRepository interface {
	// Create inserts the record; returns utils.ErrConflict when a record
	// for the same (job, worker) pair already exists. The uniqueness
	// guarantee lives in the DB constraint so concurrent applies are safe.
	Create(ctx context.Context, rec *models.Recruiting) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Recruiting, error)
	ListByWorkerID(ctx context.Context, workerID uuid.UUID) ([]*models.Recruiting, error)
	ListByJobID(ctx context.Context, jobID uuid.UUID) ([]*models.Recruiting, error)
	UpdateProgress(ctx context.Context, id uuid.UUID, progress models.RecruitingProgress) (*models.Recruiting, error)
	// AppendMessage appends to the thread and refreshes last_message in
	// one atomic statement.
	AppendMessage(ctx context.Context, id uuid.UUID, msg models.Message) error
}

type recruitingRepo struct {
	db DB
}

func NewRecruitingRepository(db DB) RecruitingRepository {
	return &recruitingRepo{db: db}
}

const baseSelectRecruiting = `
    SELECT id, job_id, worker_id, progress, messages, last_message,
           created_at, updated_at
    FROM recruitings
`

// List queries drop the message bodies; the thread is only loaded for
// the detail view.
const baseSelectRecruitingNoMessages = `
    SELECT id, job_id, worker_id, progress, '[]'::jsonb, last_message,
           created_at, updated_at
    FROM recruitings
`

func (r *recruitingRepo) Create(ctx context.Context, rec *models.Recruiting) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO recruitings (id, job_id, worker_id, progress, messages)
        VALUES ($1, $2, $3, $4, '[]'::jsonb)
    `, rec.ID, rec.JobID, rec.WorkerID, rec.Progress)
	if IsUniqueViolation(err) {
		return utils.ErrConflict
	}
	return err
}

func (r *recruitingRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Recruiting, error) {
	row := r.db.QueryRow(ctx, baseSelectRecruiting+" WHERE id=$1", id)
	return scanRecruiting(row)
}

func (r *recruitingRepo) ListByWorkerID(ctx context.Context, workerID uuid.UUID) ([]*models.Recruiting, error) {
	rows, err := r.db.Query(ctx,
		baseSelectRecruitingNoMessages+" WHERE worker_id=$1 ORDER BY created_at DESC",
		workerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecruitings(rows)
}

func (r *recruitingRepo) ListByJobID(ctx context.Context, jobID uuid.UUID) ([]*models.Recruiting, error) {
	rows, err := r.db.Query(ctx,
		baseSelectRecruitingNoMessages+" WHERE job_id=$1 ORDER BY created_at DESC",
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecruitings(rows)
}

func (r *recruitingRepo) UpdateProgress(ctx context.Context, id uuid.UUID, progress models.RecruitingProgress) (*models.Recruiting, error) {
	row := r.db.QueryRow(ctx, `
        UPDATE recruitings SET progress=$2, updated_at=NOW()
        WHERE id=$1
        RETURNING id, job_id, worker_id, progress, messages, last_message,
                  created_at, updated_at
    `, id, progress)
	return scanRecruiting(row)
}

func (r *recruitingRepo) AppendMessage(ctx context.Context, id uuid.UUID, msg models.Message) error {
	single, err := json.Marshal([]models.Message{msg})
	if err != nil {
		return err
	}
	last, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, `
        UPDATE recruitings
        SET messages = messages || $2::jsonb,
            last_message = $3::jsonb,
            updated_at = NOW()
        WHERE id = $1
    `, id, single, last)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func scanRecruiting(row pgx.Row) (*models.Recruiting, error) {
	var rec models.Recruiting
	var messages, last []byte
	err := row.Scan(
		&rec.ID, &rec.JobID, &rec.WorkerID, &rec.Progress, &messages, &last,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(messages) > 0 {
		if err := json.Unmarshal(messages, &rec.Messages); err != nil {
			return nil, err
		}
	}
	if len(last) > 0 {
		var m models.Message
		if err := json.Unmarshal(last, &m); err != nil {
			return nil, err
		}
		rec.LastMessage = &m
	}
	return &rec, nil
}

func collectRecruitings(rows pgx.Rows) ([]*models.Recruiting, error) {
	var out []*models.Recruiting
	for rows.Next() {
		rec, err := scanRecruiting(rows)
		if err != nil {
			return nil, err
		}
		rec.Messages = nil
		out = append(out, rec)
	}
	return out, rows.Err()
}
