package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/tuan204-dev/ttcs-be/internal/models"
	"github.com/tuan204-dev/ttcs-be/internal/utils"
)

type BookmarkRepository interface {
	// Create returns utils.ErrConflict when the (job, worker) pair is
	// already bookmarked; enforced by the DB unique constraint.
	Create(ctx context.Context, b *models.Bookmark) error
	DeleteByJobAndWorker(ctx context.Context, jobID, workerID uuid.UUID) (bool, error)
	ListByWorkerID(ctx context.Context, workerID uuid.UUID) ([]*models.Bookmark, error)
}

type bookmarkRepo struct {
	db DB
}

func NewBookmarkRepository(db DB) BookmarkRepository {
	return &bookmarkRepo{db: db}
}

func (r *bookmarkRepo) Create(ctx context.Context, b *models.Bookmark) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO bookmarks (id, job_id, worker_id)
        VALUES ($1, $2, $3)
    `, b.ID, b.JobID, b.WorkerID)
	if IsUniqueViolation(err) {
		return utils.ErrConflict
	}
	return err
}

func (r *bookmarkRepo) DeleteByJobAndWorker(ctx context.Context, jobID, workerID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM bookmarks WHERE job_id=$1 AND worker_id=$2`,
		jobID, workerID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *bookmarkRepo) ListByWorkerID(ctx context.Context, workerID uuid.UUID) ([]*models.Bookmark, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, job_id, worker_id, created_at
        FROM bookmarks
        WHERE worker_id=$1
        ORDER BY created_at DESC
    `, workerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Bookmark
	for rows.Next() {
		var b models.Bookmark
		if err := rows.Scan(&b.ID, &b.JobID, &b.WorkerID, &b.CreatedAt); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				break
			}
			return nil, err
		}
		out = append(out, &b)
	}
	return out, rows.Err()
}
