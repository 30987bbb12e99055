package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/tuan204-dev/ttcs-be/internal/dtos"
	"github.com/tuan204-dev/ttcs-be/internal/models"
	"github.com/tuan204-dev/ttcs-be/internal/repositories"
	"github.com/tuan204-dev/ttcs-be/internal/utils"
)

// BookmarkService lets workers save jobs for later. Bookmarks survive
// a job leaving PUBLIC, but the listing only ever shows PUBLIC jobs.
type BookmarkService interface {
	Add(ctx context.Context, workerID, jobID uuid.UUID) (*models.Bookmark, error)
	Remove(ctx context.Context, workerID, jobID uuid.UUID) error
	List(ctx context.Context, workerID uuid.UUID) ([]*dtos.PublicJob, error)
}

type bookmarkService struct {
	bookmarkRepo  repositories.BookmarkRepository
	jobRepo       repositories.JobRepository
	recruiterRepo repositories.RecruiterRepository
}

func NewBookmarkService(
	bookmarkRepo repositories.BookmarkRepository,
	jobRepo repositories.JobRepository,
	recruiterRepo repositories.RecruiterRepository,
) BookmarkService {
	return &bookmarkService{
		bookmarkRepo:  bookmarkRepo,
		jobRepo:       jobRepo,
		recruiterRepo: recruiterRepo,
	}
}

func (s *bookmarkService) Add(ctx context.Context, workerID, jobID uuid.UUID) (*models.Bookmark, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil || job.Status != models.JobStatusPublic {
		return nil, utils.ErrNotFound
	}

	b := &models.Bookmark{
		ID:       uuid.New(),
		JobID:    jobID,
		WorkerID: workerID,
	}
	if err := s.bookmarkRepo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *bookmarkService) Remove(ctx context.Context, workerID, jobID uuid.UUID) error {
	found, err := s.bookmarkRepo.DeleteByJobAndWorker(ctx, jobID, workerID)
	if err != nil {
		return err
	}
	if !found {
		return utils.ErrNotFound
	}
	return nil
}

// List resolves the saved jobs and filters to those still PUBLIC.
func (s *bookmarkService) List(ctx context.Context, workerID uuid.UUID) ([]*dtos.PublicJob, error) {
	bookmarks, err := s.bookmarkRepo.ListByWorkerID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if len(bookmarks) == 0 {
		return []*dtos.PublicJob{}, nil
	}

	jobIDs := make([]uuid.UUID, 0, len(bookmarks))
	for _, b := range bookmarks {
		jobIDs = append(jobIDs, b.JobID)
	}
	jobs, err := s.jobRepo.GetByIDs(ctx, jobIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*models.Job, len(jobs))
	recruiterIDs := make([]uuid.UUID, 0)
	seen := make(map[uuid.UUID]bool)
	for _, j := range jobs {
		if j.Status != models.JobStatusPublic {
			continue
		}
		byID[j.ID] = j
		if !seen[j.RecruiterID] {
			seen[j.RecruiterID] = true
			recruiterIDs = append(recruiterIDs, j.RecruiterID)
		}
	}

	recruiters := make(map[uuid.UUID]*models.Recruiter)
	if len(recruiterIDs) > 0 {
		list, err := s.recruiterRepo.GetByIDs(ctx, recruiterIDs)
		if err != nil {
			return nil, err
		}
		for _, r := range list {
			recruiters[r.ID] = r
		}
	}

	// Bookmark order is preserved; delisted jobs are dropped.
	out := make([]*dtos.PublicJob, 0, len(bookmarks))
	for _, b := range bookmarks {
		if job := byID[b.JobID]; job != nil {
			out = append(out, dtos.NewPublicJob(job, recruiters[job.RecruiterID]))
		}
	}
	return out, nil
}
