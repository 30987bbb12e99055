package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tuan204-dev/ttcs-be/internal/dtos"
	"github.com/tuan204-dev/ttcs-be/internal/middleware"
	"github.com/tuan204-dev/ttcs-be/internal/models"
	"github.com/tuan204-dev/ttcs-be/internal/repositories"
	"github.com/tuan204-dev/ttcs-be/internal/utils"
)

// RecruitingService drives an application from APPLIED through the
// pipeline, and carries the message thread between the two parties.
// Ownership failures surface as ErrNotFound so callers cannot probe
// for records they are not part of.
type RecruitingService interface {
	Apply(ctx context.Context, workerID, jobID uuid.UUID) (*dtos.WorkerRecruiting, error)
	Advance(ctx context.Context, recruiterID, recruitingID uuid.UUID) (*models.Recruiting, error)
	Reject(ctx context.Context, recruiterID, recruitingID uuid.UUID) (*models.Recruiting, error)
	SendMessage(ctx context.Context, caller *middleware.Identity, recruitingID uuid.UUID, content string) (*dtos.RecruitingThread, error)
	GetThread(ctx context.Context, caller *middleware.Identity, recruitingID uuid.UUID) (*dtos.RecruitingThread, error)
	ListForWorker(ctx context.Context, workerID uuid.UUID) ([]*dtos.WorkerRecruiting, error)
	ListForJob(ctx context.Context, recruiterID, jobID uuid.UUID) ([]*dtos.JobApplicant, error)
}

type recruitingService struct {
	recruitingRepo repositories.RecruitingRepository
	jobRepo        repositories.JobRepository
	workerRepo     repositories.WorkerRepository
	recruiterRepo  repositories.RecruiterRepository
}

func NewRecruitingService(
	recruitingRepo repositories.RecruitingRepository,
	jobRepo repositories.JobRepository,
	workerRepo repositories.WorkerRepository,
	recruiterRepo repositories.RecruiterRepository,
) RecruitingService {
	return &recruitingService{
		recruitingRepo: recruitingRepo,
		jobRepo:        jobRepo,
		workerRepo:     workerRepo,
		recruiterRepo:  recruiterRepo,
	}
}

// Apply creates the application in APPLIED. Any existing job accepts
// applications regardless of status; a second apply for the same job
// is a conflict, which the unique constraint also guarantees under
// concurrency.
func (s *recruitingService) Apply(ctx context.Context, workerID, jobID uuid.UUID) (*dtos.WorkerRecruiting, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, utils.ErrNotFound
	}

	rec := &models.Recruiting{
		ID:       uuid.New(),
		JobID:    jobID,
		WorkerID: workerID,
		Progress: models.ProgressApplied,
	}
	if err := s.recruitingRepo.Create(ctx, rec); err != nil {
		return nil, err
	}

	created, err := s.recruitingRepo.GetByID(ctx, rec.ID)
	if err != nil {
		return nil, err
	}

	enriched, err := s.enrichForWorker(ctx, []*models.Recruiting{created})
	if err != nil {
		return nil, err
	}
	return enriched[0], nil
}

// Advance moves the application one step up the ladder. On a terminal
// state the current state is re-persisted unchanged, so the call still
// succeeds and still bumps updated_at.
func (s *recruitingService) Advance(ctx context.Context, recruiterID, recruitingID uuid.UUID) (*models.Recruiting, error) {
	rec, err := s.ownedRecruiting(ctx, recruiterID, recruitingID)
	if err != nil {
		return nil, err
	}

	next, _ := rec.Progress.Next()
	updated, err := s.recruitingRepo.UpdateProgress(ctx, rec.ID, next)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, utils.ErrNotFound
	}
	return updated, nil
}

// Reject is unconditional: any state, terminal included, moves to
// REJECTED.
func (s *recruitingService) Reject(ctx context.Context, recruiterID, recruitingID uuid.UUID) (*models.Recruiting, error) {
	rec, err := s.ownedRecruiting(ctx, recruiterID, recruitingID)
	if err != nil {
		return nil, err
	}

	updated, err := s.recruitingRepo.UpdateProgress(ctx, rec.ID, models.ProgressRejected)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, utils.ErrNotFound
	}
	return updated, nil
}

func (s *recruitingService) SendMessage(ctx context.Context, caller *middleware.Identity, recruitingID uuid.UUID, content string) (*dtos.RecruitingThread, error) {
	if strings.TrimSpace(content) == "" {
		return nil, utils.ErrEmptyMessage
	}

	rec, job, err := s.participantRecruiting(ctx, caller, recruitingID)
	if err != nil {
		return nil, err
	}

	msg := models.Message{
		SenderType: models.SenderType(caller.Role),
		Content:    strings.TrimSpace(content),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.recruitingRepo.AppendMessage(ctx, rec.ID, msg); err != nil {
		return nil, err
	}

	updated, err := s.recruitingRepo.GetByID(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	return s.buildThread(ctx, updated, job)
}

func (s *recruitingService) GetThread(ctx context.Context, caller *middleware.Identity, recruitingID uuid.UUID) (*dtos.RecruitingThread, error) {
	rec, job, err := s.participantRecruiting(ctx, caller, recruitingID)
	if err != nil {
		return nil, err
	}
	return s.buildThread(ctx, rec, job)
}

func (s *recruitingService) ListForWorker(ctx context.Context, workerID uuid.UUID) ([]*dtos.WorkerRecruiting, error) {
	recs, err := s.recruitingRepo.ListByWorkerID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	return s.enrichForWorker(ctx, recs)
}

func (s *recruitingService) ListForJob(ctx context.Context, recruiterID, jobID uuid.UUID) ([]*dtos.JobApplicant, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil || job.RecruiterID != recruiterID {
		return nil, utils.ErrNotFound
	}

	recs, err := s.recruitingRepo.ListByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	workerIDs := make([]uuid.UUID, 0, len(recs))
	for _, rec := range recs {
		workerIDs = append(workerIDs, rec.WorkerID)
	}
	workers := make(map[uuid.UUID]*models.Worker)
	if len(workerIDs) > 0 {
		list, err := s.workerRepo.GetByIDs(ctx, workerIDs)
		if err != nil {
			return nil, err
		}
		for _, w := range list {
			workers[w.ID] = w
		}
	}

	out := make([]*dtos.JobApplicant, 0, len(recs))
	for _, rec := range recs {
		out = append(out, &dtos.JobApplicant{
			ID:          rec.ID,
			Progress:    rec.Progress,
			Worker:      dtos.NewWorkerSummary(workers[rec.WorkerID]),
			LastMessage: rec.LastMessage,
			CreatedAt:   rec.CreatedAt,
			UpdatedAt:   rec.UpdatedAt,
		})
	}
	return out, nil
}

// ownedRecruiting resolves a recruiting record and checks that the
// caller owns the job it belongs to.
func (s *recruitingService) ownedRecruiting(ctx context.Context, recruiterID, recruitingID uuid.UUID) (*models.Recruiting, error) {
	rec, err := s.recruitingRepo.GetByID(ctx, recruitingID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, utils.ErrNotFound
	}

	job, err := s.jobRepo.GetByID(ctx, rec.JobID)
	if err != nil {
		return nil, err
	}
	if job == nil || job.RecruiterID != recruiterID {
		return nil, utils.ErrNotFound
	}
	return rec, nil
}

// participantRecruiting resolves a recruiting record for either party
// of the conversation: the applicant worker or the job's recruiter.
func (s *recruitingService) participantRecruiting(ctx context.Context, caller *middleware.Identity, recruitingID uuid.UUID) (*models.Recruiting, *models.Job, error) {
	rec, err := s.recruitingRepo.GetByID(ctx, recruitingID)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, utils.ErrNotFound
	}

	job, err := s.jobRepo.GetByID(ctx, rec.JobID)
	if err != nil {
		return nil, nil, err
	}
	if job == nil {
		return nil, nil, utils.ErrNotFound
	}

	switch caller.Role {
	case models.RoleWorker:
		if rec.WorkerID != caller.UserID {
			return nil, nil, utils.ErrNotFound
		}
	case models.RoleRecruiter:
		if job.RecruiterID != caller.UserID {
			return nil, nil, utils.ErrNotFound
		}
	default:
		return nil, nil, utils.ErrNotFound
	}
	return rec, job, nil
}

func (s *recruitingService) buildThread(ctx context.Context, rec *models.Recruiting, job *models.Job) (*dtos.RecruitingThread, error) {
	worker, err := s.workerRepo.GetByID(ctx, rec.WorkerID)
	if err != nil {
		return nil, err
	}
	recruiter, err := s.recruiterRepo.GetByID(ctx, job.RecruiterID)
	if err != nil {
		return nil, err
	}

	messages := rec.Messages
	if messages == nil {
		messages = []models.Message{}
	}

	return &dtos.RecruitingThread{
		ID:        rec.ID,
		Progress:  rec.Progress,
		Job:       dtos.NewPublicJob(job, recruiter),
		Worker:    dtos.NewWorkerSummary(worker),
		Messages:  messages,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}, nil
}

func (s *recruitingService) enrichForWorker(ctx context.Context, recs []*models.Recruiting) ([]*dtos.WorkerRecruiting, error) {
	jobIDs := make([]uuid.UUID, 0, len(recs))
	seen := make(map[uuid.UUID]bool)
	for _, rec := range recs {
		if !seen[rec.JobID] {
			seen[rec.JobID] = true
			jobIDs = append(jobIDs, rec.JobID)
		}
	}

	jobs := make(map[uuid.UUID]*models.Job)
	recruiterIDs := make([]uuid.UUID, 0)
	seenRecruiter := make(map[uuid.UUID]bool)
	if len(jobIDs) > 0 {
		list, err := s.jobRepo.GetByIDs(ctx, jobIDs)
		if err != nil {
			return nil, err
		}
		for _, j := range list {
			jobs[j.ID] = j
			if !seenRecruiter[j.RecruiterID] {
				seenRecruiter[j.RecruiterID] = true
				recruiterIDs = append(recruiterIDs, j.RecruiterID)
			}
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

	out := make([]*dtos.WorkerRecruiting, 0, len(recs))
	for _, rec := range recs {
		var jobView *dtos.PublicJob
		if job := jobs[rec.JobID]; job != nil {
			jobView = dtos.NewPublicJob(job, recruiters[job.RecruiterID])
		}
		out = append(out, &dtos.WorkerRecruiting{
			ID:          rec.ID,
			Progress:    rec.Progress,
			Job:         jobView,
			LastMessage: rec.LastMessage,
			CreatedAt:   rec.CreatedAt,
			UpdatedAt:   rec.UpdatedAt,
		})
	}
	return out, nil
}
