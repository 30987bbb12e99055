package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/tuan204-dev/ttcs-be/internal/dtos"
	"github.com/tuan204-dev/ttcs-be/internal/models"
	"github.com/tuan204-dev/ttcs-be/internal/repositories"
	"github.com/tuan204-dev/ttcs-be/internal/utils"
)

// JobService owns the posting lifecycle on the recruiter side and the
// public catalog on the worker side. Every mutation checks ownership
// and reports a missing or foreign job the same way, as ErrNotFound.
type JobService interface {
	Create(ctx context.Context, recruiterID uuid.UUID, req *dtos.CreateJobRequest) (*models.Job, error)
	Edit(ctx context.Context, recruiterID, jobID uuid.UUID, req *dtos.EditJobRequest) (*models.Job, error)
	SetStatus(ctx context.Context, recruiterID, jobID uuid.UUID, status models.JobStatusType) (*models.Job, error)
	ListOwn(ctx context.Context, recruiterID uuid.UUID, f repositories.JobFilter) ([]*models.Job, error)
	GetOwn(ctx context.Context, recruiterID, jobID uuid.UUID) (*models.Job, error)
	ListPublic(ctx context.Context, f repositories.PublicJobFilter) ([]*dtos.PublicJob, error)
	GetPublic(ctx context.Context, jobID uuid.UUID) (*dtos.PublicJob, error)
}

type jobService struct {
	jobRepo       repositories.JobRepository
	recruiterRepo repositories.RecruiterRepository
}

func NewJobService(jobRepo repositories.JobRepository, recruiterRepo repositories.RecruiterRepository) JobService {
	return &jobService{jobRepo: jobRepo, recruiterRepo: recruiterRepo}
}

// Create always starts a job in DRAFT; publishing is a separate,
// explicit transition.
func (s *jobService) Create(ctx context.Context, recruiterID uuid.UUID, req *dtos.CreateJobRequest) (*models.Job, error) {
	recruiter, err := s.recruiterRepo.GetByID(ctx, recruiterID)
	if err != nil {
		return nil, err
	}
	if recruiter == nil {
		return nil, utils.ErrNotFound
	}

	job := &models.Job{
		ID:               uuid.New(),
		Title:            req.Title,
		Description:      req.Description,
		Location:         req.Location,
		SalaryRange:      req.SalaryRange,
		JobType:          models.JobTypeType(req.JobType),
		SkillsRequired:   req.SkillsRequired,
		Responsibilities: req.Responsibilities,
		Requirements:     req.Requirements,
		Benefits:         req.Benefits,
		RecruiterID:      recruiterID,
		CompanyID:        recruiter.CompanyID,
		Status:           models.JobStatusDraft,
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return s.jobRepo.GetByID(ctx, job.ID)
}

func (s *jobService) Edit(ctx context.Context, recruiterID, jobID uuid.UUID, req *dtos.EditJobRequest) (*models.Job, error) {
	job, err := s.ownedJob(ctx, recruiterID, jobID)
	if err != nil {
		return nil, err
	}

	job.Title = req.Title
	job.Description = req.Description
	job.Location = req.Location
	job.SalaryRange = req.SalaryRange
	job.JobType = models.JobTypeType(req.JobType)
	job.SkillsRequired = req.SkillsRequired
	job.Responsibilities = req.Responsibilities
	job.Requirements = req.Requirements
	job.Benefits = req.Benefits

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return s.jobRepo.GetByID(ctx, job.ID)
}

func (s *jobService) SetStatus(ctx context.Context, recruiterID, jobID uuid.UUID, status models.JobStatusType) (*models.Job, error) {
	if !status.IsValidTarget() {
		return nil, utils.ErrConflict
	}

	if _, err := s.ownedJob(ctx, recruiterID, jobID); err != nil {
		return nil, err
	}

	updated, err := s.jobRepo.UpdateStatus(ctx, jobID, status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, utils.ErrNotFound
	}
	return updated, nil
}

func (s *jobService) ListOwn(ctx context.Context, recruiterID uuid.UUID, f repositories.JobFilter) ([]*models.Job, error) {
	f.RecruiterID = &recruiterID
	return s.jobRepo.List(ctx, f)
}

func (s *jobService) GetOwn(ctx context.Context, recruiterID, jobID uuid.UUID) (*models.Job, error) {
	return s.ownedJob(ctx, recruiterID, jobID)
}

func (s *jobService) ListPublic(ctx context.Context, f repositories.PublicJobFilter) ([]*dtos.PublicJob, error) {
	jobs, err := s.jobRepo.ListPublic(ctx, f)
	if err != nil {
		return nil, err
	}
	return s.enrichJobs(ctx, jobs)
}

func (s *jobService) GetPublic(ctx context.Context, jobID uuid.UUID) (*dtos.PublicJob, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil || job.Status != models.JobStatusPublic {
		return nil, utils.ErrNotFound
	}

	enriched, err := s.enrichJobs(ctx, []*models.Job{job})
	if err != nil {
		return nil, err
	}
	return enriched[0], nil
}

// ownedJob resolves a job and verifies ownership. A job owned by
// another recruiter is reported as missing, not forbidden.
func (s *jobService) ownedJob(ctx context.Context, recruiterID, jobID uuid.UUID) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil || job.RecruiterID != recruiterID {
		return nil, utils.ErrNotFound
	}
	return job, nil
}

func (s *jobService) enrichJobs(ctx context.Context, jobs []*models.Job) ([]*dtos.PublicJob, error) {
	recruiterIDs := make([]uuid.UUID, 0, len(jobs))
	seen := make(map[uuid.UUID]bool)
	for _, j := range jobs {
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

	out := make([]*dtos.PublicJob, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, dtos.NewPublicJob(j, recruiters[j.RecruiterID]))
	}
	return out, nil
}
