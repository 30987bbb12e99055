package controllers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/tuan204-dev/ttcs-be/internal/dtos"
	"github.com/tuan204-dev/ttcs-be/internal/models"
	"github.com/tuan204-dev/ttcs-be/internal/repositories"
	"github.com/tuan204-dev/ttcs-be/internal/services"
	"github.com/tuan204-dev/ttcs-be/internal/utils"
)

type JobController struct {
	jobService services.JobService
}

func NewJobController(jobService services.JobService) *JobController {
	return &JobController{jobService: jobService}
}

// ----------------------
// Recruiter surface
// ----------------------

func (c *JobController) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	var req dtos.CreateJobRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	job, err := c.jobService.Create(r.Context(), identity.UserID, &req)
	if err != nil {
		utils.HandleServiceError(w, err, "Failed to create job")
		return
	}
	utils.RespondData(w, http.StatusCreated, "", job)
}

func (c *JobController) Edit(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	jobID, ok := pathUUID(w, r, "jobId")
	if !ok {
		return
	}

	var req dtos.EditJobRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	job, err := c.jobService.Edit(r.Context(), identity.UserID, jobID, &req)
	if err != nil {
		utils.HandleServiceError(w, err, "Failed to edit job")
		return
	}
	utils.RespondData(w, http.StatusOK, "", job)
}

func (c *JobController) ListOwn(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	f := repositories.JobFilter{Title: q.Get("title")}
	if raw := q.Get("company_id"); raw != "" {
		companyID, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid company id")
			return
		}
		f.CompanyID = &companyID
	}
	for _, jt := range q["job_type"] {
		f.JobTypes = append(f.JobTypes, models.JobTypeType(jt))
	}
	for _, st := range q["status"] {
		f.Statuses = append(f.Statuses, models.JobStatusType(st))
	}

	jobs, err := c.jobService.ListOwn(r.Context(), identity.UserID, f)
	if err != nil {
		utils.HandleServiceError(w, err, "Failed to list jobs")
		return
	}
	utils.RespondData(w, http.StatusOK, "", jobs)
}

func (c *JobController) GetOwn(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	jobID, ok := pathUUID(w, r, "jobId")
	if !ok {
		return
	}

	job, err := c.jobService.GetOwn(r.Context(), identity.UserID, jobID)
	if err != nil {
		utils.HandleServiceError(w, err, "Failed to load job")
		return
	}
	utils.RespondData(w, http.StatusOK, "", job)
}

func (c *JobController) setStatus(w http.ResponseWriter, r *http.Request, status models.JobStatusType) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	jobID, ok := pathUUID(w, r, "jobId")
	if !ok {
		return
	}

	job, err := c.jobService.SetStatus(r.Context(), identity.UserID, jobID, status)
	if err != nil {
		utils.HandleServiceError(w, err, "Failed to update job status")
		return
	}
	utils.RespondData(w, http.StatusOK, "", job)
}

func (c *JobController) Publish(w http.ResponseWriter, r *http.Request) {
	c.setStatus(w, r, models.JobStatusPublic)
}

func (c *JobController) Pause(w http.ResponseWriter, r *http.Request) {
	c.setStatus(w, r, models.JobStatusPaused)
}

func (c *JobController) Close(w http.ResponseWriter, r *http.Request) {
	c.setStatus(w, r, models.JobStatusClosed)
}

// ----------------------
// Worker surface
// ----------------------

func (c *JobController) ListPublic(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := repositories.PublicJobFilter{Title: q.Get("title")}
	for _, jt := range q["job_type"] {
		f.JobTypes = append(f.JobTypes, models.JobTypeType(jt))
	}
	if v := q.Get("min_salary"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid min_salary", err)
			return
		}
		f.MinSalary = &n
	}
	if v := q.Get("max_salary"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid max_salary", err)
			return
		}
		f.MaxSalary = &n
	}

	jobs, err := c.jobService.ListPublic(r.Context(), f)
	if err != nil {
		utils.HandleServiceError(w, err, "Failed to list jobs")
		return
	}
	utils.RespondData(w, http.StatusOK, "", jobs)
}

func (c *JobController) GetPublic(w http.ResponseWriter, r *http.Request) {
	jobID, ok := pathUUID(w, r, "jobId")
	if !ok {
		return
	}

	job, err := c.jobService.GetPublic(r.Context(), jobID)
	if err != nil {
		utils.HandleServiceError(w, err, "Failed to load job")
		return
	}
	utils.RespondData(w, http.StatusOK, "", job)
}
