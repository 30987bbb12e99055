package controllers

import (
	"net/http"

	"github.com/tuan204-dev/ttcs-be/internal/dtos"
	"github.com/tuan204-dev/ttcs-be/internal/services"
	"github.com/tuan204-dev/ttcs-be/internal/utils"
)

type RecruitingController struct {
	recruitingService services.RecruitingService
}

func NewRecruitingController(recruitingService services.RecruitingService) *RecruitingController {
	return &RecruitingController{recruitingService: recruitingService}
}

// ----------------------
// Worker surface
// ----------------------

func (c *RecruitingController) Apply(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	jobID, ok := pathUUID(w, r, "jobId")
	if !ok {
		return
	}

	rec, err := c.recruitingService.Apply(r.Context(), identity.UserID, jobID)
	if err != nil {
		utils.HandleServiceError(w, err, "Failed to apply")
		return
	}
	utils.RespondData(w, http.StatusCreated, "", rec)
}

func (c *RecruitingController) ListForWorker(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	recs, err := c.recruitingService.ListForWorker(r.Context(), identity.UserID)
	if err != nil {
		utils.HandleServiceError(w, err, "Failed to list applications")
		return
	}
	utils.RespondData(w, http.StatusOK, "", recs)
}

// ----------------------
// Recruiter surface
// ----------------------

func (c *RecruitingController) ListForJob(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	jobID, ok := pathUUID(w, r, "jobId")
	if !ok {
		return
	}

	applicants, err := c.recruitingService.ListForJob(r.Context(), identity.UserID, jobID)
	if err != nil {
		utils.HandleServiceError(w, err, "Failed to list applicants")
		return
	}
	utils.RespondData(w, http.StatusOK, "", applicants)
}

func (c *RecruitingController) Advance(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	recruitingID, ok := pathUUID(w, r, "recruitingId")
	if !ok {
		return
	}

	rec, err := c.recruitingService.Advance(r.Context(), identity.UserID, recruitingID)
	if err != nil {
		utils.HandleServiceError(w, err, "Failed to advance application")
		return
	}
	utils.RespondData(w, http.StatusOK, "", rec)
}

func (c *RecruitingController) Reject(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	recruitingID, ok := pathUUID(w, r, "recruitingId")
	if !ok {
		return
	}

	rec, err := c.recruitingService.Reject(r.Context(), identity.UserID, recruitingID)
	if err != nil {
		utils.HandleServiceError(w, err, "Failed to reject application")
		return
	}
	utils.RespondData(w, http.StatusOK, "", rec)
}

// ----------------------
// Shared surface
// ----------------------

func (c *RecruitingController) SendMessage(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	var req dtos.SendMessageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	thread, err := c.recruitingService.SendMessage(r.Context(), identity, req.RecruitingID, req.Content)
	if err != nil {
		utils.HandleServiceError(w, err, "Failed to send message")
		return
	}
	utils.RespondData(w, http.StatusOK, "", thread)
}

func (c *RecruitingController) GetThread(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	recruitingID, ok := pathUUID(w, r, "recruitingId")
	if !ok {
		return
	}

	thread, err := c.recruitingService.GetThread(r.Context(), identity, recruitingID)
	if err != nil {
		utils.HandleServiceError(w, err, "Failed to load conversation")
		return
	}
	utils.RespondData(w, http.StatusOK, "", thread)
}
