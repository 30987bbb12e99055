package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/tuan204-dev/ttcs-be/internal/dtos"
	"github.com/tuan204-dev/ttcs-be/internal/services"
	"github.com/tuan204-dev/ttcs-be/internal/utils"
)

type BookmarkController struct {
	bookmarkService services.BookmarkService
}

func NewBookmarkController(bookmarkService services.BookmarkService) *BookmarkController {
	return &BookmarkController{bookmarkService: bookmarkService}
}

func (c *BookmarkController) Add(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	var req dtos.AddBookmarkRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid job_id", err)
		return
	}

	bookmark, err := c.bookmarkService.Add(r.Context(), identity.UserID, jobID)
	if err != nil {
		utils.HandleServiceError(w, err, "Failed to add bookmark")
		return
	}
	utils.RespondData(w, http.StatusCreated, "", bookmark)
}

func (c *BookmarkController) Remove(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	jobID, ok := pathUUID(w, r, "jobId")
	if !ok {
		return
	}

	if err := c.bookmarkService.Remove(r.Context(), identity.UserID, jobID); err != nil {
		utils.HandleServiceError(w, err, "Failed to remove bookmark")
		return
	}
	utils.RespondMessage(w, http.StatusOK, true, "Bookmark removed")
}

func (c *BookmarkController) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	jobs, err := c.bookmarkService.List(r.Context(), identity.UserID)
	if err != nil {
		utils.HandleServiceError(w, err, "Failed to list bookmarks")
		return
	}
	utils.RespondData(w, http.StatusOK, "", jobs)
}
