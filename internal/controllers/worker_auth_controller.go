package controllers

import (
	"net/http"

	"github.com/tuan204-dev/ttcs-be/internal/dtos"
	"github.com/tuan204-dev/ttcs-be/internal/services"
	"github.com/tuan204-dev/ttcs-be/internal/utils"
)

type WorkerAuthController struct {
	workerAuthService services.WorkerAuthService
}

func NewWorkerAuthController(workerAuthService services.WorkerAuthService) *WorkerAuthController {
	return &WorkerAuthController{workerAuthService: workerAuthService}
}

func (c *WorkerAuthController) SendVerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req dtos.SendVerifyEmailRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := c.workerAuthService.SendVerifyEmail(r.Context(), req.Email); err != nil {
		utils.HandleServiceError(w, err, "Failed to send verification email")
		return
	}
	utils.RespondMessage(w, http.StatusOK, true, "Verification email sent")
}

func (c *WorkerAuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterWorkerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := c.workerAuthService.Register(r.Context(), &req)
	if err != nil {
		utils.HandleServiceError(w, err, "Registration failed")
		return
	}
	utils.RespondData(w, http.StatusCreated, "", resp)
}

func (c *WorkerAuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := c.workerAuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.HandleServiceError(w, err, "Login failed")
		return
	}
	utils.RespondData(w, http.StatusOK, "", resp)
}

func (c *WorkerAuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	var req dtos.RefreshTokenRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := c.workerAuthService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		utils.HandleServiceError(w, err, "Failed to refresh token")
		return
	}
	utils.RespondData(w, http.StatusOK, "", resp)
}

func (c *WorkerAuthController) Logout(w http.ResponseWriter, r *http.Request) {
	var req dtos.LogoutRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := c.workerAuthService.Logout(r.Context(), req.RefreshToken); err != nil {
		utils.HandleServiceError(w, err, "Logout failed")
		return
	}
	utils.RespondMessage(w, http.StatusOK, true, "Logged out")
}

func (c *WorkerAuthController) GetInfo(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	worker, err := c.workerAuthService.GetInfo(r.Context(), identity.UserID)
	if err != nil {
		utils.HandleServiceError(w, err, "Failed to load profile")
		return
	}
	utils.RespondData(w, http.StatusOK, "", worker)
}

func (c *WorkerAuthController) UpdateInfo(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	var req dtos.UpdateWorkerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	worker, err := c.workerAuthService.UpdateInfo(r.Context(), identity.UserID, &req)
	if err != nil {
		utils.HandleServiceError(w, err, "Failed to update profile")
		return
	}
	utils.RespondData(w, http.StatusOK, "", worker)
}
