package controllers

import (
	"net/http"

	"github.com/tuan204-dev/ttcs-be/internal/dtos"
	"github.com/tuan204-dev/ttcs-be/internal/services"
	"github.com/tuan204-dev/ttcs-be/internal/utils"
)

type RecruiterAuthController struct {
	recruiterAuthService services.RecruiterAuthService
}

func NewRecruiterAuthController(recruiterAuthService services.RecruiterAuthService) *RecruiterAuthController {
	return &RecruiterAuthController{recruiterAuthService: recruiterAuthService}
}

func (c *RecruiterAuthController) SendVerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req dtos.SendVerifyEmailRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := c.recruiterAuthService.SendVerifyEmail(r.Context(), req.Email); err != nil {
		utils.HandleServiceError(w, err, "Failed to send verification email")
		return
	}
	utils.RespondMessage(w, http.StatusOK, true, "Verification email sent")
}

func (c *RecruiterAuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRecruiterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := c.recruiterAuthService.Register(r.Context(), &req)
	if err != nil {
		utils.HandleServiceError(w, err, "Registration failed")
		return
	}
	utils.RespondData(w, http.StatusCreated, "", resp)
}

func (c *RecruiterAuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := c.recruiterAuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.HandleServiceError(w, err, "Login failed")
		return
	}
	utils.RespondData(w, http.StatusOK, "", resp)
}

func (c *RecruiterAuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	var req dtos.RefreshTokenRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := c.recruiterAuthService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		utils.HandleServiceError(w, err, "Failed to refresh token")
		return
	}
	utils.RespondData(w, http.StatusOK, "", resp)
}

func (c *RecruiterAuthController) Logout(w http.ResponseWriter, r *http.Request) {
	var req dtos.LogoutRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := c.recruiterAuthService.Logout(r.Context(), req.RefreshToken); err != nil {
		utils.HandleServiceError(w, err, "Logout failed")
		return
	}
	utils.RespondMessage(w, http.StatusOK, true, "Logged out")
}

func (c *RecruiterAuthController) GetInfo(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	recruiter, err := c.recruiterAuthService.GetInfo(r.Context(), identity.UserID)
	if err != nil {
		utils.HandleServiceError(w, err, "Failed to load profile")
		return
	}
	utils.RespondData(w, http.StatusOK, "", recruiter)
}
