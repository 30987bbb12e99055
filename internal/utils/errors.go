package utils

import (
	"errors"
	"net/http"
)

/*
   Sentinel errors for domain logic.
   Controllers can do: if errors.Is(err, ErrXYZ) { ... }
*/
var (
	ErrNotFound            = errors.New("not_found")
	ErrConflict            = errors.New("conflict")
	ErrEmailExists         = errors.New("email_exists")
	ErrInvalidCredentials  = errors.New("invalid_credentials")
	ErrInvalidVerifyToken  = errors.New("invalid_verify_token")
	ErrInvalidRefreshToken = errors.New("invalid_refresh_token")
	ErrEmptyMessage        = errors.New("empty_message")
)

// HandleServiceError translates a service-layer error into the response
// envelope. Not-found deliberately covers both "absent" and "not yours"
// so callers cannot probe for record existence.
func HandleServiceError(w http.ResponseWriter, err error, publicMessage string) {
	switch {
	case errors.Is(err, ErrNotFound):
		RespondError(w, http.StatusNotFound, publicMessage)
	case errors.Is(err, ErrConflict):
		RespondError(w, http.StatusConflict, publicMessage)
	case errors.Is(err, ErrEmailExists):
		RespondError(w, http.StatusConflict, "Email already exists")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(w, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, ErrInvalidVerifyToken):
		RespondError(w, http.StatusBadRequest, "Token is invalid")
	case errors.Is(err, ErrInvalidRefreshToken):
		RespondError(w, http.StatusBadRequest, "Invalid refresh token")
	case errors.Is(err, ErrEmptyMessage):
		RespondError(w, http.StatusBadRequest, "Message content must not be empty")
	default:
		RespondError(w, http.StatusInternalServerError, publicMessage, err)
	}
}
