package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/tuan204-dev/ttcs-be/internal/middleware"
	"github.com/tuan204-dev/ttcs-be/internal/utils"
)

var validate = validator.New()

// decodeAndValidate parses the JSON body into dst and runs struct
// validation, writing the error response itself on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request", err)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Validation error", err)
		return false
	}
	return true
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid "+name, err)
		return uuid.Nil, false
	}
	return id, true
}

func callerIdentity(w http.ResponseWriter, r *http.Request) (*middleware.Identity, bool) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "Unauthorized access", errors.New("missing identity in context"))
		return nil, false
	}
	return id, true
}
