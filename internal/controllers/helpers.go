package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/legend1349/USYDSTRATA2025/internal/middleware"
	"github.com/legend1349/USYDSTRATA2025/internal/services"
	"github.com/legend1349/USYDSTRATA2025/internal/utils"
)

var validate = validator.New()

// decodeAndValidate parses the JSON body into dst and runs the validator.
// On failure it writes the error response and returns false; required-field
// failures never reach a service (and so never reach the store).
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Missing or malformed fields", nil, err,
		)
		return false
	}
	return true
}

// pathID pulls the {id} route variable.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid record id", nil, err,
		)
		return 0, false
	}
	return id, true
}

// requireSession reads the session the guard injected. A missing session
// here means the route was mounted outside the guard, which is a bug.
func requireSession(w http.ResponseWriter, r *http.Request) (middleware.Session, bool) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No session in context", nil,
		)
		return middleware.Session{}, false
	}
	return sess, true
}

// respondServiceError maps service failures onto coded responses. The
// client's only job is to surface message as a toast.
func respondServiceError(w http.ResponseWriter, err error, publicMessage string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Record not found", nil, err)
	case errors.Is(err, services.ErrEmailTaken):
		utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeConflict, err.Error(), nil, err)
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeInvalidCredentials, err.Error(), nil, err)
	default:
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, publicMessage, nil, err)
	}
}
