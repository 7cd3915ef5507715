package handler

import (
	"encoding/json"
	"net/http"

	"github.com/prn-tf/mira-movil/internal/controller"
)

// statusFor maps a result kind to an HTTP status code. Successful
// results use 200 or 201, chosen at the call site.
func statusFor(kind controller.Kind) int {
	switch kind {
	case controller.KindInvalidFormat, controller.KindChecksumFailed:
		return http.StatusBadRequest
	case controller.KindInvalidCredentials, controller.KindNoSession:
		return http.StatusUnauthorized
	case controller.KindNotFound, controller.KindNoResults:
		return http.StatusNotFound
	case controller.KindDuplicateField, controller.KindHasDependencies:
		return http.StatusConflict
	case controller.KindAccountLocked:
		return http.StatusLocked
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeResult writes a tagged result, using okStatus when it succeeded.
func writeResult(w http.ResponseWriter, res controller.Result, okStatus int) {
	if res.Success {
		writeJSON(w, okStatus, res)
		return
	}
	writeJSON(w, statusFor(res.Kind), res)
}

// decodeJSON decodes the request body into v. On failure it writes a 400
// and reports false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, controller.Result{
			Success: false,
			Kind:    controller.KindInvalidFormat,
			Message: "Malformed request body.",
		})
		return false
	}
	return true
}
