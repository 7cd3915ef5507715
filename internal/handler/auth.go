package handler

import (
	"net/http"

	"github.com/prn-tf/mira-movil/internal/domain"
)

type loginRequest struct {
	LoginName string `json:"login_name"`
	Password  string `json:"password"`
}

type recoverRequest struct {
	Email string `json:"email"`
}

// stateResponse is the snapshot the presentation layer renders from.
type stateResponse struct {
	Authenticated  bool                `json:"authenticated"`
	User           *domain.UserAccount `json:"user,omitempty"`
	FailedAttempts int                 `json:"failed_attempts"`
	Locked         bool                `json:"locked"`
	Screen         domain.Screen       `json:"screen"`
	Busy           bool                `json:"busy"`
}

func (h *APIHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res := h.controller.Login(r.Context(), req.LoginName, req.Password)
	writeResult(w, res, http.StatusOK)
}

func (h *APIHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.controller.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *APIHandler) handleRecover(w http.ResponseWriter, r *http.Request) {
	var req recoverRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res := h.controller.RequestPasswordReset(r.Context(), req.Email)
	writeResult(w, res, http.StatusOK)
}

func (h *APIHandler) handleState(w http.ResponseWriter, r *http.Request) {
	snap, err := h.controller.Snapshot(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to read auth state")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{
		Authenticated:  snap.Authenticated,
		User:           snap.User,
		FailedAttempts: snap.FailedAttempts,
		Locked:         snap.Locked,
		Screen:         h.controller.CurrentScreen(),
		Busy:           h.controller.IsBusy(),
	})
}

type setScreenRequest struct {
	Screen domain.Screen `json:"screen"`
}

func (h *APIHandler) handleSetScreen(w http.ResponseWriter, r *http.Request) {
	var req setScreenRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.controller.SetScreen(req.Screen)
	w.WriteHeader(http.StatusNoContent)
}
