package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/prn-tf/mira-movil/internal/controller"
	"github.com/prn-tf/mira-movil/internal/report"
)

func (h *APIHandler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.controller.ListUsers(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list users")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *APIHandler) handleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var req controller.RegisterUserInput
	if !decodeJSON(w, r, &req) {
		return
	}
	res := h.controller.RegisterUser(r.Context(), req)
	writeResult(w, res, http.StatusCreated)
}

func (h *APIHandler) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req controller.UpdateUserInput
	if !decodeJSON(w, r, &req) {
		return
	}
	res := h.controller.UpdateUser(r.Context(), chi.URLParam(r, "id"), req)
	writeResult(w, res, http.StatusOK)
}

func (h *APIHandler) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	res := h.controller.DeleteUser(r.Context(), chi.URLParam(r, "id"))
	writeResult(w, res, http.StatusOK)
}

func (h *APIHandler) handleListEquipment(w http.ResponseWriter, r *http.Request) {
	equipment, err := h.controller.ListEquipment(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list equipment")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, equipment)
}

func (h *APIHandler) handleRegisterEquipment(w http.ResponseWriter, r *http.Request) {
	var req controller.RegisterEquipmentInput
	if !decodeJSON(w, r, &req) {
		return
	}
	res := h.controller.RegisterEquipment(r.Context(), req)
	writeResult(w, res, http.StatusCreated)
}

func (h *APIHandler) handleListMovements(w http.ResponseWriter, r *http.Request) {
	movements, err := h.controller.ListMovements(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list movements")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, movements)
}

func (h *APIHandler) handleRegisterMovement(w http.ResponseWriter, r *http.Request) {
	var req controller.RegisterMovementInput
	if !decodeJSON(w, r, &req) {
		return
	}
	res := h.controller.RegisterMovement(r.Context(), req)
	writeResult(w, res, http.StatusCreated)
}

func (h *APIHandler) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	var req report.Filters
	if !decodeJSON(w, r, &req) {
		return
	}
	res := h.controller.GenerateReport(r.Context(), req)
	if !res.Success {
		writeJSON(w, statusFor(res.Kind), res)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// handleDownloadReport streams a generated artifact back to the caller.
func (h *APIHandler) handleDownloadReport(w http.ResponseWriter, r *http.Request) {
	artifact, err := h.controller.GetReportArtifact(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, controller.Result{
			Success: false,
			Kind:    controller.KindNotFound,
			Message: "Report not found.",
		})
		return
	}

	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+artifact.Filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(artifact.Content)
}
