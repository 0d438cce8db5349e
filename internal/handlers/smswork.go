package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/KoshakFSB/WCWD/internal/apperrors"
	"github.com/KoshakFSB/WCWD/internal/logger"
	"github.com/KoshakFSB/WCWD/internal/middleware"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type submitSmsRequest struct {
	Text string `json:"text"`
}

type proofRequest struct {
	ProofRef string `json:"proof_ref"`
}

func workID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "workID"), 10, 64)
}

func (h *Handler) SubmitSmsWork(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req submitSmsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	work, err := h.smsWorkService.Submit(r.Context(), userID, req.Text)
	switch {
	case err == nil:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(work)
	case errors.Is(err, apperrors.ErrTextTooShort):
		http.Error(w, "text too short", http.StatusUnprocessableEntity)
	case errors.Is(err, apperrors.ErrTextHasLinks):
		http.Error(w, "links are not allowed", http.StatusUnprocessableEntity)
	case errors.Is(err, apperrors.ErrServicePaused):
		http.Error(w, "service is paused", http.StatusServiceUnavailable)
	case errors.Is(err, apperrors.ErrUserBanned):
		http.Error(w, "user is banned", http.StatusForbidden)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("submit sms work failed", zap.Error(err))
	}
}

func (h *Handler) GetSmsWorks(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	works, err := h.smsWorkService.GetUserWorks(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to get sms works", zap.Error(err))
		return
	}

	writeJSON(w, works)
}

func (h *Handler) AttachSmsProof(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := workID(r)
	if err != nil {
		http.Error(w, "invalid work id", http.StatusBadRequest)
		return
	}

	var req proofRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProofRef == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	err = h.smsWorkService.AttachProof(r.Context(), userID, id, req.ProofRef)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, apperrors.ErrSmsWorkNotFound):
		http.Error(w, "work not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrNotOwner):
		http.Error(w, "not your work", http.StatusForbidden)
	case errors.Is(err, apperrors.ErrStaleState):
		http.Error(w, "state changed, re-read and retry", http.StatusConflict)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("attach proof failed", zap.Error(err))
	}
}
