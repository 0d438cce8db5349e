package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/KoshakFSB/WCWD/internal/apperrors"
	"github.com/KoshakFSB/WCWD/internal/logger"
	"github.com/KoshakFSB/WCWD/internal/middleware"
	"github.com/KoshakFSB/WCWD/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type submitAccountRequest struct {
	Phone     string `json:"phone"`
	Service   string `json:"service"`
	HoldHours int    `json:"hold_hours,omitempty"`
}

type codeRequest struct {
	Code string `json:"code"`
}

func accountID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "accountID"), 10, 64)
}

func (h *Handler) SubmitAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req submitAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	account, err := h.accountService.Submit(r.Context(), userID, req.Phone,
		models.Service(req.Service), req.HoldHours)
	switch {
	case err == nil:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(account)
	case errors.Is(err, apperrors.ErrInvalidPhone):
		http.Error(w, "invalid phone number", http.StatusUnprocessableEntity)
	case errors.Is(err, apperrors.ErrDuplicatePhone):
		http.Error(w, "phone already registered", http.StatusConflict)
	case errors.Is(err, apperrors.ErrServicePaused):
		http.Error(w, "service is paused", http.StatusServiceUnavailable)
	case errors.Is(err, apperrors.ErrUserBanned):
		http.Error(w, "user is banned", http.StatusForbidden)
	case errors.Is(err, apperrors.ErrInvalidRequest):
		http.Error(w, "invalid service or tariff", http.StatusBadRequest)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("submit account failed", zap.Error(err))
	}
}

func (h *Handler) GetUserAccounts(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	svc := models.Service(r.URL.Query().Get("service"))
	if svc != models.ServiceWhatsapp && svc != models.ServiceMax {
		http.Error(w, "unknown service", http.StatusBadRequest)
		return
	}

	accounts, err := h.accountService.GetUserAccounts(r.Context(), userID, svc)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to get accounts", zap.Error(err))
		return
	}

	writeJSON(w, accounts)
}

// userAccountAction handles the owner-side transitions that share error mapping.
func (h *Handler) userAccountAction(w http.ResponseWriter, r *http.Request,
	action func(userID, accID int64) error) {

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	accID, err := accountID(r)
	if err != nil {
		http.Error(w, "invalid account id", http.StatusBadRequest)
		return
	}

	h.writeTransitionResult(w, action(userID, accID))
}

func (h *Handler) UserSubmitCode(w http.ResponseWriter, r *http.Request) {
	var req codeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	h.userAccountAction(w, r, func(userID, accID int64) error {
		return h.accountService.UserSubmitCode(r.Context(), userID, accID, req.Code)
	})
}

func (h *Handler) UserConfirmEntered(w http.ResponseWriter, r *http.Request) {
	h.userAccountAction(w, r, func(userID, accID int64) error {
		return h.accountService.UserConfirmEntered(r.Context(), userID, accID)
	})
}

func (h *Handler) UserReportFailure(w http.ResponseWriter, r *http.Request) {
	h.userAccountAction(w, r, func(userID, accID int64) error {
		return h.accountService.UserReportFailure(r.Context(), userID, accID)
	})
}

func (h *Handler) writeTransitionResult(w http.ResponseWriter, err error) {
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, apperrors.ErrAccountNotFound):
		http.Error(w, "account not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrNotOwner):
		http.Error(w, "not your account", http.StatusForbidden)
	case errors.Is(err, apperrors.ErrNotAdmin):
		http.Error(w, "admin rights required", http.StatusForbidden)
	case errors.Is(err, apperrors.ErrStaleState):
		http.Error(w, "state changed, re-read and retry", http.StatusConflict)
	case errors.Is(err, apperrors.ErrGuardHeld):
		http.Error(w, "confirmation already in progress", http.StatusConflict)
	case errors.Is(err, apperrors.ErrConfirmationBlocked):
		http.Error(w, "confirmation window expired", http.StatusGone)
	case errors.Is(err, apperrors.ErrInvalidRequest):
		http.Error(w, "invalid request", http.StatusBadRequest)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("account transition failed", zap.Error(err))
	}
}
