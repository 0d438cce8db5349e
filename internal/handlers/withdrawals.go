package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KoshakFSB/WCWD/internal/apperrors"
	"github.com/KoshakFSB/WCWD/internal/logger"
	"github.com/KoshakFSB/WCWD/internal/middleware"
	"go.uber.org/zap"
)

type withdrawRequest struct {
	AmountUSD float64 `json:"amount_usd"`
}

func (h *Handler) SubmitWithdrawal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req withdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	withdrawal, err := h.payoutService.SubmitWithdrawal(r.Context(), userID, req.AmountUSD)
	switch {
	case err == nil:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(withdrawal)
	case errors.Is(err, apperrors.ErrInvalidAmount):
		http.Error(w, "invalid amount", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrBelowMinimum):
		http.Error(w, "minimum withdrawal is 1$", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrInsufficientBalance):
		http.Error(w, "insufficient balance", http.StatusPaymentRequired)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("withdraw error", zap.Error(err))
	}
}

func (h *Handler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	withdrawals, err := h.payoutService.GetUserWithdrawals(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to get withdrawals", zap.Error(err))
		return
	}

	if len(withdrawals) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, withdrawals)
}
