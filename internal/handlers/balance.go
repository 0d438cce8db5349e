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

type balanceResponse struct {
	BalanceUSD     float64 `json:"balance_usd"`
	TotalEarnedUSD float64 `json:"total_earned_usd"`
}

type statsResponse struct {
	BalanceUSD     float64 `json:"balance_usd"`
	TotalEarnedUSD float64 `json:"total_earned_usd"`
	WhatsappCount  int     `json:"whatsapp_numbers"`
	MaxCount       int     `json:"max_numbers"`
	SmsCount       int     `json:"sms_messages"`
	Level          int     `json:"level"`
}

type topUpRequest struct {
	AmountUSD float64 `json:"amount_usd"`
}

func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.userService.GetUserByID(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to get user balance", zap.Error(err))
		return
	}

	writeJSON(w, balanceResponse{
		BalanceUSD:     user.BalanceUSD,
		TotalEarnedUSD: user.TotalEarnedUSD,
	})
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.userService.GetUserByID(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to get user stats", zap.Error(err))
		return
	}

	writeJSON(w, statsResponse{
		BalanceUSD:     user.BalanceUSD,
		TotalEarnedUSD: user.TotalEarnedUSD,
		WhatsappCount:  user.WhatsappCount,
		MaxCount:       user.MaxCount,
		SmsCount:       user.SmsCount,
		Level:          user.Level,
	})
}

func (h *Handler) GetReferrals(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	referrals, err := h.userService.GetReferrals(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to get referrals", zap.Error(err))
		return
	}

	writeJSON(w, referrals)
}

func (h *Handler) RequestTopUp(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req topUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	invoice, err := h.payoutService.RequestTopUp(r.Context(), userID, req.AmountUSD)
	switch {
	case err == nil:
		writeJSON(w, invoice)
	case errors.Is(err, apperrors.ErrInvalidAmount):
		http.Error(w, "invalid amount", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrInternalServer):
		http.Error(w, "payment gateway unavailable", http.StatusBadGateway)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("top-up failed", zap.Error(err))
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(v)
}
