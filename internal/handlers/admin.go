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

// adminAccountAction wraps transitions initiated by an admin on an account.
func (h *Handler) adminAccountAction(w http.ResponseWriter, r *http.Request,
	action func(adminID, accID int64) error) {

	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	accID, err := accountID(r)
	if err != nil {
		http.Error(w, "invalid account id", http.StatusBadRequest)
		return
	}

	h.writeTransitionResult(w, action(adminID, accID))
}

func (h *Handler) AdminAcceptAccount(w http.ResponseWriter, r *http.Request) {
	h.adminAccountAction(w, r, func(adminID, accID int64) error {
		return h.accountService.AdminAccept(r.Context(), adminID, accID)
	})
}

func (h *Handler) AdminSendCode(w http.ResponseWriter, r *http.Request) {
	var req codeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	h.adminAccountAction(w, r, func(adminID, accID int64) error {
		return h.accountService.AdminSendCode(r.Context(), adminID, accID, req.Code)
	})
}

func (h *Handler) AdminActivateHold(w http.ResponseWriter, r *http.Request) {
	h.adminAccountAction(w, r, func(adminID, accID int64) error {
		return h.accountService.AdminActivateHold(r.Context(), adminID, accID)
	})
}

func (h *Handler) AdminRejectAccount(w http.ResponseWriter, r *http.Request) {
	h.adminAccountAction(w, r, func(adminID, accID int64) error {
		return h.accountService.AdminReject(r.Context(), adminID, accID)
	})
}

func (h *Handler) AdminFailAccount(w http.ResponseWriter, r *http.Request) {
	h.adminAccountAction(w, r, func(adminID, accID int64) error {
		return h.accountService.MarkFailedDuringHold(r.Context(), adminID, accID)
	})
}

func (h *Handler) AdminListAccounts(w http.ResponseWriter, r *http.Request) {
	svc := models.Service(r.URL.Query().Get("service"))
	if svc != models.ServiceWhatsapp && svc != models.ServiceMax {
		http.Error(w, "unknown service", http.StatusBadRequest)
		return
	}
	status := r.URL.Query().Get("status")
	if status == "" {
		status = models.AccountStatusPending
	}

	accounts, err := h.accountService.ListByStatus(r.Context(), svc, status)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to list accounts", zap.Error(err))
		return
	}
	writeJSON(w, accounts)
}

func (h *Handler) AdminConfirmWithdrawal(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "requestID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid request id", http.StatusBadRequest)
		return
	}

	err = h.payoutService.AdminConfirm(r.Context(), adminID, id)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, apperrors.ErrWithdrawalNotFound):
		http.Error(w, "withdrawal not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrStaleState):
		http.Error(w, "already resolved", http.StatusConflict)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("confirm withdrawal failed", zap.Error(err))
	}
}

func (h *Handler) AdminProcessBatch(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	result, err := h.payoutService.ProcessBatch(r.Context(), adminID, limit)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("batch processing failed", zap.Error(err))
		return
	}
	writeJSON(w, result)
}

func (h *Handler) AdminListSmsWorks(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = models.SmsWorkStatusPending
	}

	works, err := h.smsWorkService.ListByStatus(r.Context(), status)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to list sms works", zap.Error(err))
		return
	}
	writeJSON(w, works)
}

type smsAcceptRequest struct {
	WorkMessage string `json:"work_message"`
}

func (h *Handler) AdminAcceptSmsWork(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := workID(r)
	if err != nil {
		http.Error(w, "invalid work id", http.StatusBadRequest)
		return
	}

	var req smsAcceptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	h.writeSmsResult(w, h.smsWorkService.AdminAccept(r.Context(), adminID, id, req.WorkMessage))
}

func (h *Handler) AdminCompleteSmsWork(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := workID(r)
	if err != nil {
		http.Error(w, "invalid work id", http.StatusBadRequest)
		return
	}

	h.writeSmsResult(w, h.smsWorkService.AdminComplete(r.Context(), adminID, id))
}

func (h *Handler) writeSmsResult(w http.ResponseWriter, err error) {
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, apperrors.ErrSmsWorkNotFound):
		http.Error(w, "work not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrStaleState):
		http.Error(w, "state changed, re-read and retry", http.StatusConflict)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("sms work transition failed", zap.Error(err))
	}
}

type warnRequest struct {
	UserID int64  `json:"user_id"`
	Reason string `json:"reason"`
}

func (h *Handler) AdminWarnUser(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req warnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == 0 {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	err := h.userService.Warn(r.Context(), adminID, req.UserID, req.Reason)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, apperrors.ErrUserNotFound):
		http.Error(w, "user not found", http.StatusNotFound)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("warn user failed", zap.Error(err))
	}
}

type adjustBalanceRequest struct {
	UserID    int64   `json:"user_id"`
	AmountUSD float64 `json:"amount_usd"`
}

func (h *Handler) AdminAdjustBalance(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req adjustBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == 0 {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	err := h.userService.AdjustBalance(r.Context(), adminID, req.UserID, req.AmountUSD)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, apperrors.ErrNotAdmin):
		http.Error(w, "main admin rights required", http.StatusForbidden)
	case errors.Is(err, apperrors.ErrInvalidAmount):
		http.Error(w, "invalid amount", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrUserNotFound):
		http.Error(w, "user not found", http.StatusNotFound)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("adjust balance failed", zap.Error(err))
	}
}

type adminRosterRequest struct {
	UserID int64 `json:"user_id"`
}

func (h *Handler) AdminListAdmins(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	ids, err := h.userService.ListAdmins(r.Context(), adminID)
	switch {
	case err == nil:
		writeJSON(w, ids)
	case errors.Is(err, apperrors.ErrNotAdmin):
		http.Error(w, "main admin rights required", http.StatusForbidden)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("list admins failed", zap.Error(err))
	}
}

func (h *Handler) AdminAddAdmin(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req adminRosterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == 0 {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	h.writeRosterResult(w, h.userService.AddAdmin(r.Context(), adminID, req.UserID))
}

func (h *Handler) AdminRemoveAdmin(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	h.writeRosterResult(w, h.userService.RemoveAdmin(r.Context(), adminID, userID))
}

func (h *Handler) writeRosterResult(w http.ResponseWriter, err error) {
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, apperrors.ErrNotAdmin):
		http.Error(w, "main admin rights required", http.StatusForbidden)
	case errors.Is(err, apperrors.ErrUserNotFound):
		http.Error(w, "user not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrStaleState):
		http.Error(w, "roster unchanged", http.StatusConflict)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("admin roster change failed", zap.Error(err))
	}
}

func (h *Handler) AdminPlatformStats(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	stats, err := h.userService.PlatformStats(r.Context(), adminID)
	switch {
	case err == nil:
		writeJSON(w, stats)
	case errors.Is(err, apperrors.ErrNotAdmin):
		http.Error(w, "admin rights required", http.StatusForbidden)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("platform stats failed", zap.Error(err))
	}
}

type serviceStatusRequest struct {
	Service string `json:"service"`
	Active  bool   `json:"active"`
}

func (h *Handler) GetServiceStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.services.Snapshot())
}

// SetServiceStatus is registered exactly once in the router; the admin
// availability toggle has a single authoritative handler.
func (h *Handler) SetServiceStatus(w http.ResponseWriter, r *http.Request) {
	var req serviceStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	switch models.Service(req.Service) {
	case models.ServiceWhatsapp, models.ServiceMax, models.ServiceSms:
	default:
		http.Error(w, "unknown service", http.StatusBadRequest)
		return
	}

	h.services.Set(req.Service, req.Active)
	w.WriteHeader(http.StatusOK)
}
