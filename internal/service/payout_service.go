package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KoshakFSB/WCWD/internal/apperrors"
	"github.com/KoshakFSB/WCWD/internal/cryptopay"
	"github.com/KoshakFSB/WCWD/internal/logger"
	"github.com/KoshakFSB/WCWD/internal/models"
	"github.com/KoshakFSB/WCWD/internal/notify"
	"github.com/KoshakFSB/WCWD/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PayoutService moves withdrawal requests from pending through confirmed to
// paid, and runs the referral cascade on confirmation.
type PayoutService interface {
	SubmitWithdrawal(ctx context.Context, userID int64, amount float64) (*models.WithdrawRequest, error)
	GetUserWithdrawals(ctx context.Context, userID int64) ([]models.WithdrawRequest, error)
	AdminConfirm(ctx context.Context, adminID, requestID int64) error
	ConfirmDue(ctx context.Context) (int, error)
	ProcessBatch(ctx context.Context, adminID int64, limit int) (models.BatchResult, error)
	RequestTopUp(ctx context.Context, userID int64, amount float64) (*cryptopay.Invoice, error)
}

type payoutService struct {
	repo     repository.WithdrawalRepository
	userRepo repository.UserRepository
	gateway  cryptopay.ClientInterface
	notifier notify.Notifier
	admins   AdminChecker
	now      func() time.Time
}

func NewPayoutService(
	repo repository.WithdrawalRepository,
	userRepo repository.UserRepository,
	gateway cryptopay.ClientInterface,
	notifier notify.Notifier,
	admins AdminChecker,
) PayoutService {
	return &payoutService{
		repo:     repo,
		userRepo: userRepo,
		gateway:  gateway,
		notifier: notifier,
		admins:   admins,
		now:      time.Now,
	}
}

// SubmitWithdrawal debits the requested amount atomically at submission; the
// amount is never debited again, however the request is later resolved.
func (s *payoutService) SubmitWithdrawal(ctx context.Context, userID int64, amount float64) (*models.WithdrawRequest, error) {
	if amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}
	if amount < MinWithdrawalUSD {
		return nil, apperrors.ErrBelowMinimum
	}

	withdrawal := &models.WithdrawRequest{
		UserID:    userID,
		AmountUSD: amount,
		Status:    models.WithdrawStatusPending,
	}
	if err := s.repo.CreateWithDebit(ctx, withdrawal); err != nil {
		return nil, err
	}

	s.notifier.NotifyAdmins(ctx, fmt.Sprintf(
		"Новая заявка на вывод: %.2f$ от пользователя %d (ID %d)",
		amount, userID, withdrawal.ID))

	return withdrawal, nil
}

func (s *payoutService) GetUserWithdrawals(ctx context.Context, userID int64) ([]models.WithdrawRequest, error) {
	return s.repo.GetByUser(ctx, userID)
}

func (s *payoutService) AdminConfirm(ctx context.Context, adminID, requestID int64) error {
	if !s.admins.IsAdmin(adminID) {
		return apperrors.ErrNotAdmin
	}

	withdrawal, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	return s.confirm(ctx, withdrawal)
}

// ConfirmDue auto-confirms requests still pending past the delay. The cutoff
// is computed from persisted created_at values, so pending confirmations are
// recovered after a restart.
func (s *payoutService) ConfirmDue(ctx context.Context) (int, error) {
	due, err := s.repo.GetDuePending(ctx, s.now().Add(-AutoConfirmDelay))
	if err != nil {
		return 0, err
	}

	confirmed := 0
	for i := range due {
		if err := s.confirm(ctx, &due[i]); err != nil {
			if errors.Is(err, apperrors.ErrStaleState) {
				continue
			}
			logger.Log.Error("failed to confirm withdrawal",
				zap.Int64("request_id", due[i].ID), zap.Error(err))
			continue
		}
		confirmed++
	}
	return confirmed, nil
}

func (s *payoutService) confirm(ctx context.Context, withdrawal *models.WithdrawRequest) error {
	if err := s.repo.Confirm(ctx, withdrawal.ID, s.now()); err != nil {
		return err
	}

	s.notifyUser(ctx, withdrawal.UserID, fmt.Sprintf(
		"Заявка на вывод %.2f$ подтверждена. Ожидайте чек.", withdrawal.AmountUSD))

	s.referralPayout(ctx, withdrawal.UserID, withdrawal.AmountUSD)
	return nil
}

// referralPayout credits the referrer 5% of the withdrawn amount. The
// commission is system-funded: nothing is deducted from the referred user.
func (s *payoutService) referralPayout(ctx context.Context, userID int64, amount float64) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		logger.Log.Error("failed to load user for referral payout", zap.Error(err))
		return
	}
	if user.ReferrerID == nil {
		return
	}

	commission, _ := decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(WithdrawalReferralShare)).
		Round(2).Float64()
	if commission <= 0 {
		return
	}

	if err := s.userRepo.CreditBalance(ctx, *user.ReferrerID, commission); err != nil {
		logger.Log.Error("failed to credit referral commission",
			zap.Int64("referrer_id", *user.ReferrerID), zap.Error(err))
		return
	}

	s.notifyUser(ctx, *user.ReferrerID, fmt.Sprintf(
		"Реферальное начисление: %.2f$ за вывод приглашенного пользователя.", commission))
}

// ProcessBatch issues payout checks for up to limit confirmed requests.
// Gateway failures leave the request confirmed and retryable; partial success
// is reported, not rolled back.
func (s *payoutService) ProcessBatch(ctx context.Context, adminID int64, limit int) (models.BatchResult, error) {
	var result models.BatchResult

	if !s.admins.IsAdmin(adminID) {
		return result, apperrors.ErrNotAdmin
	}
	if limit <= 0 || limit > DefaultBatchLimit {
		limit = DefaultBatchLimit
	}

	confirmed, err := s.repo.GetConfirmedUnpaid(ctx, limit)
	if err != nil {
		return result, err
	}

	for i := range confirmed {
		withdrawal := &confirmed[i]

		check, err := s.gateway.CreateCheck(ctx, withdrawal.UserID, withdrawal.AmountUSD,
			fmt.Sprintf("Выплата по заявке %d", withdrawal.ID))
		if err != nil || check == nil {
			logger.Log.Warn("check issuance failed, request stays retryable",
				zap.Int64("request_id", withdrawal.ID), zap.Error(err))
			result.Failed++
			continue
		}

		if err := s.repo.MarkPaid(ctx, withdrawal.ID, check.CheckID, check.URL, s.now()); err != nil {
			logger.Log.Error("failed to mark withdrawal paid",
				zap.Int64("request_id", withdrawal.ID), zap.Error(err))
			result.Failed++
			continue
		}
		result.Paid++

		s.notifyUser(ctx, withdrawal.UserID, fmt.Sprintf(
			"Выплата %.2f$ готова. Чек: %s", withdrawal.AmountUSD, check.URL))
	}
	return result, nil
}

// RequestTopUp creates a deposit invoice through the payment gateway.
func (s *payoutService) RequestTopUp(ctx context.Context, userID int64, amount float64) (*cryptopay.Invoice, error) {
	if amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}

	invoice, err := s.gateway.CreateInvoice(ctx, amount, fmt.Sprintf("Пополнение баланса пользователя %d", userID))
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperrors.ErrInternalServer
	}
	return invoice, nil
}

func (s *payoutService) notifyUser(ctx context.Context, userID int64, text string) {
	if err := s.notifier.NotifyUser(ctx, userID, text); err != nil {
		logger.Log.Warn("failed to notify user", zap.Int64("user_id", userID), zap.Error(err))
	}
}
