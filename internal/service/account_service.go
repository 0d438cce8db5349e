package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KoshakFSB/WCWD/internal/apperrors"
	"github.com/KoshakFSB/WCWD/internal/confirmgate"
	"github.com/KoshakFSB/WCWD/internal/config"
	"github.com/KoshakFSB/WCWD/internal/logger"
	"github.com/KoshakFSB/WCWD/internal/models"
	"github.com/KoshakFSB/WCWD/internal/notify"
	"github.com/KoshakFSB/WCWD/internal/phone"
	"github.com/KoshakFSB/WCWD/internal/repository"
	"go.uber.org/zap"
)

// AccountService drives a rented number from submission to its credited
// terminal state.
type AccountService interface {
	Submit(ctx context.Context, userID int64, phoneNumber string, svc models.Service, holdHours int) (*models.Account, error)
	GetUserAccounts(ctx context.Context, userID int64, svc models.Service) ([]models.Account, error)
	ListByStatus(ctx context.Context, svc models.Service, status string) ([]models.Account, error)
	AdminAccept(ctx context.Context, adminID, accountID int64) error
	AdminSendCode(ctx context.Context, adminID, accountID int64, code string) error
	UserSubmitCode(ctx context.Context, userID, accountID int64, code string) error
	UserConfirmEntered(ctx context.Context, userID, accountID int64) error
	AdminActivateHold(ctx context.Context, adminID, accountID int64) error
	AdminReject(ctx context.Context, adminID, accountID int64) error
	UserReportFailure(ctx context.Context, userID, accountID int64) error
	MarkFailedDuringHold(ctx context.Context, adminID, accountID int64) error
	CompleteDueHolds(ctx context.Context) (int, error)
}

type accountService struct {
	repo     repository.AccountRepository
	userRepo repository.UserRepository
	gate     *confirmgate.Gate
	notifier notify.Notifier
	admins   AdminChecker
	services *config.ServiceState
	now      func() time.Time
}

func NewAccountService(
	repo repository.AccountRepository,
	userRepo repository.UserRepository,
	gate *confirmgate.Gate,
	notifier notify.Notifier,
	admins AdminChecker,
	services *config.ServiceState,
) AccountService {
	return &accountService{
		repo:     repo,
		userRepo: userRepo,
		gate:     gate,
		notifier: notifier,
		admins:   admins,
		services: services,
		now:      time.Now,
	}
}

func (s *accountService) Submit(ctx context.Context, userID int64, phoneNumber string, svc models.Service, holdHours int) (*models.Account, error) {
	if !phone.IsValid(phoneNumber) {
		return nil, apperrors.ErrInvalidPhone
	}
	if !s.services.IsActive(string(svc)) {
		return nil, apperrors.ErrServicePaused
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Warnings >= WarnBanThreshold {
		return nil, apperrors.ErrUserBanned
	}

	account := &models.Account{
		UserID:  userID,
		Phone:   phoneNumber,
		Service: svc,
		Status:  models.AccountStatusPending,
	}

	switch svc {
	case models.ServiceWhatsapp:
		rate, ok := WhatsappRates[holdHours]
		if !ok {
			return nil, apperrors.ErrInvalidRequest
		}
		account.HoldHours = holdHours
		account.AmountUSD = rate
	case models.ServiceMax:
		account.AmountUSD = MaxRate
	default:
		return nil, apperrors.ErrInvalidRequest
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	s.notifier.NotifyAdmins(ctx, fmt.Sprintf(
		"Новый номер %s: %s от пользователя %d, ставка %.2f$ (ID %d)",
		account.Service, account.Phone, userID, account.AmountUSD, account.ID))

	return account, nil
}

func (s *accountService) GetUserAccounts(ctx context.Context, userID int64, svc models.Service) ([]models.Account, error) {
	return s.repo.GetByUser(ctx, userID, svc)
}

func (s *accountService) ListByStatus(ctx context.Context, svc models.Service, status string) ([]models.Account, error) {
	return s.repo.ListByStatus(ctx, svc, status)
}

// AdminAccept claims a MAX number and opens its confirmation flow.
func (s *accountService) AdminAccept(ctx context.Context, adminID, accountID int64) error {
	if !s.admins.IsAdmin(adminID) {
		return apperrors.ErrNotAdmin
	}

	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account.Service != models.ServiceMax {
		return apperrors.ErrInvalidRequest
	}

	if !s.gate.Acquire(account.UserID, account.ID) {
		return apperrors.ErrGuardHeld
	}

	if err := s.repo.ClaimPending(ctx, accountID, adminID); err != nil {
		s.gate.Release(account.UserID)
		return err
	}

	s.notifyUser(ctx, account.UserID, fmt.Sprintf(
		"Номер %s принят в работу. Отправьте одноразовый код подтверждения.", account.Phone))
	return nil
}

// AdminSendCode relays a one-time code to a WhatsApp number's owner.
func (s *accountService) AdminSendCode(ctx context.Context, adminID, accountID int64, code string) error {
	if !s.admins.IsAdmin(adminID) {
		return apperrors.ErrNotAdmin
	}

	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}

	// MAX accounts were guarded at accept time.
	if account.Service == models.ServiceWhatsapp {
		if !s.gate.Acquire(account.UserID, account.ID) {
			return apperrors.ErrGuardHeld
		}
	}

	if err := s.repo.MarkCodeSent(ctx, accountID, adminID, code); err != nil {
		if account.Service == models.ServiceWhatsapp {
			s.gate.Release(account.UserID)
		}
		return err
	}

	s.notifyUser(ctx, account.UserID, fmt.Sprintf(
		"Код подтверждения для номера %s: %s", account.Phone, code))
	return nil
}

// UserSubmitCode records the one-time code a MAX owner received and passes it
// to the claiming admin.
func (s *accountService) UserSubmitCode(ctx context.Context, userID, accountID int64, code string) error {
	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account.UserID != userID {
		return apperrors.ErrNotOwner
	}
	if err := s.checkGuard(userID); err != nil {
		return err
	}

	if err := s.repo.RecordUserCode(ctx, accountID, code); err != nil {
		return err
	}

	if account.AdminID != nil {
		s.notifyUser(ctx, *account.AdminID, fmt.Sprintf(
			"Код от номера %s (ID %d): %s", account.Phone, account.ID, code))
	}
	return nil
}

// UserConfirmEntered moves a WhatsApp number to confirmed and asks every
// admin to activate the hold. The broadcast is deliberate: any admin may
// activate, not just the one who sent the code.
func (s *accountService) UserConfirmEntered(ctx context.Context, userID, accountID int64) error {
	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account.UserID != userID {
		return apperrors.ErrNotOwner
	}
	if err := s.checkGuard(userID); err != nil {
		return err
	}

	if err := s.repo.MarkEntered(ctx, accountID); err != nil {
		return err
	}

	s.notifier.NotifyAdmins(ctx, fmt.Sprintf(
		"Пользователь %d ввел код для номера %s (ID %d). Подтвердите начало холда.",
		userID, account.Phone, account.ID))
	return nil
}

// AdminActivateHold starts the hold window. Racing admins are resolved by the
// conditional update: exactly one transition wins, the loser gets ErrStaleState.
func (s *accountService) AdminActivateHold(ctx context.Context, adminID, accountID int64) error {
	if !s.admins.IsAdmin(adminID) {
		return apperrors.ErrNotAdmin
	}

	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}

	if err := s.repo.ActivateHold(ctx, accountID, s.now()); err != nil {
		return err
	}
	s.gate.Release(account.UserID)

	duration := account.HoldDuration()
	s.notifyUser(ctx, account.UserID, fmt.Sprintf(
		"Холд для номера %s запущен на %s. Держите аккаунт активным.",
		account.Phone, duration))
	return nil
}

func (s *accountService) AdminReject(ctx context.Context, adminID, accountID int64) error {
	if !s.admins.IsAdmin(adminID) {
		return apperrors.ErrNotAdmin
	}

	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, accountID); err != nil {
		return err
	}
	s.gate.Release(account.UserID)

	s.notifyUser(ctx, account.UserID, fmt.Sprintf(
		"Номер %s отклонен администратором.", account.Phone))
	s.notifier.NotifyAdmins(ctx, fmt.Sprintf(
		"Номер %s (ID %d) отклонен.", account.Phone, account.ID))
	return nil
}

func (s *accountService) UserReportFailure(ctx context.Context, userID, accountID int64) error {
	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account.UserID != userID {
		return apperrors.ErrNotOwner
	}

	if account.Status == models.AccountStatusActive {
		err = s.repo.MarkFailed(ctx, accountID, s.now())
	} else {
		err = s.repo.Delete(ctx, accountID)
	}
	if err != nil {
		return err
	}
	s.gate.Release(account.UserID)

	s.notifier.NotifyAdmins(ctx, fmt.Sprintf(
		"Пользователь %d сообщил о слете номера %s (ID %d).", userID, account.Phone, account.ID))
	return nil
}

func (s *accountService) MarkFailedDuringHold(ctx context.Context, adminID, accountID int64) error {
	if !s.admins.IsAdmin(adminID) {
		return apperrors.ErrNotAdmin
	}

	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}

	if err := s.repo.MarkFailed(ctx, accountID, s.now()); err != nil {
		return err
	}
	s.gate.Release(account.UserID)

	s.notifyUser(ctx, account.UserID, fmt.Sprintf(
		"Номер %s слетел во время холда. Оплата не начислена.", account.Phone))
	return nil
}

// CompleteDueHolds credits every account whose hold window has elapsed. The
// scan works off persisted hold_start values, so holds survive restarts.
func (s *accountService) CompleteDueHolds(ctx context.Context) (int, error) {
	due, err := s.repo.GetDueHolds(ctx, s.now())
	if err != nil {
		return 0, err
	}

	completed := 0
	for i := range due {
		account := &due[i]
		if err := s.repo.Complete(ctx, account); err != nil {
			if errors.Is(err, apperrors.ErrStaleState) {
				continue
			}
			logger.Log.Error("failed to complete account",
				zap.Int64("account_id", account.ID), zap.Error(err))
			continue
		}
		completed++

		s.refreshLevel(ctx, account.UserID)
		s.notifyUser(ctx, account.UserID, fmt.Sprintf(
			"Холд номера %s завершен. Начислено %.2f$.", account.Phone, account.AmountUSD))
	}
	return completed, nil
}

// checkGuard enforces the 180-second confirmation window: the first access
// past the deadline blocks the flow, later accesses see the block.
func (s *accountService) checkGuard(userID int64) error {
	if s.gate.IsExpiredAndBlock(userID) || s.gate.IsBlocked(userID) {
		return apperrors.ErrConfirmationBlocked
	}
	return nil
}

func (s *accountService) refreshLevel(ctx context.Context, userID int64) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		logger.Log.Error("failed to load user for level refresh", zap.Error(err))
		return
	}
	level := CalculateLevel(user.WhatsappCount + user.MaxCount + user.SmsCount)
	if level != user.Level {
		if err := s.userRepo.UpdateLevel(ctx, userID, level); err != nil {
			logger.Log.Error("failed to update level", zap.Error(err))
		}
	}
}

func (s *accountService) notifyUser(ctx context.Context, userID int64, text string) {
	if err := s.notifier.NotifyUser(ctx, userID, text); err != nil {
		logger.Log.Warn("failed to notify user", zap.Int64("user_id", userID), zap.Error(err))
	}
}
