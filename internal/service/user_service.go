package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/KoshakFSB/WCWD/internal/apperrors"
	"github.com/KoshakFSB/WCWD/internal/logger"
	"github.com/KoshakFSB/WCWD/internal/models"
	"github.com/KoshakFSB/WCWD/internal/notify"
	"github.com/KoshakFSB/WCWD/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(ctx context.Context, login, password, source string, referrerID *int64) error
	Authenticate(ctx context.Context, login, password string) error
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetReferrals(ctx context.Context, userID int64) ([]models.Referral, error)
	Warn(ctx context.Context, adminID, userID int64, reason string) error
	AdjustBalance(ctx context.Context, adminID, userID int64, amount float64) error
	PlatformStats(ctx context.Context, adminID int64) (*models.PlatformStats, error)
	AddAdmin(ctx context.Context, adminID, userID int64) error
	RemoveAdmin(ctx context.Context, adminID, userID int64) error
	ListAdmins(ctx context.Context, adminID int64) ([]int64, error)
}

type userService struct {
	repo     repository.UserRepository
	notifier notify.Notifier
	admins   AdminRoster
}

func NewUserService(repo repository.UserRepository, notifier notify.Notifier, admins AdminRoster) UserService {
	return &userService{
		repo:     repo,
		notifier: notifier,
		admins:   admins,
	}
}

func (s *userService) Register(ctx context.Context, login, password, source string, referrerID *int64) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		Login:          login,
		Password:       string(hashedPassword),
		ReferralSource: source,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return err
	}

	if referrerID != nil && *referrerID != user.ID {
		s.attachReferrer(ctx, user.ID, *referrerID)
	}
	return nil
}

// attachReferrer links the referrer once and pays the flat registration
// bonus. A missing referrer or an already-linked user is not an error for the
// registering caller.
func (s *userService) attachReferrer(ctx context.Context, userID, referrerID int64) {
	if _, err := s.repo.GetUserByID(ctx, referrerID); err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			logger.Log.Error("failed to look up referrer", zap.Error(err))
		}
		return
	}

	if err := s.repo.AttachReferrer(ctx, userID, referrerID, RegistrationReferralBonus); err != nil {
		if !errors.Is(err, apperrors.ErrStaleState) {
			logger.Log.Error("failed to attach referrer", zap.Error(err))
		}
		return
	}

	if err := s.notifier.NotifyUser(ctx, referrerID, fmt.Sprintf(
		"По вашей ссылке зарегистрировался новый пользователь. Бонус %.2f$ начислен.",
		RegistrationReferralBonus)); err != nil {
		logger.Log.Warn("failed to notify referrer", zap.Int64("user_id", referrerID), zap.Error(err))
	}
}

func (s *userService) Authenticate(ctx context.Context, login, password string) error {
	user, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil {
		return apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return apperrors.ErrInvalidCredentials
	}
	return nil
}

func (s *userService) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	return s.repo.GetUserByLogin(ctx, login)
}

func (s *userService) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Level = CalculateLevel(user.WhatsappCount + user.MaxCount + user.SmsCount)
	return user, nil
}

func (s *userService) GetReferrals(ctx context.Context, userID int64) ([]models.Referral, error) {
	return s.repo.GetReferrals(ctx, userID)
}

func (s *userService) Warn(ctx context.Context, adminID, userID int64, reason string) error {
	if !s.admins.IsAdmin(adminID) {
		return apperrors.ErrNotAdmin
	}

	warnings, err := s.repo.AddWarning(ctx, userID)
	if err != nil {
		return err
	}

	text := fmt.Sprintf("Предупреждение %d/%d: %s", warnings, WarnBanThreshold, reason)
	if warnings >= WarnBanThreshold {
		text = fmt.Sprintf("Вы заблокированы после %d предупреждений. Причина: %s", warnings, reason)
	}
	if err := s.notifier.NotifyUser(ctx, userID, text); err != nil {
		logger.Log.Warn("failed to notify warned user", zap.Int64("user_id", userID), zap.Error(err))
	}
	return nil
}

// AddAdmin grants admin rights to an existing user. Roster changes are
// reserved for main admins.
func (s *userService) AddAdmin(ctx context.Context, adminID, userID int64) error {
	if !s.admins.IsMainAdmin(adminID) {
		return apperrors.ErrNotAdmin
	}

	if _, err := s.repo.GetUserByID(ctx, userID); err != nil {
		return err
	}
	if !s.admins.Add(userID) {
		return apperrors.ErrStaleState
	}

	if err := s.notifier.NotifyUser(ctx, userID, "Вам выданы права администратора."); err != nil {
		logger.Log.Warn("failed to notify new admin", zap.Int64("user_id", userID), zap.Error(err))
	}
	return nil
}

// RemoveAdmin revokes admin rights. Main admins cannot be removed.
func (s *userService) RemoveAdmin(ctx context.Context, adminID, userID int64) error {
	if !s.admins.IsMainAdmin(adminID) {
		return apperrors.ErrNotAdmin
	}
	if !s.admins.Remove(userID) {
		return apperrors.ErrStaleState
	}

	if err := s.notifier.NotifyUser(ctx, userID, "Ваши права администратора отозваны."); err != nil {
		logger.Log.Warn("failed to notify removed admin", zap.Int64("user_id", userID), zap.Error(err))
	}
	return nil
}

func (s *userService) ListAdmins(ctx context.Context, adminID int64) ([]int64, error) {
	if !s.admins.IsMainAdmin(adminID) {
		return nil, apperrors.ErrNotAdmin
	}
	return s.admins.Snapshot(), nil
}

func (s *userService) PlatformStats(ctx context.Context, adminID int64) (*models.PlatformStats, error) {
	if !s.admins.IsAdmin(adminID) {
		return nil, apperrors.ErrNotAdmin
	}
	return s.repo.GetPlatformStats(ctx)
}

// AdjustBalance is the manual top-up reserved for main admins.
func (s *userService) AdjustBalance(ctx context.Context, adminID, userID int64, amount float64) error {
	if !s.admins.IsMainAdmin(adminID) {
		return apperrors.ErrNotAdmin
	}
	if amount <= 0 {
		return apperrors.ErrInvalidAmount
	}

	if _, err := s.repo.GetUserByID(ctx, userID); err != nil {
		return err
	}
	if err := s.repo.CreditBalance(ctx, userID, amount); err != nil {
		return err
	}

	if err := s.notifier.NotifyUser(ctx, userID, fmt.Sprintf(
		"Администратор пополнил ваш баланс на %.2f$.", amount)); err != nil {
		logger.Log.Warn("failed to notify user", zap.Int64("user_id", userID), zap.Error(err))
	}
	return nil
}
