package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/KoshakFSB/WCWD/internal/apperrors"
	"github.com/KoshakFSB/WCWD/internal/config"
	"github.com/KoshakFSB/WCWD/internal/logger"
	"github.com/KoshakFSB/WCWD/internal/models"
	"github.com/KoshakFSB/WCWD/internal/notify"
	"github.com/KoshakFSB/WCWD/internal/repository"
	"go.uber.org/zap"
)

const minSmsTextLen = 10

var linkMarkers = []string{"http://", "https://", "www.", ".com", ".ru"}

type SmsWorkService interface {
	Submit(ctx context.Context, userID int64, text string) (*models.SmsWork, error)
	GetUserWorks(ctx context.Context, userID int64) ([]models.SmsWork, error)
	ListByStatus(ctx context.Context, status string) ([]models.SmsWork, error)
	AdminAccept(ctx context.Context, adminID, workID int64, workMessage string) error
	AttachProof(ctx context.Context, userID, workID int64, proofRef string) error
	AdminComplete(ctx context.Context, adminID, workID int64) error
}

type smsWorkService struct {
	repo     repository.SmsWorkRepository
	userRepo repository.UserRepository
	notifier notify.Notifier
	admins   AdminChecker
	services *config.ServiceState
	now      func() time.Time
}

func NewSmsWorkService(
	repo repository.SmsWorkRepository,
	userRepo repository.UserRepository,
	notifier notify.Notifier,
	admins AdminChecker,
	services *config.ServiceState,
) SmsWorkService {
	return &smsWorkService{
		repo:     repo,
		userRepo: userRepo,
		notifier: notifier,
		admins:   admins,
		services: services,
		now:      time.Now,
	}
}

func (s *smsWorkService) Submit(ctx context.Context, userID int64, text string) (*models.SmsWork, error) {
	if !s.services.IsActive(string(models.ServiceSms)) {
		return nil, apperrors.ErrServicePaused
	}

	text = strings.TrimSpace(text)
	if len([]rune(text)) < minSmsTextLen {
		return nil, apperrors.ErrTextTooShort
	}
	for _, marker := range linkMarkers {
		if strings.Contains(text, marker) {
			return nil, apperrors.ErrTextHasLinks
		}
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Warnings >= WarnBanThreshold {
		return nil, apperrors.ErrUserBanned
	}

	work := &models.SmsWork{
		UserID:    userID,
		Text:      text,
		AmountUSD: SmsRate,
		Status:    models.SmsWorkStatusPending,
	}
	if err := s.repo.Create(ctx, work); err != nil {
		return nil, err
	}

	s.notifier.NotifyAdmins(ctx, fmt.Sprintf(
		"Новая SMS работа от пользователя %d, ставка %.2f$ (ID %d)", userID, SmsRate, work.ID))
	return work, nil
}

func (s *smsWorkService) GetUserWorks(ctx context.Context, userID int64) ([]models.SmsWork, error) {
	return s.repo.GetByUser(ctx, userID)
}

func (s *smsWorkService) ListByStatus(ctx context.Context, status string) ([]models.SmsWork, error) {
	return s.repo.ListByStatus(ctx, status)
}

func (s *smsWorkService) AdminAccept(ctx context.Context, adminID, workID int64, workMessage string) error {
	if !s.admins.IsAdmin(adminID) {
		return apperrors.ErrNotAdmin
	}

	work, err := s.repo.GetByID(ctx, workID)
	if err != nil {
		return err
	}

	if err := s.repo.Accept(ctx, workID, adminID, workMessage, s.now()); err != nil {
		return err
	}

	s.notifyUser(ctx, work.UserID, fmt.Sprintf(
		"SMS работа %d принята. Задание: %s", workID, workMessage))
	return nil
}

func (s *smsWorkService) AttachProof(ctx context.Context, userID, workID int64, proofRef string) error {
	work, err := s.repo.GetByID(ctx, workID)
	if err != nil {
		return err
	}
	if work.UserID != userID {
		return apperrors.ErrNotOwner
	}

	if err := s.repo.AttachProof(ctx, workID, proofRef); err != nil {
		return err
	}

	s.notifier.NotifyAdmins(ctx, fmt.Sprintf(
		"Пользователь %d отправил подтверждение по SMS работе %d.", userID, workID))
	return nil
}

// AdminComplete credits the reward exactly once; a second completion attempt
// hits the conditional transition and fails with ErrStaleState.
func (s *smsWorkService) AdminComplete(ctx context.Context, adminID, workID int64) error {
	if !s.admins.IsAdmin(adminID) {
		return apperrors.ErrNotAdmin
	}

	work, err := s.repo.GetByID(ctx, workID)
	if err != nil {
		return err
	}

	if err := s.repo.Complete(ctx, work); err != nil {
		return err
	}

	s.refreshLevel(ctx, work.UserID)
	s.notifyUser(ctx, work.UserID, fmt.Sprintf(
		"SMS работа %d завершена. Начислено %.2f$.", workID, work.AmountUSD))
	return nil
}

func (s *smsWorkService) refreshLevel(ctx context.Context, userID int64) {
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

func (s *smsWorkService) notifyUser(ctx context.Context, userID int64, text string) {
	if err := s.notifier.NotifyUser(ctx, userID, text); err != nil {
		logger.Log.Warn("failed to notify user", zap.Int64("user_id", userID), zap.Error(err))
	}
}
