package service

import (
	"context"
	"testing"
	"time"

	"github.com/KoshakFSB/WCWD/internal/apperrors"
	"github.com/KoshakFSB/WCWD/internal/config"
	"github.com/KoshakFSB/WCWD/internal/mocks/port_mocks"
	"github.com/KoshakFSB/WCWD/internal/mocks/repository_mocks"
	"github.com/KoshakFSB/WCWD/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

type smsMocks struct {
	repo     *repository_mocks.MockSmsWorkRepository
	userRepo *repository_mocks.MockUserRepository
	notifier *port_mocks.MockNotifier
}

func newSmsWorkService(ctrl *gomock.Controller) (*smsWorkService, smsMocks) {
	m := smsMocks{
		repo:     repository_mocks.NewMockSmsWorkRepository(ctrl),
		userRepo: repository_mocks.NewMockUserRepository(ctrl),
		notifier: port_mocks.NewMockNotifier(ctrl),
	}
	svc := &smsWorkService{
		repo:     m.repo,
		userRepo: m.userRepo,
		notifier: m.notifier,
		admins:   testAdmins(),
		services: config.NewServiceState("whatsapp", "max", "sms"),
		now:      time.Now,
	}
	return svc, m
}

func TestSmsWorkService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name      string
		text      string
		paused    bool
		mockSetup func(m smsMocks)
		wantErr   error
	}{
		{
			name: "успешная подача с фиксированной ставкой",
			text: "Привет, это тестовое сообщение",
			mockSetup: func(m smsMocks) {
				m.userRepo.EXPECT().GetUserByID(ctx, int64(1)).Return(&models.User{ID: 1}, nil)
				m.repo.EXPECT().Create(ctx, gomock.AssignableToTypeOf(&models.SmsWork{})).DoAndReturn(
					func(_ context.Context, w *models.SmsWork) error {
						assert.Equal(t, SmsRate, w.AmountUSD)
						assert.Equal(t, models.SmsWorkStatusPending, w.Status)
						w.ID = 4
						return nil
					})
				m.notifier.EXPECT().NotifyAdmins(ctx, gomock.Any())
			},
		},
		{
			name:      "короткий текст отклоняется",
			text:      "привет",
			mockSetup: func(m smsMocks) {},
			wantErr:   apperrors.ErrTextTooShort,
		},
		{
			name:      "текст со ссылкой отклоняется",
			text:      "Зайди на https://example.org прямо сейчас",
			mockSetup: func(m smsMocks) {},
			wantErr:   apperrors.ErrTextHasLinks,
		},
		{
			name:      "пробелы не считаются длиной",
			text:      "   короткий   ",
			mockSetup: func(m smsMocks) {},
			wantErr:   apperrors.ErrTextTooShort,
		},
		{
			name:      "приостановленный sms канал",
			text:      "Привет, это тестовое сообщение",
			paused:    true,
			mockSetup: func(m smsMocks) {},
			wantErr:   apperrors.ErrServicePaused,
		},
		{
			name: "забаненный пользователь",
			text: "Привет, это тестовое сообщение",
			mockSetup: func(m smsMocks) {
				m.userRepo.EXPECT().GetUserByID(ctx, int64(1)).Return(&models.User{ID: 1, Warnings: 3}, nil)
			},
			wantErr: apperrors.ErrUserBanned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newSmsWorkService(ctrl)
			if tt.paused {
				svc.services.Set(string(models.ServiceSms), false)
			}
			tt.mockSetup(m)

			work, err := svc.Submit(ctx, 1, tt.text)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, work)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, int64(4), work.ID)
		})
	}
}

func TestSmsWorkService_AttachProof(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	work := &models.SmsWork{ID: 4, UserID: 1, Status: models.SmsWorkStatusAccepted}

	tests := []struct {
		name      string
		userID    int64
		mockSetup func(m smsMocks)
		wantErr   error
	}{
		{
			name:   "владелец прикладывает подтверждение",
			userID: 1,
			mockSetup: func(m smsMocks) {
				m.repo.EXPECT().GetByID(ctx, int64(4)).Return(work, nil)
				m.repo.EXPECT().AttachProof(ctx, int64(4), "proof-123").Return(nil)
				m.notifier.EXPECT().NotifyAdmins(ctx, gomock.Any())
			},
		},
		{
			name:   "чужая работа недоступна",
			userID: 2,
			mockSetup: func(m smsMocks) {
				m.repo.EXPECT().GetByID(ctx, int64(4)).Return(work, nil)
			},
			wantErr: apperrors.ErrNotOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newSmsWorkService(ctrl)
			tt.mockSetup(m)

			err := svc.AttachProof(ctx, tt.userID, 4, "proof-123")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSmsWorkService_AdminComplete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	work := &models.SmsWork{ID: 4, UserID: 1, AmountUSD: SmsRate, Status: models.SmsWorkStatusProofPending}

	t.Run("завершение начисляет награду один раз", func(t *testing.T) {
		svc, m := newSmsWorkService(ctrl)

		m.repo.EXPECT().GetByID(ctx, int64(4)).Return(work, nil)
		m.repo.EXPECT().Complete(ctx, work).Return(nil)
		m.userRepo.EXPECT().GetUserByID(ctx, int64(1)).Return(&models.User{ID: 1, Level: 1, SmsCount: 1}, nil)
		m.notifier.EXPECT().NotifyUser(ctx, int64(1), gomock.Any()).Return(nil)

		assert.NoError(t, svc.AdminComplete(ctx, 100, 4))
	})

	t.Run("повторное завершение натыкается на устаревшее состояние", func(t *testing.T) {
		svc, m := newSmsWorkService(ctrl)

		m.repo.EXPECT().GetByID(ctx, int64(4)).Return(work, nil)
		m.repo.EXPECT().Complete(ctx, work).Return(apperrors.ErrStaleState)

		assert.ErrorIs(t, svc.AdminComplete(ctx, 100, 4), apperrors.ErrStaleState)
	})

	t.Run("не админ", func(t *testing.T) {
		svc, _ := newSmsWorkService(ctrl)
		assert.ErrorIs(t, svc.AdminComplete(ctx, 1, 4), apperrors.ErrNotAdmin)
	})
}

func TestSmsWorkService_AdminAccept(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, m := newSmsWorkService(ctrl)

	work := &models.SmsWork{ID: 4, UserID: 1, Status: models.SmsWorkStatusPending}
	m.repo.EXPECT().GetByID(ctx, int64(4)).Return(work, nil)
	m.repo.EXPECT().Accept(ctx, int64(4), int64(100), "отправьте смс на номер", gomock.Any()).Return(nil)
	m.notifier.EXPECT().NotifyUser(ctx, int64(1), gomock.Any()).Return(nil)

	assert.NoError(t, svc.AdminAccept(ctx, 100, 4, "отправьте смс на номер"))
}
