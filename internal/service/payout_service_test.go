package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KoshakFSB/WCWD/internal/apperrors"
	"github.com/KoshakFSB/WCWD/internal/cryptopay"
	"github.com/KoshakFSB/WCWD/internal/mocks/port_mocks"
	"github.com/KoshakFSB/WCWD/internal/mocks/repository_mocks"
	"github.com/KoshakFSB/WCWD/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

type payoutMocks struct {
	repo     *repository_mocks.MockWithdrawalRepository
	userRepo *repository_mocks.MockUserRepository
	gateway  *port_mocks.MockClientInterface
	notifier *port_mocks.MockNotifier
}

func newPayoutService(ctrl *gomock.Controller) (*payoutService, payoutMocks) {
	m := payoutMocks{
		repo:     repository_mocks.NewMockWithdrawalRepository(ctrl),
		userRepo: repository_mocks.NewMockUserRepository(ctrl),
		gateway:  port_mocks.NewMockClientInterface(ctrl),
		notifier: port_mocks.NewMockNotifier(ctrl),
	}
	svc := &payoutService{
		repo:     m.repo,
		userRepo: m.userRepo,
		gateway:  m.gateway,
		notifier: m.notifier,
		admins:   testAdmins(),
		now:      time.Now,
	}
	return svc, m
}

func TestPayoutService_SubmitWithdrawal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name      string
		amount    float64
		mockSetup func(m payoutMocks)
		wantErr   error
	}{
		{
			name:   "успешная заявка списывает баланс при подаче",
			amount: 5.0,
			mockSetup: func(m payoutMocks) {
				m.repo.EXPECT().CreateWithDebit(ctx, gomock.AssignableToTypeOf(&models.WithdrawRequest{})).DoAndReturn(
					func(_ context.Context, w *models.WithdrawRequest) error {
						assert.Equal(t, int64(1), w.UserID)
						assert.Equal(t, 5.0, w.AmountUSD)
						assert.Equal(t, models.WithdrawStatusPending, w.Status)
						w.ID = 3
						return nil
					})
				m.notifier.EXPECT().NotifyAdmins(ctx, gomock.Any())
			},
		},
		{
			name:      "нулевая сумма отклоняется",
			amount:    0,
			mockSetup: func(m payoutMocks) {},
			wantErr:   apperrors.ErrInvalidAmount,
		},
		{
			name:      "сумма ниже минимума отклоняется",
			amount:    0.5,
			mockSetup: func(m payoutMocks) {},
			wantErr:   apperrors.ErrBelowMinimum,
		},
		{
			name:   "недостаточно средств",
			amount: 100.0,
			mockSetup: func(m payoutMocks) {
				m.repo.EXPECT().CreateWithDebit(ctx, gomock.Any()).Return(apperrors.ErrInsufficientBalance)
			},
			wantErr: apperrors.ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newPayoutService(ctrl)
			tt.mockSetup(m)

			withdrawal, err := svc.SubmitWithdrawal(ctx, 1, tt.amount)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, withdrawal)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, int64(3), withdrawal.ID)
		})
	}
}

func TestPayoutService_ConfirmDue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	referrerID := int64(7)

	due := []models.WithdrawRequest{
		{ID: 1, UserID: 1, AmountUSD: 5.0, Status: models.WithdrawStatusPending},
		{ID: 2, UserID: 2, AmountUSD: 3.0, Status: models.WithdrawStatusPending},
	}

	t.Run("просроченные заявки подтверждаются с реферальным начислением", func(t *testing.T) {
		svc, m := newPayoutService(ctrl)

		m.repo.EXPECT().GetDuePending(ctx, gomock.Any()).Return(due, nil)
		m.repo.EXPECT().Confirm(ctx, int64(1), gomock.Any()).Return(nil)
		m.repo.EXPECT().Confirm(ctx, int64(2), gomock.Any()).Return(nil)

		// user 1 was invited: 5% of 5.00 goes to the referrer
		m.userRepo.EXPECT().GetUserByID(ctx, int64(1)).Return(&models.User{ID: 1, ReferrerID: &referrerID}, nil)
		m.userRepo.EXPECT().CreditBalance(ctx, referrerID, 0.25).Return(nil)
		// user 2 has no referrer, nothing is credited
		m.userRepo.EXPECT().GetUserByID(ctx, int64(2)).Return(&models.User{ID: 2}, nil)

		m.notifier.EXPECT().NotifyUser(ctx, int64(1), gomock.Any()).Return(nil)
		m.notifier.EXPECT().NotifyUser(ctx, int64(2), gomock.Any()).Return(nil)
		m.notifier.EXPECT().NotifyUser(ctx, referrerID, gomock.Any()).Return(nil)

		confirmed, err := svc.ConfirmDue(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 2, confirmed)
	})

	t.Run("уже подтвержденная заявка пропускается", func(t *testing.T) {
		svc, m := newPayoutService(ctrl)

		m.repo.EXPECT().GetDuePending(ctx, gomock.Any()).Return(due[:1], nil)
		m.repo.EXPECT().Confirm(ctx, int64(1), gomock.Any()).Return(apperrors.ErrStaleState)

		confirmed, err := svc.ConfirmDue(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 0, confirmed)
	})

	t.Run("ошибка выборки прерывает проход", func(t *testing.T) {
		svc, m := newPayoutService(ctrl)

		m.repo.EXPECT().GetDuePending(ctx, gomock.Any()).Return(nil, errors.New("db error"))

		_, err := svc.ConfirmDue(ctx)
		assert.Error(t, err)
	})
}

func TestPayoutService_AdminConfirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("админ подтверждает досрочно", func(t *testing.T) {
		svc, m := newPayoutService(ctrl)

		m.repo.EXPECT().GetByID(ctx, int64(1)).Return(
			&models.WithdrawRequest{ID: 1, UserID: 1, AmountUSD: 2.0}, nil)
		m.repo.EXPECT().Confirm(ctx, int64(1), gomock.Any()).Return(nil)
		m.userRepo.EXPECT().GetUserByID(ctx, int64(1)).Return(&models.User{ID: 1}, nil)
		m.notifier.EXPECT().NotifyUser(ctx, int64(1), gomock.Any()).Return(nil)

		assert.NoError(t, svc.AdminConfirm(ctx, 100, 1))
	})

	t.Run("не админ", func(t *testing.T) {
		svc, _ := newPayoutService(ctrl)
		assert.ErrorIs(t, svc.AdminConfirm(ctx, 1, 1), apperrors.ErrNotAdmin)
	})
}

func TestPayoutService_ReferralCommissionRounding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	referrerID := int64(7)

	svc, m := newPayoutService(ctrl)

	// 5% of 1.11 is 0.0555, rounded to 0.06 in cents
	m.repo.EXPECT().GetByID(ctx, int64(1)).Return(
		&models.WithdrawRequest{ID: 1, UserID: 1, AmountUSD: 1.11}, nil)
	m.repo.EXPECT().Confirm(ctx, int64(1), gomock.Any()).Return(nil)
	m.userRepo.EXPECT().GetUserByID(ctx, int64(1)).Return(&models.User{ID: 1, ReferrerID: &referrerID}, nil)
	m.userRepo.EXPECT().CreditBalance(ctx, referrerID, 0.06).Return(nil)
	m.notifier.EXPECT().NotifyUser(ctx, int64(1), gomock.Any()).Return(nil)
	m.notifier.EXPECT().NotifyUser(ctx, referrerID, gomock.Any()).Return(nil)

	assert.NoError(t, svc.AdminConfirm(ctx, 100, 1))
}

func TestPayoutService_ProcessBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	confirmed := []models.WithdrawRequest{
		{ID: 1, UserID: 1, AmountUSD: 5.0, Status: models.WithdrawStatusConfirmed},
		{ID: 2, UserID: 2, AmountUSD: 3.0, Status: models.WithdrawStatusConfirmed},
	}

	t.Run("успешная пачка выдает чеки", func(t *testing.T) {
		svc, m := newPayoutService(ctrl)

		m.repo.EXPECT().GetConfirmedUnpaid(ctx, 2).Return(confirmed, nil)
		m.gateway.EXPECT().CreateCheck(ctx, int64(1), 5.0, gomock.Any()).Return(
			&cryptopay.Check{CheckID: "c1", URL: "https://t.me/c1"}, nil)
		m.gateway.EXPECT().CreateCheck(ctx, int64(2), 3.0, gomock.Any()).Return(
			&cryptopay.Check{CheckID: "c2", URL: "https://t.me/c2"}, nil)
		m.repo.EXPECT().MarkPaid(ctx, int64(1), "c1", "https://t.me/c1", gomock.Any()).Return(nil)
		m.repo.EXPECT().MarkPaid(ctx, int64(2), "c2", "https://t.me/c2", gomock.Any()).Return(nil)
		m.notifier.EXPECT().NotifyUser(ctx, int64(1), gomock.Any()).Return(nil)
		m.notifier.EXPECT().NotifyUser(ctx, int64(2), gomock.Any()).Return(nil)

		result, err := svc.ProcessBatch(ctx, 100, 2)
		assert.NoError(t, err)
		assert.Equal(t, models.BatchResult{Paid: 2}, result)
	})

	t.Run("отказ шлюза оставляет заявку повторяемой", func(t *testing.T) {
		svc, m := newPayoutService(ctrl)

		m.repo.EXPECT().GetConfirmedUnpaid(ctx, 2).Return(confirmed, nil)
		m.gateway.EXPECT().CreateCheck(ctx, int64(1), 5.0, gomock.Any()).Return(nil, errors.New("gateway down"))
		m.gateway.EXPECT().CreateCheck(ctx, int64(2), 3.0, gomock.Any()).Return(
			&cryptopay.Check{CheckID: "c2", URL: "https://t.me/c2"}, nil)
		m.repo.EXPECT().MarkPaid(ctx, int64(2), "c2", "https://t.me/c2", gomock.Any()).Return(nil)
		m.notifier.EXPECT().NotifyUser(ctx, int64(2), gomock.Any()).Return(nil)

		result, err := svc.ProcessBatch(ctx, 100, 2)
		assert.NoError(t, err)
		assert.Equal(t, models.BatchResult{Paid: 1, Failed: 1}, result)
	})

	t.Run("сработавший предохранитель возвращает nil чек", func(t *testing.T) {
		svc, m := newPayoutService(ctrl)

		m.repo.EXPECT().GetConfirmedUnpaid(ctx, 2).Return(confirmed[:1], nil)
		m.gateway.EXPECT().CreateCheck(ctx, int64(1), 5.0, gomock.Any()).Return(nil, nil)

		result, err := svc.ProcessBatch(ctx, 100, 2)
		assert.NoError(t, err)
		assert.Equal(t, models.BatchResult{Failed: 1}, result)
	})

	t.Run("лимит пачки ограничен сверху", func(t *testing.T) {
		svc, m := newPayoutService(ctrl)

		m.repo.EXPECT().GetConfirmedUnpaid(ctx, DefaultBatchLimit).Return(nil, nil)

		result, err := svc.ProcessBatch(ctx, 100, 500)
		assert.NoError(t, err)
		assert.Equal(t, models.BatchResult{}, result)
	})

	t.Run("нулевой лимит заменяется значением по умолчанию", func(t *testing.T) {
		svc, m := newPayoutService(ctrl)

		m.repo.EXPECT().GetConfirmedUnpaid(ctx, DefaultBatchLimit).Return(nil, nil)

		_, err := svc.ProcessBatch(ctx, 100, 0)
		assert.NoError(t, err)
	})

	t.Run("не админ", func(t *testing.T) {
		svc, _ := newPayoutService(ctrl)
		_, err := svc.ProcessBatch(ctx, 1, 10)
		assert.ErrorIs(t, err, apperrors.ErrNotAdmin)
	})
}

func TestPayoutService_RequestTopUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("успешное создание счета", func(t *testing.T) {
		svc, m := newPayoutService(ctrl)

		m.gateway.EXPECT().CreateInvoice(ctx, 10.0, gomock.Any()).Return(
			&cryptopay.Invoice{InvoiceID: "inv1", PayURL: "https://t.me/inv1"}, nil)

		invoice, err := svc.RequestTopUp(ctx, 1, 10.0)
		assert.NoError(t, err)
		assert.Equal(t, "inv1", invoice.InvoiceID)
	})

	t.Run("некорректная сумма", func(t *testing.T) {
		svc, _ := newPayoutService(ctrl)
		_, err := svc.RequestTopUp(ctx, 1, -1)
		assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	})

	t.Run("шлюз недоступен", func(t *testing.T) {
		svc, m := newPayoutService(ctrl)

		m.gateway.EXPECT().CreateInvoice(ctx, 10.0, gomock.Any()).Return(nil, nil)

		_, err := svc.RequestTopUp(ctx, 1, 10.0)
		assert.ErrorIs(t, err, apperrors.ErrInternalServer)
	})
}
