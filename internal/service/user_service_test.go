package service

import (
	"context"
	"testing"

	"github.com/KoshakFSB/WCWD/internal/apperrors"
	"github.com/KoshakFSB/WCWD/internal/mocks/port_mocks"
	"github.com/KoshakFSB/WCWD/internal/mocks/repository_mocks"
	"github.com/KoshakFSB/WCWD/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type userMocks struct {
	repo     *repository_mocks.MockUserRepository
	notifier *port_mocks.MockNotifier
}

func newUserService(ctrl *gomock.Controller) (*userService, userMocks) {
	m := userMocks{
		repo:     repository_mocks.NewMockUserRepository(ctrl),
		notifier: port_mocks.NewMockNotifier(ctrl),
	}
	return &userService{repo: m.repo, notifier: m.notifier, admins: testAdmins()}, m
}

func TestUserService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	referrerID := int64(7)

	tests := []struct {
		name       string
		referrerID *int64
		mockSetup  func(m userMocks)
		wantErr    error
	}{
		{
			name: "регистрация без реферера",
			mockSetup: func(m userMocks) {
				m.repo.EXPECT().CreateUser(ctx, gomock.AssignableToTypeOf(&models.User{})).DoAndReturn(
					func(_ context.Context, u *models.User) error {
						assert.Equal(t, "newuser", u.Login)
						assert.NotEqual(t, "password", u.Password)
						u.ID = 1
						return nil
					})
			},
		},
		{
			name:       "регистрация по ссылке начисляет бонус рефереру",
			referrerID: &referrerID,
			mockSetup: func(m userMocks) {
				m.repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, u *models.User) error {
						u.ID = 1
						return nil
					})
				m.repo.EXPECT().GetUserByID(ctx, referrerID).Return(&models.User{ID: referrerID}, nil)
				m.repo.EXPECT().AttachReferrer(ctx, int64(1), referrerID, RegistrationReferralBonus).Return(nil)
				m.notifier.EXPECT().NotifyUser(ctx, referrerID, gomock.Any()).Return(nil)
			},
		},
		{
			name:       "несуществующий реферер не срывает регистрацию",
			referrerID: &referrerID,
			mockSetup: func(m userMocks) {
				m.repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, u *models.User) error {
						u.ID = 1
						return nil
					})
				m.repo.EXPECT().GetUserByID(ctx, referrerID).Return(nil, apperrors.ErrUserNotFound)
			},
		},
		{
			name: "повторный логин отклоняется",
			mockSetup: func(m userMocks) {
				m.repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(apperrors.ErrUserAlreadyExists)
			},
			wantErr: apperrors.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newUserService(ctrl)
			tt.mockSetup(m)

			err := svc.Register(ctx, "newuser", "password", "organic", tt.referrerID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserService_Register_SelfReferralIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, m := newUserService(ctrl)

	selfID := int64(1)
	m.repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u *models.User) error {
			u.ID = selfID
			return nil
		})

	assert.NoError(t, svc.Register(ctx, "self", "password", "", &selfID))
}

func TestUserService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	tests := []struct {
		name      string
		password  string
		mockSetup func(m userMocks)
		wantErr   error
	}{
		{
			name:     "успешный вход",
			password: "password",
			mockSetup: func(m userMocks) {
				m.repo.EXPECT().GetUserByLogin(ctx, "user").Return(&models.User{Login: "user", Password: string(hashed)}, nil)
			},
		},
		{
			name:     "неверный пароль",
			password: "wrong",
			mockSetup: func(m userMocks) {
				m.repo.EXPECT().GetUserByLogin(ctx, "user").Return(&models.User{Login: "user", Password: string(hashed)}, nil)
			},
			wantErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "неизвестный логин",
			password: "password",
			mockSetup: func(m userMocks) {
				m.repo.EXPECT().GetUserByLogin(ctx, "user").Return(nil, apperrors.ErrUserNotFound)
			},
			wantErr: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newUserService(ctrl)
			tt.mockSetup(m)

			err := svc.Authenticate(ctx, "user", tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserService_GetUserByID_ComputesLevel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, m := newUserService(ctrl)

	m.repo.EXPECT().GetUserByID(ctx, int64(1)).Return(
		&models.User{ID: 1, WhatsappCount: 10, MaxCount: 4, SmsCount: 2}, nil)

	user, err := svc.GetUserByID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 3, user.Level)
}

func TestUserService_Warn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name      string
		adminID   int64
		mockSetup func(m userMocks)
		wantErr   error
	}{
		{
			name:    "первое предупреждение",
			adminID: 100,
			mockSetup: func(m userMocks) {
				m.repo.EXPECT().AddWarning(ctx, int64(1)).Return(1, nil)
				m.notifier.EXPECT().NotifyUser(ctx, int64(1), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "третье предупреждение блокирует",
			adminID: 100,
			mockSetup: func(m userMocks) {
				m.repo.EXPECT().AddWarning(ctx, int64(1)).Return(3, nil)
				m.notifier.EXPECT().NotifyUser(ctx, int64(1), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ int64, text string) error {
						assert.Contains(t, text, "заблокированы")
						return nil
					})
			},
		},
		{
			name:      "не админ",
			adminID:   1,
			mockSetup: func(m userMocks) {},
			wantErr:   apperrors.ErrNotAdmin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newUserService(ctrl)
			tt.mockSetup(m)

			err := svc.Warn(ctx, tt.adminID, 1, "спам")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserService_AdjustBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name      string
		adminID   int64
		amount    float64
		mockSetup func(m userMocks)
		wantErr   error
	}{
		{
			name:    "главный админ пополняет баланс",
			adminID: 200,
			amount:  5.0,
			mockSetup: func(m userMocks) {
				m.repo.EXPECT().GetUserByID(ctx, int64(1)).Return(&models.User{ID: 1}, nil)
				m.repo.EXPECT().CreditBalance(ctx, int64(1), 5.0).Return(nil)
				m.notifier.EXPECT().NotifyUser(ctx, int64(1), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "обычному админу запрещено",
			adminID:   100,
			amount:    5.0,
			mockSetup: func(m userMocks) {},
			wantErr:   apperrors.ErrNotAdmin,
		},
		{
			name:      "отрицательная сумма отклоняется",
			adminID:   200,
			amount:    -5.0,
			mockSetup: func(m userMocks) {},
			wantErr:   apperrors.ErrInvalidAmount,
		},
		{
			name:    "неизвестный пользователь",
			adminID: 200,
			amount:  5.0,
			mockSetup: func(m userMocks) {
				m.repo.EXPECT().GetUserByID(ctx, int64(1)).Return(nil, apperrors.ErrUserNotFound)
			},
			wantErr: apperrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newUserService(ctrl)
			tt.mockSetup(m)

			err := svc.AdjustBalance(ctx, tt.adminID, 1, tt.amount)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserService_PlatformStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name      string
		adminID   int64
		mockSetup func(m userMocks)
		wantErr   error
	}{
		{
			name:    "админ получает сводку",
			adminID: 100,
			mockSetup: func(m userMocks) {
				m.repo.EXPECT().GetPlatformStats(ctx).Return(&models.PlatformStats{
					TotalUsers:         42,
					ActiveAccounts:     3,
					PendingWithdrawals: 2,
					TotalPaidUSD:       150.5,
				}, nil)
			},
		},
		{
			name:      "не админ",
			adminID:   1,
			mockSetup: func(m userMocks) {},
			wantErr:   apperrors.ErrNotAdmin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newUserService(ctrl)
			tt.mockSetup(m)

			stats, err := svc.PlatformStats(ctx, tt.adminID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, stats)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(42), stats.TotalUsers)
			}
		})
	}
}

func TestUserService_AdminRoster(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("главный админ выдаёт права", func(t *testing.T) {
		svc, m := newUserService(ctrl)
		m.repo.EXPECT().GetUserByID(ctx, int64(5)).Return(&models.User{ID: 5}, nil)
		m.notifier.EXPECT().NotifyUser(ctx, int64(5), gomock.Any()).Return(nil)

		assert.NoError(t, svc.AddAdmin(ctx, 200, 5))
		assert.True(t, svc.admins.IsAdmin(5))
		assert.False(t, svc.admins.IsMainAdmin(5))
	})

	t.Run("обычному админу запрещено менять состав", func(t *testing.T) {
		svc, _ := newUserService(ctrl)
		assert.ErrorIs(t, svc.AddAdmin(ctx, 100, 5), apperrors.ErrNotAdmin)
		assert.ErrorIs(t, svc.RemoveAdmin(ctx, 100, 5), apperrors.ErrNotAdmin)
	})

	t.Run("несуществующий пользователь не становится админом", func(t *testing.T) {
		svc, m := newUserService(ctrl)
		m.repo.EXPECT().GetUserByID(ctx, int64(5)).Return(nil, apperrors.ErrUserNotFound)

		assert.ErrorIs(t, svc.AddAdmin(ctx, 200, 5), apperrors.ErrUserNotFound)
		assert.False(t, svc.admins.IsAdmin(5))
	})

	t.Run("повторная выдача прав", func(t *testing.T) {
		svc, m := newUserService(ctrl)
		m.repo.EXPECT().GetUserByID(ctx, int64(100)).Return(&models.User{ID: 100}, nil)

		assert.ErrorIs(t, svc.AddAdmin(ctx, 200, 100), apperrors.ErrStaleState)
	})

	t.Run("отзыв прав обычного админа", func(t *testing.T) {
		svc, m := newUserService(ctrl)
		m.notifier.EXPECT().NotifyUser(ctx, int64(100), gomock.Any()).Return(nil)

		assert.NoError(t, svc.RemoveAdmin(ctx, 200, 100))
		assert.False(t, svc.admins.IsAdmin(100))
	})

	t.Run("главного админа отозвать нельзя", func(t *testing.T) {
		svc, _ := newUserService(ctrl)
		assert.ErrorIs(t, svc.RemoveAdmin(ctx, 200, 200), apperrors.ErrStaleState)
		assert.True(t, svc.admins.IsAdmin(200))
	})

	t.Run("список доступен только главному админу", func(t *testing.T) {
		svc, _ := newUserService(ctrl)

		ids, err := svc.ListAdmins(ctx, 200)
		assert.NoError(t, err)
		assert.Equal(t, []int64{100, 200}, ids)

		_, err = svc.ListAdmins(ctx, 100)
		assert.ErrorIs(t, err, apperrors.ErrNotAdmin)
	})
}
