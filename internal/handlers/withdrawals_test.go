package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KoshakFSB/WCWD/internal/apperrors"
	service_mocks "github.com/KoshakFSB/WCWD/internal/mocks/service_mocks"
	"github.com/KoshakFSB/WCWD/internal/models"
	"github.com/golang/mock/gomock"
)

func TestHandler_SubmitWithdrawal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPayoutService := service_mocks.NewMockPayoutService(ctrl)
	h := &Handler{payoutService: mockPayoutService}

	tests := []struct {
		name           string
		body           string
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name: "created",
			body: `{"amount_usd":5}`,
			mockSetup: func() {
				mockPayoutService.EXPECT().SubmitWithdrawal(gomock.Any(), int64(1), 5.0).
					Return(&models.WithdrawRequest{ID: 3, AmountUSD: 5.0}, nil)
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name: "below minimum",
			body: `{"amount_usd":0.5}`,
			mockSetup: func() {
				mockPayoutService.EXPECT().SubmitWithdrawal(gomock.Any(), int64(1), 0.5).
					Return(nil, apperrors.ErrBelowMinimum)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "insufficient balance",
			body: `{"amount_usd":100}`,
			mockSetup: func() {
				mockPayoutService.EXPECT().SubmitWithdrawal(gomock.Any(), int64(1), 100.0).
					Return(nil, apperrors.ErrInsufficientBalance)
			},
			wantStatusCode: http.StatusPaymentRequired,
		},
		{
			name:           "invalid json",
			body:           `{`,
			mockSetup:      func() {},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "service error",
			body: `{"amount_usd":5}`,
			mockSetup: func() {
				mockPayoutService.EXPECT().SubmitWithdrawal(gomock.Any(), int64(1), 5.0).
					Return(nil, errors.New("fail"))
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := authedRequest(http.MethodPost, "/api/user/withdrawals", tt.body, 1)
			w := httptest.NewRecorder()
			h.SubmitWithdrawal(w, req)
			resp := w.Result()
			if resp.StatusCode != tt.wantStatusCode {
				t.Errorf("got status %d, want %d", resp.StatusCode, tt.wantStatusCode)
			}
		})
	}
}

func TestHandler_GetWithdrawals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPayoutService := service_mocks.NewMockPayoutService(ctrl)
	h := &Handler{payoutService: mockPayoutService}

	tests := []struct {
		name           string
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name: "has withdrawals",
			mockSetup: func() {
				mockPayoutService.EXPECT().GetUserWithdrawals(gomock.Any(), int64(1)).
					Return([]models.WithdrawRequest{{ID: 3}}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "no withdrawals",
			mockSetup: func() {
				mockPayoutService.EXPECT().GetUserWithdrawals(gomock.Any(), int64(1)).Return(nil, nil)
			},
			wantStatusCode: http.StatusNoContent,
		},
		{
			name: "service error",
			mockSetup: func() {
				mockPayoutService.EXPECT().GetUserWithdrawals(gomock.Any(), int64(1)).Return(nil, errors.New("fail"))
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := authedRequest(http.MethodGet, "/api/user/withdrawals", "", 1)
			w := httptest.NewRecorder()
			h.GetWithdrawals(w, req)
			resp := w.Result()
			if resp.StatusCode != tt.wantStatusCode {
				t.Errorf("got status %d, want %d", resp.StatusCode, tt.wantStatusCode)
			}
		})
	}
}
