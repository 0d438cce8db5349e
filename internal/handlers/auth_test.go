package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KoshakFSB/WCWD/internal/apperrors"
	service_mocks "github.com/KoshakFSB/WCWD/internal/mocks/service_mocks"
	"github.com/KoshakFSB/WCWD/internal/models"
	"github.com/golang/mock/gomock"
)

func TestHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserService := service_mocks.NewMockUserService(ctrl)
	h := &Handler{userService: mockUserService, secretKey: "test"}

	tests := []struct {
		name           string
		body           string
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name: "success",
			body: `{"login":"user","password":"pass"}`,
			mockSetup: func() {
				mockUserService.EXPECT().Register(gomock.Any(), "user", "pass", "", gomock.Nil()).Return(nil)
				mockUserService.EXPECT().GetUserByLogin(gomock.Any(), "user").Return(&models.User{ID: 1, Login: "user"}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "success with referrer",
			body: `{"login":"user","password":"pass","source":"friend","referrer_id":7}`,
			mockSetup: func() {
				mockUserService.EXPECT().Register(gomock.Any(), "user", "pass", "friend", gomock.Not(gomock.Nil())).Return(nil)
				mockUserService.EXPECT().GetUserByLogin(gomock.Any(), "user").Return(&models.User{ID: 1, Login: "user"}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "user already exists",
			body: `{"login":"user","password":"pass"}`,
			mockSetup: func() {
				mockUserService.EXPECT().Register(gomock.Any(), "user", "pass", "", gomock.Nil()).Return(apperrors.ErrUserAlreadyExists)
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name:           "invalid json",
			body:           `{"login":""}`,
			mockSetup:      func() {},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "service error",
			body: `{"login":"user","password":"pass"}`,
			mockSetup: func() {
				mockUserService.EXPECT().Register(gomock.Any(), "user", "pass", "", gomock.Nil()).Return(errors.New("fail"))
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			h.Register(w, req)
			resp := w.Result()
			if resp.StatusCode != tt.wantStatusCode {
				t.Errorf("got status %d, want %d", resp.StatusCode, tt.wantStatusCode)
			}
		})
	}
}

func TestHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserService := service_mocks.NewMockUserService(ctrl)
	h := &Handler{userService: mockUserService, secretKey: "test"}

	tests := []struct {
		name           string
		body           string
		mockSetup      func()
		wantStatusCode int
	}{
		{
			name: "success",
			body: `{"login":"user","password":"pass"}`,
			mockSetup: func() {
				mockUserService.EXPECT().Authenticate(gomock.Any(), "user", "pass").Return(nil)
				mockUserService.EXPECT().GetUserByLogin(gomock.Any(), "user").Return(&models.User{ID: 1, Login: "user"}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "wrong credentials",
			body: `{"login":"user","password":"bad"}`,
			mockSetup: func() {
				mockUserService.EXPECT().Authenticate(gomock.Any(), "user", "bad").Return(apperrors.ErrInvalidCredentials)
			},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "missing password",
			body:           `{"login":"user"}`,
			mockSetup:      func() {},
			wantStatusCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			h.Login(w, req)
			resp := w.Result()
			if resp.StatusCode != tt.wantStatusCode {
				t.Errorf("got status %d, want %d", resp.StatusCode, tt.wantStatusCode)
			}
		})
	}
}
