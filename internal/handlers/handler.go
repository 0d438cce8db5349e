package handlers

import (
	"github.com/KoshakFSB/WCWD/internal/config"
	"github.com/KoshakFSB/WCWD/internal/service"
)

type Handler struct {
	userService    service.UserService
	accountService service.AccountService
	payoutService  service.PayoutService
	smsWorkService service.SmsWorkService
	services       *config.ServiceState
	secretKey      string
}

func NewHandler(
	userService service.UserService,
	accountService service.AccountService,
	payoutService service.PayoutService,
	smsWorkService service.SmsWorkService,
	services *config.ServiceState,
	secretKey string,
) *Handler {
	return &Handler{
		userService:    userService,
		accountService: accountService,
		payoutService:  payoutService,
		smsWorkService: smsWorkService,
		services:       services,
		secretKey:      secretKey,
	}
}
