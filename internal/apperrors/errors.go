package apperrors

import "errors"

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInternalServer     = errors.New("internal server error")
	ErrInvalidAuthHeader  = errors.New("invalid or missing Authorization header")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidCredentials = errors.New("invalid login or password")

	ErrDuplicatePhone      = errors.New("phone already registered for this service")
	ErrInvalidPhone        = errors.New("invalid phone number format")
	ErrServicePaused       = errors.New("service is currently paused")
	ErrAccountNotFound     = errors.New("account not found")
	ErrStaleState          = errors.New("state transition precondition failed")
	ErrGuardHeld           = errors.New("confirmation already in progress for this account")
	ErrConfirmationBlocked = errors.New("confirmation flow blocked after timeout")

	ErrNotAdmin   = errors.New("admin rights required")
	ErrNotOwner   = errors.New("caller does not own this record")
	ErrUserBanned = errors.New("user is banned")

	ErrInvalidAmount       = errors.New("invalid amount")
	ErrBelowMinimum        = errors.New("amount below withdrawal minimum")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrWithdrawalNotFound  = errors.New("withdrawal request not found")

	ErrSmsWorkNotFound = errors.New("sms work not found")
	ErrTextTooShort    = errors.New("sms text too short")
	ErrTextHasLinks    = errors.New("sms text contains links")
)
