package models

import "time"

type Service string

const (
	ServiceWhatsapp Service = "whatsapp"
	ServiceMax      Service = "max"
	ServiceSms      Service = "sms"
)

const (
	AccountStatusPending   = "pending"
	AccountStatusAccepted  = "accepted"
	AccountStatusConfirmed = "confirmed"
	AccountStatusActive    = "active"
	AccountStatusCompleted = "completed"
	AccountStatusFailed    = "failed"
)

// Account is a rented number of either service. MAX numbers carry a fixed
// 15-minute hold, WhatsApp numbers the hold_hours chosen at submission.
type Account struct {
	ID          int64      `json:"id" db:"id"`
	UserID      int64      `json:"-" db:"user_id"`
	Phone       string     `json:"phone" db:"phone"`
	Service     Service    `json:"service" db:"service"`
	Status      string     `json:"status" db:"status"`
	AdminID     *int64     `json:"-" db:"admin_id"`
	HoldStart   *time.Time `json:"hold_start,omitempty" db:"hold_start"`
	HoldHours   int        `json:"hold_hours" db:"hold_hours"`
	AmountUSD   float64    `json:"amount_usd" db:"amount_usd"`
	CodeText    string     `json:"-" db:"code_text"`
	CodeSent    bool       `json:"code_sent" db:"code_sent"`
	CodeEntered bool       `json:"code_entered" db:"code_entered"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	FailedAt    *time.Time `json:"failed_at,omitempty" db:"failed_at"`
}

func (a *Account) HoldDuration() time.Duration {
	if a.Service == ServiceMax {
		return 15 * time.Minute
	}
	return time.Duration(a.HoldHours) * time.Hour
}

func (a *Account) HoldExpired(now time.Time) bool {
	if a.HoldStart == nil {
		return false
	}
	return !now.Before(a.HoldStart.Add(a.HoldDuration()))
}

func (a *Account) IsTerminal() bool {
	return a.Status == AccountStatusCompleted || a.Status == AccountStatusFailed
}
