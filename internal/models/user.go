package models

import "time"

type User struct {
	ID             int64     `json:"-" db:"user_id"`
	Login          string    `json:"login" db:"login"`
	Password       string    `json:"password,omitempty" db:"password_hash"`
	ReferralSource string    `json:"referral_source,omitempty" db:"referral_source"`
	BalanceUSD     float64   `json:"balance_usd" db:"balance_usd"`
	Level          int       `json:"level" db:"level"`
	Warnings       int       `json:"warnings" db:"warnings"`
	WhatsappCount  int       `json:"whatsapp_numbers" db:"whatsapp_numbers"`
	MaxCount       int       `json:"max_numbers" db:"max_numbers"`
	SmsCount       int       `json:"sms_messages" db:"sms_messages"`
	TotalEarnedUSD float64   `json:"total_earned_usd" db:"total_earned_usd"`
	ReferrerID     *int64    `json:"-" db:"referrer_id"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

type PlatformStats struct {
	TotalUsers         int64   `json:"total_users"`
	ActiveAccounts     int64   `json:"active_accounts"`
	PendingWithdrawals int64   `json:"pending_withdrawals"`
	TotalPaidUSD       float64 `json:"total_paid_usd"`
}

type Referral struct {
	ID         int64     `json:"id" db:"id"`
	ReferrerID int64     `json:"referrer_id" db:"referrer_id"`
	ReferredID int64     `json:"referred_id" db:"referred_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
