package models

import "time"

const (
	WithdrawStatusPending   = "pending"
	WithdrawStatusConfirmed = "confirmed"
	WithdrawStatusPaid      = "paid"
)

type WithdrawRequest struct {
	ID          int64      `json:"id" db:"id"`
	UserID      int64      `json:"-" db:"user_id"`
	AmountUSD   float64    `json:"amount_usd" db:"amount_usd"`
	Status      string     `json:"status" db:"status"`
	InvoiceID   *string    `json:"invoice_id,omitempty" db:"invoice_id"`
	InvoiceURL  *string    `json:"invoice_url,omitempty" db:"invoice_url"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty" db:"confirmed_at"`
	PaidAt      *time.Time `json:"paid_at,omitempty" db:"paid_at"`
}

// BatchResult is the per-invocation summary of payout batch processing.
// Failed requests stay confirmed and are retried on the next batch.
type BatchResult struct {
	Paid   int `json:"paid"`
	Failed int `json:"failed"`
}
