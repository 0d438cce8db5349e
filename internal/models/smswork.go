package models

import "time"

const (
	SmsWorkStatusPending      = "pending"
	SmsWorkStatusAccepted     = "accepted"
	SmsWorkStatusProofPending = "proof_pending"
	SmsWorkStatusCompleted    = "completed"
)

type SmsWork struct {
	ID          int64      `json:"id" db:"id"`
	UserID      int64      `json:"-" db:"user_id"`
	AdminID     *int64     `json:"-" db:"admin_id"`
	Text        string     `json:"text" db:"text"`
	WorkMessage string     `json:"work_message,omitempty" db:"work_message"`
	ProofRef    string     `json:"proof_ref,omitempty" db:"proof_ref"`
	AmountUSD   float64    `json:"amount_usd" db:"amount_usd"`
	Status      string     `json:"status" db:"status"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty" db:"processed_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}
