package service

import "time"

// Rewards are fixed at submission time and never re-evaluated, so edits to
// these tables only affect accounts submitted afterwards.
var WhatsappRates = map[int]float64{
	1: 8.0,
	2: 10.0,
	3: 12.0,
}

const (
	MaxRate = 9.0
	SmsRate = 0.3

	RegistrationReferralBonus = 0.1
	WithdrawalReferralShare   = 0.05
	MinWithdrawalUSD          = 1.0

	AutoConfirmDelay = time.Hour
	WarnBanThreshold = 3

	DefaultBatchLimit = 50
)

var ratingLevels = []struct {
	level     int
	threshold int
}{
	{1, 0}, {2, 6}, {3, 16}, {4, 31}, {5, 51},
	{6, 76}, {7, 106}, {8, 141}, {9, 181}, {10, 226},
}

// CalculateLevel maps a completed-work count onto the rating ladder.
func CalculateLevel(completed int) int {
	level := 1
	for _, rl := range ratingLevels {
		if completed >= rl.threshold {
			level = rl.level
		}
	}
	return level
}

// AdminChecker reports caller privileges from the injected admin roster.
type AdminChecker interface {
	IsAdmin(userID int64) bool
	IsMainAdmin(userID int64) bool
}

// AdminRoster extends AdminChecker with the runtime roster mutations
// reserved for main admins.
type AdminRoster interface {
	AdminChecker
	Add(userID int64) bool
	Remove(userID int64) bool
	Snapshot() []int64
}
