package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	TelegramID int64
	Username   string
	Balance    decimal.Decimal

	// ReferredBy is set once at creation and never changed.
	ReferredBy  *int64
	ReferralIDs []int64

	CompletedTaskIDs []int64

	// LastBonusDate is a UTC calendar date in YYYY-MM-DD form,
	// empty until the first daily bonus claim.
	LastBonusDate string

	CreatedAt time.Time
}

func (u *User) HasCompleted(taskID int64) bool {
	for _, id := range u.CompletedTaskIDs {
		if id == taskID {
			return true
		}
	}
	return false
}
