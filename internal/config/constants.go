package config

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// Leaderboard size
	LeaderboardSize = 10

	// Acknowledgement queue capacity
	AckQueueCapacity = 256

	// Task list layout: how many task buttons share the first row
	TasksFirstRowMax = 5

	// Timeout for a single outbound acknowledgement delivery
	AckDeliveryTimeout = 10 * time.Second

	// Timeout for scraping a channel title from the t.me preview page
	ChannelTitleTimeout = 10 * time.Second
)

var (
	// DailyBonus is credited once per UTC calendar day per user.
	DailyBonus = decimal.RequireFromString("0.25")

	// ReferralBonus is credited to the referrer once per referred user.
	ReferralBonus = decimal.NewFromInt(2)

	// WithdrawalThreshold is both the minimum balance for a withdrawal
	// and the exact amount debited.
	WithdrawalThreshold = decimal.NewFromInt(60)
)
