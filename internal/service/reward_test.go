package service

import (
	"context"
	"testing"
	"time"

	"github.com/set-night/ucbot/internal/config"
	"github.com/set-night/ucbot/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestDailyBonusOncePerDay(t *testing.T) {
	users := newFakeUserStore(&domain.User{TelegramID: 1})
	svc := NewRewardService(users)
	svc.now = fixedClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	res, err := svc.ClaimDailyBonus(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, res.Credited)
	require.True(t, res.NewBalance.Equal(config.DailyBonus))

	// Same calendar day, later hour: refused, balance untouched.
	svc.now = fixedClock(time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC))
	res, err = svc.ClaimDailyBonus(context.Background(), 1)
	require.NoError(t, err)
	require.False(t, res.Credited)
	require.True(t, res.NewBalance.Equal(config.DailyBonus))

	// Next day: credited again.
	svc.now = fixedClock(time.Date(2025, 3, 11, 0, 1, 0, 0, time.UTC))
	res, err = svc.ClaimDailyBonus(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, res.Credited)
	require.True(t, res.NewBalance.Equal(config.DailyBonus.Mul(decimal.NewFromInt(2))))
}

func TestWithdrawalBelowThreshold(t *testing.T) {
	balance := config.WithdrawalThreshold.Sub(decimal.NewFromFloat(0.1))
	users := newFakeUserStore(&domain.User{TelegramID: 1, Balance: balance})
	svc := NewRewardService(users)

	res, err := svc.RequestWithdrawal(context.Background(), 1)
	require.NoError(t, err)
	require.False(t, res.Approved)
	require.True(t, res.NewBalance.Equal(balance))
	require.Empty(t, res.Reference)
}

func TestWithdrawalAtThreshold(t *testing.T) {
	users := newFakeUserStore(&domain.User{TelegramID: 1, Balance: config.WithdrawalThreshold})
	svc := NewRewardService(users)

	res, err := svc.RequestWithdrawal(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, res.Approved)
	require.True(t, res.NewBalance.IsZero())
	require.NotEmpty(t, res.Reference)

	// Immediately asking again fails on the drained balance.
	res, err = svc.RequestWithdrawal(context.Background(), 1)
	require.NoError(t, err)
	require.False(t, res.Approved)
}

func TestWithdrawalDebitsExactlyThreshold(t *testing.T) {
	surplus := decimal.NewFromInt(15)
	users := newFakeUserStore(&domain.User{
		TelegramID: 1,
		Balance:    config.WithdrawalThreshold.Add(surplus),
	})
	svc := NewRewardService(users)

	res, err := svc.RequestWithdrawal(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, res.Approved)
	require.True(t, res.NewBalance.Equal(surplus))
}
