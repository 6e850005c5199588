package service

import (
	"context"
	"testing"

	"github.com/set-night/ucbot/internal/config"
	"github.com/set-night/ucbot/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestFindOrCreate(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users)

	referrer := int64(99)
	u, isNew, err := svc.FindOrCreate(context.Background(), 1, "alice", &referrer)
	require.NoError(t, err)
	require.True(t, isNew)
	require.Equal(t, int64(1), u.TelegramID)
	require.NotNil(t, u.ReferredBy)
	require.Equal(t, referrer, *u.ReferredBy)

	// Second start with a different payload changes nothing.
	other := int64(77)
	u, isNew, err = svc.FindOrCreate(context.Background(), 1, "alice", &other)
	require.NoError(t, err)
	require.False(t, isNew)
	require.Equal(t, referrer, *u.ReferredBy)
}

func TestCreditReferralOnce(t *testing.T) {
	users := newFakeUserStore(&domain.User{TelegramID: 99})
	svc := NewUserService(users)

	balance, credited, err := svc.CreditReferral(context.Background(), 1, 99)
	require.NoError(t, err)
	require.True(t, credited)
	require.True(t, balance.Equal(config.ReferralBonus))

	// Replaying the same pair is a no-op.
	_, credited, err = svc.CreditReferral(context.Background(), 1, 99)
	require.NoError(t, err)
	require.False(t, credited)

	ref, _ := users.GetByTelegramID(context.Background(), 99)
	require.True(t, ref.Balance.Equal(config.ReferralBonus))
	require.Equal(t, []int64{1}, ref.ReferralIDs)
}

func TestCreditReferralGuards(t *testing.T) {
	users := newFakeUserStore(&domain.User{TelegramID: 99})
	svc := NewUserService(users)

	// Self-referral.
	_, credited, err := svc.CreditReferral(context.Background(), 99, 99)
	require.NoError(t, err)
	require.False(t, credited)

	// Referrer the bot has never seen.
	_, credited, err = svc.CreditReferral(context.Background(), 1, 12345)
	require.NoError(t, err)
	require.False(t, credited)
}
