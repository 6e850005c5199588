package service

import (
	"context"
	"strings"
	"testing"

	"github.com/set-night/ucbot/internal/config"
	"github.com/set-night/ucbot/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardTopCapsAtConfiguredSize(t *testing.T) {
	seed := make([]*domain.User, 0, config.LeaderboardSize+3)
	for i := 0; i < config.LeaderboardSize+3; i++ {
		seed = append(seed, &domain.User{
			TelegramID: int64(i + 1),
			Balance:    decimal.NewFromInt(int64(i)),
		})
	}
	lb := NewLeaderboard(newFakeUserStore(seed...))

	top, err := lb.Top(context.Background())
	require.NoError(t, err)
	require.Len(t, top, config.LeaderboardSize)
	// Highest balance first.
	require.Equal(t, int64(config.LeaderboardSize+3), top[0].TelegramID)
}

func TestFormatLeaderboard(t *testing.T) {
	text := FormatLeaderboard([]domain.User{
		{TelegramID: 1, Username: "alice", Balance: decimal.NewFromInt(50)},
		{TelegramID: 2, Balance: decimal.NewFromInt(10)},
	})
	require.Contains(t, text, "alice")
	require.Contains(t, text, "Анонимный пользователь")
	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.Greater(t, len(lines), 2)
}
