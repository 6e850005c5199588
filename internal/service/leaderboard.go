package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/set-night/ucbot/internal/config"
	"github.com/set-night/ucbot/internal/domain"
)

type Leaderboard struct {
	users UserStore
}

func NewLeaderboard(users UserStore) *Leaderboard {
	return &Leaderboard{users: users}
}

func (l *Leaderboard) Top(ctx context.Context) ([]domain.User, error) {
	return l.users.TopByBalance(ctx, config.LeaderboardSize)
}

// FormatLeaderboard renders the top list for both the user command and the
// daily digest.
func FormatLeaderboard(users []domain.User) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🏆 Топ-%d лидеров по UC:\n\n", config.LeaderboardSize)
	for i, u := range users {
		name := u.Username
		if name == "" {
			name = "Анонимный пользователь"
		}
		fmt.Fprintf(&sb, "%d. %s: %s UC\n", i+1, name, u.Balance.String())
	}
	return sb.String()
}
