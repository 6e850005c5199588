package service

import (
	"context"

	"github.com/set-night/ucbot/internal/domain"
	"github.com/shopspring/decimal"
)

// Store interfaces implemented by the repository package. Services depend on
// these rather than on pgx directly so the workflows can be tested against
// in-memory fakes.

type UserStore interface {
	GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	CreditTaskCompletion(ctx context.Context, telegramID, taskID int64, reward decimal.Decimal) error
	AppendReferral(ctx context.Context, referrerID, referredID int64, bonus decimal.Decimal) (decimal.Decimal, bool, error)
	ClaimBonus(ctx context.Context, telegramID int64, date string, amount decimal.Decimal) (decimal.Decimal, bool, error)
	Debit(ctx context.Context, telegramID int64, amount decimal.Decimal) (decimal.Decimal, bool, error)
	TopByBalance(ctx context.Context, limit int) ([]domain.User, error)
}

type TaskStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	IncrementCompletions(ctx context.Context, id int64) error
}

type ChannelStore interface {
	All(ctx context.Context) ([]domain.RequiredChannel, error)
}
