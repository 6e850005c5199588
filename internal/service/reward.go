package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/set-night/ucbot/internal/config"
	"github.com/shopspring/decimal"
)

type BonusResult struct {
	Credited   bool
	NewBalance decimal.Decimal
}

type WithdrawalResult struct {
	Approved   bool
	NewBalance decimal.Decimal
	// Reference ties the admin notification to this payout request;
	// no record is stored, the debit itself is the side effect.
	Reference string
}

// RewardService covers the ledger operations outside task verification:
// the daily bonus and withdrawals.
type RewardService struct {
	users UserStore
	now   func() time.Time
}

func NewRewardService(users UserStore) *RewardService {
	return &RewardService{users: users, now: time.Now}
}

// ClaimDailyBonus credits the fixed bonus at most once per UTC calendar day.
// Balance and claim date move in the same persisted write.
func (s *RewardService) ClaimDailyBonus(ctx context.Context, userID int64) (BonusResult, error) {
	today := s.now().UTC().Format(time.DateOnly)
	balance, credited, err := s.users.ClaimBonus(ctx, userID, today, config.DailyBonus)
	if err != nil {
		return BonusResult{}, err
	}
	if !credited {
		u, err := s.users.GetByTelegramID(ctx, userID)
		if err != nil {
			return BonusResult{}, fmt.Errorf("reload user after bonus refusal: %w", err)
		}
		return BonusResult{Credited: false, NewBalance: u.Balance}, nil
	}
	return BonusResult{Credited: true, NewBalance: balance}, nil
}

// RequestWithdrawal debits exactly the withdrawal threshold when the balance
// covers it.
func (s *RewardService) RequestWithdrawal(ctx context.Context, userID int64) (WithdrawalResult, error) {
	balance, ok, err := s.users.Debit(ctx, userID, config.WithdrawalThreshold)
	if err != nil {
		return WithdrawalResult{}, err
	}
	if !ok {
		u, err := s.users.GetByTelegramID(ctx, userID)
		if err != nil {
			return WithdrawalResult{}, fmt.Errorf("reload user after withdrawal refusal: %w", err)
		}
		return WithdrawalResult{Approved: false, NewBalance: u.Balance}, nil
	}
	return WithdrawalResult{
		Approved:   true,
		NewBalance: balance,
		Reference:  uuid.NewString(),
	}, nil
}
