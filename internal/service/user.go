package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/set-night/ucbot/internal/config"
	"github.com/set-night/ucbot/internal/domain"
	"github.com/shopspring/decimal"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	return s.users.GetByTelegramID(ctx, telegramID)
}

// FindOrCreate returns the existing user or creates one. referrerID is only
// honored at creation; it never changes afterwards.
func (s *UserService) FindOrCreate(ctx context.Context, telegramID int64, username string, referrerID *int64) (*domain.User, bool, error) {
	u, err := s.users.GetByTelegramID(ctx, telegramID)
	if err == nil {
		return u, false, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, false, fmt.Errorf("find user: %w", err)
	}

	u = &domain.User{
		TelegramID: telegramID,
		Username:   username,
		Balance:    decimal.Zero,
		ReferredBy: referrerID,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, false, err
	}
	return u, true, nil
}

// CreditReferral credits the referral bonus to the referrer for a newly
// created user. Safe to call more than once for the same pair: the store's
// already-in-list guard makes the second call a no-op. Returns the
// referrer's balance after the credit when one happened.
func (s *UserService) CreditReferral(ctx context.Context, newUserID, referrerID int64) (decimal.Decimal, bool, error) {
	if newUserID == referrerID {
		return decimal.Zero, false, nil
	}
	if _, err := s.users.GetByTelegramID(ctx, referrerID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("find referrer: %w", err)
	}
	balance, credited, err := s.users.AppendReferral(ctx, referrerID, newUserID, config.ReferralBonus)
	if err != nil {
		return decimal.Zero, false, err
	}
	return balance, credited, nil
}
