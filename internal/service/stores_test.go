package service

import (
	"context"
	"sort"
	"sync"

	"github.com/set-night/ucbot/internal/domain"
	"github.com/shopspring/decimal"
)

// In-memory store fakes mirroring the repository guard semantics, shared by
// the workflow tests in this package.

type fakeUserStore struct {
	mu    sync.Mutex
	users map[int64]*domain.User
	err   error
}

func newFakeUserStore(users ...*domain.User) *fakeUserStore {
	s := &fakeUserStore{users: make(map[int64]*domain.User)}
	for _, u := range users {
		s.users[u.TelegramID] = u
	}
	return s
}

func (s *fakeUserStore) GetByTelegramID(_ context.Context, telegramID int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[telegramID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *fakeUserStore) Create(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	cp := *u
	s.users[u.TelegramID] = &cp
	return nil
}

func (s *fakeUserStore) CreditTaskCompletion(_ context.Context, telegramID, taskID int64, reward decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	u, ok := s.users[telegramID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.CompletedTaskIDs = append(u.CompletedTaskIDs, taskID)
	u.Balance = u.Balance.Add(reward)
	return nil
}

func (s *fakeUserStore) AppendReferral(_ context.Context, referrerID, referredID int64, bonus decimal.Decimal) (decimal.Decimal, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return decimal.Zero, false, s.err
	}
	u, ok := s.users[referrerID]
	if !ok {
		return decimal.Zero, false, nil
	}
	for _, id := range u.ReferralIDs {
		if id == referredID {
			return decimal.Zero, false, nil
		}
	}
	u.ReferralIDs = append(u.ReferralIDs, referredID)
	u.Balance = u.Balance.Add(bonus)
	return u.Balance, true, nil
}

func (s *fakeUserStore) ClaimBonus(_ context.Context, telegramID int64, date string, amount decimal.Decimal) (decimal.Decimal, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return decimal.Zero, false, s.err
	}
	u, ok := s.users[telegramID]
	if !ok {
		return decimal.Zero, false, nil
	}
	if u.LastBonusDate == date {
		return decimal.Zero, false, nil
	}
	u.LastBonusDate = date
	u.Balance = u.Balance.Add(amount)
	return u.Balance, true, nil
}

func (s *fakeUserStore) Debit(_ context.Context, telegramID int64, amount decimal.Decimal) (decimal.Decimal, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return decimal.Zero, false, s.err
	}
	u, ok := s.users[telegramID]
	if !ok {
		return decimal.Zero, false, nil
	}
	if u.Balance.LessThan(amount) {
		return decimal.Zero, false, nil
	}
	u.Balance = u.Balance.Sub(amount)
	return u.Balance, true, nil
}

func (s *fakeUserStore) TopByBalance(_ context.Context, limit int) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Balance.GreaterThan(out[j].Balance)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeTaskStore struct {
	mu         sync.Mutex
	tasks      map[int64]*domain.Task
	incErr     error
	increments int
}

func newFakeTaskStore(tasks ...*domain.Task) *fakeTaskStore {
	s := &fakeTaskStore{tasks: make(map[int64]*domain.Task)}
	for _, t := range tasks {
		s.tasks[t.ID] = t
	}
	return s
}

func (s *fakeTaskStore) GetByID(_ context.Context, id int64) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	cp := *t
	return &cp, nil
}

func (s *fakeTaskStore) IncrementCompletions(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.increments++
	if s.incErr != nil {
		return s.incErr
	}
	if t, ok := s.tasks[id]; ok {
		t.Completions++
	}
	return nil
}

type fakeChannelStore struct {
	channels []domain.RequiredChannel
	err      error
}

func (s *fakeChannelStore) All(_ context.Context) ([]domain.RequiredChannel, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.channels, nil
}
