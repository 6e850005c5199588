package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/set-night/ucbot/internal/domain"
	"github.com/shopspring/decimal"
)

const userColumns = `telegram_id, username, balance, referred_by, referral_ids,
	completed_task_ids, COALESCE(last_bonus_date, ''), created_at`

type Users struct {
	db *pgxpool.Pool
}

func NewUsers(db *pgxpool.Pool) *Users {
	return &Users{db: db}
}

func (r *Users) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE telegram_id = $1`, telegramID)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (r *Users) Create(ctx context.Context, u *domain.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (telegram_id, username, balance, referred_by)
		 VALUES ($1, $2, $3, $4)`,
		u.TelegramID, u.Username, u.Balance, u.ReferredBy)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *Users) All(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return collectUsers(rows)
}

func (r *Users) TopByBalance(ctx context.Context, limit int) ([]domain.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY balance DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("top users: %w", err)
	}
	return collectUsers(rows)
}

func (r *Users) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// TotalBalance is the sum of all user balances, reported in admin stats
// as the total UC issued.
func (r *Users) TotalBalance(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(balance), 0) FROM users`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total balance: %w", err)
	}
	return total, nil
}

// CreditTaskCompletion records a task in the user's completed set and adds
// the reward to the balance in a single write.
func (r *Users) CreditTaskCompletion(ctx context.Context, telegramID, taskID int64, reward decimal.Decimal) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users
		 SET completed_task_ids = array_append(completed_task_ids, $2),
		     balance = balance + $3
		 WHERE telegram_id = $1`,
		telegramID, taskID, reward)
	if err != nil {
		return fmt.Errorf("credit task completion: %w", err)
	}
	return nil
}

// AppendReferral appends referredID to the referrer's referral list and
// credits the bonus. The WHERE clause is the double-credit guard: a referred
// user already present in the list leaves the row untouched.
func (r *Users) AppendReferral(ctx context.Context, referrerID, referredID int64, bonus decimal.Decimal) (decimal.Decimal, bool, error) {
	var balance decimal.Decimal
	err := r.db.QueryRow(ctx,
		`UPDATE users
		 SET referral_ids = array_append(referral_ids, $2),
		     balance = balance + $3
		 WHERE telegram_id = $1 AND NOT ($2 = ANY(referral_ids))
		 RETURNING balance`,
		referrerID, referredID, bonus).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("append referral: %w", err)
	}
	return balance, true, nil
}

// ClaimBonus credits the daily bonus and stamps the claim date in the same
// write. No row matches when the bonus was already claimed today.
func (r *Users) ClaimBonus(ctx context.Context, telegramID int64, date string, amount decimal.Decimal) (decimal.Decimal, bool, error) {
	var balance decimal.Decimal
	err := r.db.QueryRow(ctx,
		`UPDATE users
		 SET balance = balance + $3, last_bonus_date = $2
		 WHERE telegram_id = $1
		   AND (last_bonus_date IS NULL OR last_bonus_date <> $2)
		 RETURNING balance`,
		telegramID, date, amount).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("claim bonus: %w", err)
	}
	return balance, true, nil
}

// Debit subtracts amount from the balance when the balance covers it.
func (r *Users) Debit(ctx context.Context, telegramID int64, amount decimal.Decimal) (decimal.Decimal, bool, error) {
	var balance decimal.Decimal
	err := r.db.QueryRow(ctx,
		`UPDATE users
		 SET balance = balance - $2
		 WHERE telegram_id = $1 AND balance >= $2
		 RETURNING balance`,
		telegramID, amount).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("debit user: %w", err)
	}
	return balance, true, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.TelegramID, &u.Username, &u.Balance, &u.ReferredBy,
		&u.ReferralIDs, &u.CompletedTaskIDs, &u.LastBonusDate, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func collectUsers(rows pgx.Rows) ([]domain.User, error) {
	defer rows.Close()
	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}
