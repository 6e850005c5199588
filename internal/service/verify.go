package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/set-night/ucbot/internal/domain"
	"github.com/shopspring/decimal"
)

type OutcomeKind int

const (
	OutcomeCredited OutcomeKind = iota
	OutcomeDeniedNotSubscribed
	OutcomeDeniedAlreadyCompleted
	OutcomeDeniedLimitReached
	OutcomeErrorNotFound
	OutcomeErrorChannelUnresolvable
	OutcomeErrorStore
)

// Outcome is the tagged result of a task verification attempt. Credited is
// the only terminal state: re-checking a credited task yields
// OutcomeDeniedAlreadyCompleted; every denial and error is retryable by
// pressing the check button again.
type Outcome struct {
	Kind   OutcomeKind
	Reward decimal.Decimal
	Task   *domain.Task
}

// Verifier decides whether a (user, task) pair may be credited and commits
// the reward.
type Verifier struct {
	users  UserStore
	tasks  TaskStore
	oracle *Oracle
}

func NewVerifier(users UserStore, tasks TaskStore, oracle *Oracle) *Verifier {
	return &Verifier{users: users, tasks: tasks, oracle: oracle}
}

// VerifyAndCredit runs the checks in fixed order: record existence, oracle
// verdict, already-completed, completion limit. Already-completed is checked
// before the limit on purpose: a user who completed a now-exhausted task must
// see "already completed", not "limit reached".
func (v *Verifier) VerifyAndCredit(ctx context.Context, userID, taskID int64) Outcome {
	user, err := v.users.GetByTelegramID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			slog.Error("load user for verification", "user_id", userID, "error", err)
			return Outcome{Kind: OutcomeErrorStore}
		}
		return Outcome{Kind: OutcomeErrorNotFound}
	}

	task, err := v.tasks.GetByID(ctx, taskID)
	if err != nil {
		if !errors.Is(err, domain.ErrTaskNotFound) {
			slog.Error("load task for verification", "task_id", taskID, "error", err)
			return Outcome{Kind: OutcomeErrorStore}
		}
		return Outcome{Kind: OutcomeErrorNotFound}
	}

	switch v.oracle.CheckMembership(ctx, task.ChannelID, userID) {
	case VerdictChannelUnresolvable:
		return Outcome{Kind: OutcomeErrorChannelUnresolvable, Task: task}
	case VerdictNotMember, VerdictTransient:
		return Outcome{Kind: OutcomeDeniedNotSubscribed, Task: task}
	}

	if user.HasCompleted(taskID) {
		return Outcome{Kind: OutcomeDeniedAlreadyCompleted, Task: task}
	}
	if task.LimitReached() {
		return Outcome{Kind: OutcomeDeniedLimitReached, Task: task}
	}

	// Two independent writes, no wrapping transaction. A crash between them
	// leaves the completion counter behind the completed set; single-instance
	// deployment, the window is accepted.
	if err := v.users.CreditTaskCompletion(ctx, userID, taskID, task.Reward); err != nil {
		slog.Error("credit task completion", "user_id", userID, "task_id", taskID, "error", err)
		return Outcome{Kind: OutcomeErrorStore}
	}
	if err := v.tasks.IncrementCompletions(ctx, taskID); err != nil {
		// The user credit is durable, which is what drives idempotence;
		// report the credit and leave the counter to catch up never.
		slog.Error("increment task completions", "task_id", taskID, "error", err)
	}

	task.Completions++
	return Outcome{Kind: OutcomeCredited, Reward: task.Reward, Task: task}
}
