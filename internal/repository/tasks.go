package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/set-night/ucbot/internal/domain"
)

const taskColumns = `id, channel_id, channel_url, title, reward, completion_limit, completions`

type Tasks struct {
	db *pgxpool.Pool
}

func NewTasks(db *pgxpool.Pool) *Tasks {
	return &Tasks{db: db}
}

// Create inserts the task with id = max(current ids) + 1. Not a sequence:
// ids of deleted tasks become assignable again, matching the historical
// id scheme.
func (r *Tasks) Create(ctx context.Context, t *domain.Task) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO tasks (id, channel_id, channel_url, title, reward, completion_limit, completions)
		 VALUES ((SELECT COALESCE(MAX(id), 0) + 1 FROM tasks), $1, $2, $3, $4, $5, 0)
		 RETURNING id`,
		t.ChannelID, t.ChannelURL, t.Title, t.Reward, t.Limit).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (r *Tasks) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

func (r *Tasks) All(ctx context.Context) ([]domain.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

func (r *Tasks) Delete(ctx context.Context, id int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete task: %w", err)
	}
	return ct.RowsAffected() > 0, nil
}

func (r *Tasks) IncrementCompletions(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE tasks SET completions = completions + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment completions: %w", err)
	}
	return nil
}

func (r *Tasks) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return n, nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	err := row.Scan(&t.ID, &t.ChannelID, &t.ChannelURL, &t.Title,
		&t.Reward, &t.Limit, &t.Completions)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
