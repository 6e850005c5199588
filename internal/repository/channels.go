package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/set-night/ucbot/internal/domain"
)

type Channels struct {
	db *pgxpool.Pool
}

func NewChannels(db *pgxpool.Pool) *Channels {
	return &Channels{db: db}
}

func (r *Channels) All(ctx context.Context) ([]domain.RequiredChannel, error) {
	rows, err := r.db.Query(ctx,
		`SELECT channel_id, channel_url, title FROM required_channels ORDER BY channel_id`)
	if err != nil {
		return nil, fmt.Errorf("list required channels: %w", err)
	}
	defer rows.Close()

	var channels []domain.RequiredChannel
	for rows.Next() {
		var ch domain.RequiredChannel
		if err := rows.Scan(&ch.ChannelID, &ch.ChannelURL, &ch.Title); err != nil {
			return nil, fmt.Errorf("scan required channel: %w", err)
		}
		channels = append(channels, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate required channels: %w", err)
	}
	return channels, nil
}

func (r *Channels) Add(ctx context.Context, ch *domain.RequiredChannel) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO required_channels (channel_id, channel_url, title)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (channel_id) DO UPDATE SET channel_url = $2, title = $3`,
		ch.ChannelID, ch.ChannelURL, ch.Title)
	if err != nil {
		return fmt.Errorf("add required channel: %w", err)
	}
	return nil
}

// RemoveByURL removes the channel identified by its public link, the way
// admins see channels in the removal keyboard.
func (r *Channels) RemoveByURL(ctx context.Context, channelURL string) (bool, error) {
	ct, err := r.db.Exec(ctx,
		`DELETE FROM required_channels WHERE channel_url = $1`, channelURL)
	if err != nil {
		return false, fmt.Errorf("remove required channel: %w", err)
	}
	return ct.RowsAffected() > 0, nil
}

func (r *Channels) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM required_channels`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count required channels: %w", err)
	}
	return n, nil
}
