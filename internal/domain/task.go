package domain

import "github.com/shopspring/decimal"

// Task is a sponsored join-and-verify action. IDs are assigned by the store
// as max(existing)+1, so the id of a deleted high-numbered task can be
// handed out again.
type Task struct {
	ID         int64
	ChannelID  string
	ChannelURL string

	// Title is the scraped channel title; may be empty when the
	// t.me preview page could not be fetched.
	Title string

	Reward      decimal.Decimal
	Limit       int
	Completions int
}

func (t *Task) LimitReached() bool {
	return t.Completions >= t.Limit
}

func (t *Task) Remaining() int {
	if t.Completions >= t.Limit {
		return 0
	}
	return t.Limit - t.Completions
}
