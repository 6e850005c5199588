package telegram

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/go-telegram/bot"
)

type AckClient interface {
	AnswerCallbackQuery(ctx context.Context, params *bot.AnswerCallbackQueryParams) (bool, error)
}

type ack struct {
	callbackQueryID string
	text            string
}

// AckQueue serializes outbound callback acknowledgements: one consumer
// goroutine, at most one answerCallbackQuery in flight system-wide.
// Failures never block the next entry; nothing is retried.
type AckQueue struct {
	client          AckClient
	items           chan ack
	deliveryTimeout time.Duration
}

func NewAckQueue(client AckClient, capacity int, deliveryTimeout time.Duration) *AckQueue {
	return &AckQueue{
		client:          client,
		items:           make(chan ack, capacity),
		deliveryTimeout: deliveryTimeout,
	}
}

// Enqueue never blocks; when the queue is full the acknowledgement is
// dropped, which costs the user a spinner that times out on its own.
func (q *AckQueue) Enqueue(callbackQueryID, text string) {
	select {
	case q.items <- ack{callbackQueryID: callbackQueryID, text: text}:
	default:
		slog.Warn("ack queue full, dropping acknowledgement",
			"callback_query_id", callbackQueryID)
	}
}

// Run drains the queue one entry at a time until ctx is cancelled. Idle when
// the queue is empty.
func (q *AckQueue) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case a := <-q.items:
			q.deliver(ctx, a)
		}
	}
}

func (q *AckQueue) deliver(ctx context.Context, a ack) {
	ctx, cancel := context.WithTimeout(ctx, q.deliveryTimeout)
	defer cancel()

	_, err := q.client.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: a.callbackQueryID,
		Text:            a.text,
	})
	if err == nil {
		return
	}
	if isStaleCallback(err) {
		// The interaction token expired; answering is pointless.
		slog.Debug("ignoring stale callback query",
			"callback_query_id", a.callbackQueryID)
		return
	}
	slog.Error("answer callback query", "error", err,
		"callback_query_id", a.callbackQueryID)
}

func isStaleCallback(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "query is too old") ||
		strings.Contains(msg, "query id is invalid")
}
