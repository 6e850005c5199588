package telegram

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-telegram/bot"
	"github.com/stretchr/testify/require"
)

type fakeAckClient struct {
	mu      sync.Mutex
	calls   []string
	errs    map[string]error
	gate    chan struct{}
	entered chan string
}

func (c *fakeAckClient) AnswerCallbackQuery(_ context.Context, params *bot.AnswerCallbackQueryParams) (bool, error) {
	if c.entered != nil {
		c.entered <- params.CallbackQueryID
	}
	if c.gate != nil {
		<-c.gate
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, params.CallbackQueryID)
	if err, ok := c.errs[params.CallbackQueryID]; ok {
		return false, err
	}
	return true, nil
}

func (c *fakeAckClient) delivered() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestAckQueueDeliversInOrder(t *testing.T) {
	client := &fakeAckClient{}
	q := NewAckQueue(client, 16, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go q.Run(ctx)

	q.Enqueue("a", "first")
	q.Enqueue("b", "second")
	q.Enqueue("c", "third")

	waitFor(t, func() bool { return len(client.delivered()) == 3 })
	require.Equal(t, []string{"a", "b", "c"}, client.delivered())
}

func TestAckQueueSingleFlight(t *testing.T) {
	client := &fakeAckClient{
		gate:    make(chan struct{}),
		entered: make(chan string, 8),
	}
	q := NewAckQueue(client, 16, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go q.Run(ctx)

	q.Enqueue("a", "first")
	q.Enqueue("b", "second")

	// The consumer sits inside the first delivery; the second must wait.
	require.Equal(t, "a", <-client.entered)
	select {
	case id := <-client.entered:
		t.Fatalf("second delivery %q started before the first finished", id)
	case <-time.After(50 * time.Millisecond):
	}

	client.gate <- struct{}{}
	require.Equal(t, "b", <-client.entered)
	client.gate <- struct{}{}

	waitFor(t, func() bool { return len(client.delivered()) == 2 })
}

func TestAckQueueFailureDoesNotBlockNext(t *testing.T) {
	client := &fakeAckClient{errs: map[string]error{
		"bad":   errors.New("Internal Server Error"),
		"stale": errors.New("Bad Request: query is too old and response timeout expired or query id is invalid"),
	}}
	q := NewAckQueue(client, 16, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go q.Run(ctx)

	q.Enqueue("bad", "boom")
	q.Enqueue("stale", "expired")
	q.Enqueue("ok", "fine")

	// Errors and stale drops are swallowed; the good one still lands.
	waitFor(t, func() bool { return len(client.delivered()) == 3 })
	require.Equal(t, []string{"bad", "stale", "ok"}, client.delivered())
}

func TestAckQueueDropsWhenFull(t *testing.T) {
	client := &fakeAckClient{}
	q := NewAckQueue(client, 2, time.Second)

	// No consumer running: the third enqueue overflows and is dropped.
	q.Enqueue("a", "1")
	q.Enqueue("b", "2")
	q.Enqueue("c", "3")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go q.Run(ctx)

	waitFor(t, func() bool { return len(client.delivered()) == 2 })
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, []string{"a", "b"}, client.delivered())
}

func TestStaleCallbackDetection(t *testing.T) {
	require.True(t, isStaleCallback(errors.New("Bad Request: query is too old")))
	require.True(t, isStaleCallback(errors.New("Bad Request: QUERY ID is invalid")))
	require.False(t, isStaleCallback(errors.New("Too Many Requests")))
}
