package handler

import "sync"

// pendingKind names the admin flow waiting for its next message.
type pendingKind int

const (
	pendingAddTask pendingKind = iota
	pendingRemoveTask
	pendingAddChannel
	pendingRemoveChannel
	pendingBroadcast
)

// pendingInputs tracks two-step admin conversations: the command prompts for
// parameters and the next message from that chat is consumed as the answer.
// Process-local state, lost on restart, which only costs an admin a repeated
// command.
type pendingInputs struct {
	mu sync.Mutex
	m  map[int64]pendingKind
}

func newPendingInputs() *pendingInputs {
	return &pendingInputs{m: make(map[int64]pendingKind)}
}

func (p *pendingInputs) set(chatID int64, kind pendingKind) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.m[chatID] = kind
}

// take returns and clears the pending flow for the chat.
func (p *pendingInputs) take(chatID int64) (pendingKind, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	kind, ok := p.m[chatID]
	if ok {
		delete(p.m, chatID)
	}
	return kind, ok
}
