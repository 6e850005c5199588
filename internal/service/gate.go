package service

import (
	"context"
	"fmt"

	"github.com/set-night/ucbot/internal/domain"
)

type GateResult struct {
	AllSatisfied bool
	// Channels is the full required list, returned for re-displaying the
	// join keyboard regardless of which channel failed.
	Channels []domain.RequiredChannel
}

// Gate is the mandatory required-channel precondition applied to every
// user-facing action except the greeting.
type Gate struct {
	channels ChannelStore
	oracle   *Oracle
}

func NewGate(channels ChannelStore, oracle *Oracle) *Gate {
	return &Gate{channels: channels, oracle: oracle}
}

// CheckAllRequired stops at the first channel the user is not a member of.
// Checks are I/O-bound and the UI only needs pass/fail, so the rest of the
// list is not evaluated. Unresolvable channels and transient oracle errors
// both count as unsatisfied here.
func (g *Gate) CheckAllRequired(ctx context.Context, userID int64) (GateResult, error) {
	channels, err := g.channels.All(ctx)
	if err != nil {
		return GateResult{}, fmt.Errorf("load required channels: %w", err)
	}

	res := GateResult{AllSatisfied: true, Channels: channels}
	for _, ch := range channels {
		if g.oracle.CheckMembership(ctx, ch.ChannelID, userID) != VerdictMember {
			res.AllSatisfied = false
			break
		}
	}
	return res, nil
}
