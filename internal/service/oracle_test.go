package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/require"
)

type fakeMembershipClient struct {
	mu sync.Mutex
	// memberTypes maps channel id to the chat member type returned for any
	// user; channels missing from the map answer with errs or "left".
	memberTypes map[string]models.ChatMemberType
	errs        map[string]error
	calls       []string
}

func (c *fakeMembershipClient) GetChatMember(_ context.Context, params *bot.GetChatMemberParams) (*models.ChatMember, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	channelID, _ := params.ChatID.(string)
	c.calls = append(c.calls, channelID)
	if err, ok := c.errs[channelID]; ok {
		return nil, err
	}
	mt, ok := c.memberTypes[channelID]
	if !ok {
		mt = models.ChatMemberTypeLeft
	}
	return &models.ChatMember{Type: mt}, nil
}

func (c *fakeMembershipClient) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

func TestOracleVerdicts(t *testing.T) {
	tests := []struct {
		name       string
		memberType models.ChatMemberType
		want       Verdict
	}{
		{"member", models.ChatMemberTypeMember, VerdictMember},
		{"administrator", models.ChatMemberTypeAdministrator, VerdictMember},
		{"owner", models.ChatMemberTypeOwner, VerdictMember},
		{"left", models.ChatMemberTypeLeft, VerdictNotMember},
		{"banned", models.ChatMemberTypeBanned, VerdictNotMember},
		{"restricted", models.ChatMemberTypeRestricted, VerdictNotMember},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeMembershipClient{
				memberTypes: map[string]models.ChatMemberType{"@chan": tt.memberType},
			}
			oracle := NewOracle(client)
			require.Equal(t, tt.want, oracle.CheckMembership(context.Background(), "@chan", 42))
		})
	}
}

func TestOracleErrorClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Verdict
	}{
		{"chat not found", errors.New("Bad Request: chat not found"), VerdictChannelUnresolvable},
		{"user not found", errors.New("Bad Request: user not found"), VerdictChannelUnresolvable},
		{"bot not member", errors.New("Forbidden: bot is not a member of the channel chat"), VerdictChannelUnresolvable},
		{"member list inaccessible", errors.New("Bad Request: member list is inaccessible"), VerdictChannelUnresolvable},
		{"network failure", errors.New("dial tcp: connection refused"), VerdictTransient},
		{"rate limited", errors.New("Too Many Requests: retry after 5"), VerdictTransient},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeMembershipClient{errs: map[string]error{"@chan": tt.err}}
			oracle := NewOracle(client)
			require.Equal(t, tt.want, oracle.CheckMembership(context.Background(), "@chan", 42))
		})
	}
}
