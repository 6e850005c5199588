package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Verdict classifies a membership-status response.
type Verdict int

const (
	VerdictMember Verdict = iota
	VerdictNotMember
	// VerdictChannelUnresolvable: the bot cannot see the channel at all
	// (not added to it, or the id is wrong). Surfaced distinctly so the
	// task-check path can tell the user to contact an administrator
	// instead of blaming their subscription.
	VerdictChannelUnresolvable
	// VerdictTransient: any other failure. Treated as not-a-member for
	// gating, logged here.
	VerdictTransient
)

type MembershipClient interface {
	GetChatMember(ctx context.Context, params *bot.GetChatMemberParams) (*models.ChatMember, error)
}

// Oracle wraps the Telegram getChatMember call behind the verdict taxonomy.
type Oracle struct {
	client MembershipClient
}

func NewOracle(client MembershipClient) *Oracle {
	return &Oracle{client: client}
}

func (o *Oracle) CheckMembership(ctx context.Context, channelID string, userID int64) Verdict {
	member, err := o.client.GetChatMember(ctx, &bot.GetChatMemberParams{
		ChatID: channelID,
		UserID: userID,
	})
	if err != nil {
		if isUnresolvableChat(err) {
			slog.Warn("channel unresolvable, bot likely not added to it",
				"channel_id", channelID, "error", err)
			return VerdictChannelUnresolvable
		}
		slog.Error("membership check failed",
			"channel_id", channelID, "user_id", userID, "error", err)
		return VerdictTransient
	}
	if member == nil {
		return VerdictTransient
	}

	switch member.Type {
	case models.ChatMemberTypeOwner, models.ChatMemberTypeAdministrator, models.ChatMemberTypeMember:
		return VerdictMember
	default:
		return VerdictNotMember
	}
}

func isUnresolvableChat(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "chat not found") ||
		strings.Contains(msg, "user not found") ||
		strings.Contains(msg, "bot is not a member") ||
		strings.Contains(msg, "member list is inaccessible")
}
