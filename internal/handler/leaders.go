package handler

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/ucbot/internal/service"
)

func (h *Handler) handleLeaders(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	chatID := update.Message.Chat.ID
	if !h.requireSubscribed(ctx, b, chatID, update.Message.From.ID, "") {
		return
	}

	top, err := h.leaderboard.Top(ctx)
	if err != nil {
		slog.Error("load leaderboard", "error", err)
		h.sendTryLater(ctx, b, chatID)
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   service.FormatLeaderboard(top),
	})
}
