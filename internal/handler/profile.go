package handler

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/ucbot/internal/middleware"
)

func (h *Handler) handleProfile(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	chatID := update.Message.Chat.ID
	if !h.requireSubscribed(ctx, b, chatID, update.Message.From.ID, "") {
		return
	}

	user := middleware.GetUser(ctx)
	if user == nil {
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: msgRunStart})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text: fmt.Sprintf("Ваш профиль:\nUC: %s\nРефералы: %d\nВыполненные задания: %d",
			user.Balance.String(), len(user.ReferralIDs), len(user.CompletedTaskIDs)),
	})
}
