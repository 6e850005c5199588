package handler

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/ucbot/internal/config"
	"github.com/set-night/ucbot/internal/middleware"
)

func (h *Handler) handleReferral(ctx context.Context, b *bot.Bot, update *models.Update) {
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

	link := fmt.Sprintf("https://t.me/%s?start=%d", h.botUsername, user.TelegramID)
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text: fmt.Sprintf(
			"Ваша реферальная ссылка: %s\nКоличество рефералов: %d\n\nПоделитесь этой ссылкой с друзьями и получайте %s UC за каждого приглашенного пользователя!",
			link, len(user.ReferralIDs), config.ReferralBonus.String()),
	})
}
