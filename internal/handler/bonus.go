package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/ucbot/internal/config"
	"github.com/set-night/ucbot/internal/middleware"
)

func (h *Handler) handleDailyBonus(ctx context.Context, b *bot.Bot, update *models.Update) {
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

	res, err := h.rewards.ClaimDailyBonus(ctx, user.TelegramID)
	if err != nil {
		slog.Error("claim daily bonus", "user_id", user.TelegramID, "error", err)
		h.sendTryLater(ctx, b, chatID)
		return
	}

	text := "Вы уже получили сегодняшний бонус. Приходите завтра! 😊"
	if res.Credited {
		text = fmt.Sprintf("Вы получили ежедневный бонус %s UC! 🎁", config.DailyBonus.String())
	}
	b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text})
}
