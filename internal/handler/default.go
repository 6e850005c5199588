package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// HandleDefault receives every message no registered handler claimed. For
// admins it first checks whether a two-step flow is waiting for input;
// otherwise it re-shows the action keyboard.
func (h *Handler) HandleDefault(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}
	chatID := update.Message.Chat.ID

	if h.cfg.IsAdmin(chatID) {
		if kind, ok := h.pending.take(chatID); ok {
			h.processPending(ctx, b, chatID, kind, update.Message.Text)
			return
		}
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        "Выберите действие:",
			ReplyMarkup: adminKeyboard(),
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Выберите действие:",
		ReplyMarkup: mainKeyboard(),
	})
}
