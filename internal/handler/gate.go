package handler

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/ucbot/internal/domain"
	tg "github.com/set-night/ucbot/internal/telegram"
)

const (
	msgTryLater       = "Произошла ошибка. Пожалуйста, попробуйте позже."
	msgRunStart       = "Пользователь не найден. Пожалуйста, запустите бота с помощью /start"
	msgNotAllChannels = "Вы подписались не на все каналы. Пожалуйста, подпишитесь на все каналы и попробуйте снова."
	msgJoinAndRetry   = "Пожалуйста, подпишитесь на все каналы и нажмите кнопку «Проверить» еще раз."
	msgGateError      = "Произошла ошибка при проверке подписок. Пожалуйста, попробуйте позже."
)

// requireSubscribed runs the required-channel gate. On failure the join
// keyboard is re-sent; callbackID, when non-empty, additionally gets an
// acknowledgement through the queue.
func (h *Handler) requireSubscribed(ctx context.Context, b *bot.Bot, chatID, userID int64, callbackID string) bool {
	res, err := h.gate.CheckAllRequired(ctx, userID)
	if err != nil {
		slog.Error("required-channel gate", "user_id", userID, "error", err)
		if callbackID != "" {
			h.ackq.Enqueue(callbackID, msgGateError)
		}
		return false
	}
	if res.AllSatisfied {
		return true
	}

	if callbackID != "" {
		h.ackq.Enqueue(callbackID, msgNotAllChannels)
	}
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        msgJoinAndRetry,
		ReplyMarkup: joinKeyboard(res.Channels),
	})
	return false
}

func joinKeyboard(channels []domain.RequiredChannel) *models.InlineKeyboardMarkup {
	rows := make([][]models.InlineKeyboardButton, 0, len(channels)+1)
	for _, ch := range channels {
		label := ch.Title
		if label == "" {
			label = ch.ChannelURL
		}
		rows = append(rows, tg.ButtonRow(tg.URLButton(label, ch.ChannelURL)))
	}
	rows = append(rows, tg.ButtonRow(tg.InlineButton("✔ Проверить", "check_subscriptions")))
	return tg.InlineKeyboard(rows...)
}

func (h *Handler) sendTryLater(ctx context.Context, b *bot.Bot, chatID int64) {
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   msgTryLater,
	})
}
