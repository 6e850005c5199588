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

func (h *Handler) handleWithdraw(ctx context.Context, b *bot.Bot, update *models.Update) {
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

	res, err := h.rewards.RequestWithdrawal(ctx, user.TelegramID)
	if err != nil {
		slog.Error("request withdrawal", "user_id", user.TelegramID, "error", err)
		h.sendTryLater(ctx, b, chatID)
		return
	}

	if !res.Approved {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text: fmt.Sprintf("Для вывода необходимо минимум %s UC. Ваш текущий баланс: %s UC",
				config.WithdrawalThreshold.String(), res.NewBalance.String()),
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text: fmt.Sprintf("Запрос на вывод отправлен. С вашего баланса списано %s UC. Администратор обработает его в ближайшее время.",
			config.WithdrawalThreshold.String()),
	})

	h.notifier.NotifyAdmins(ctx, fmt.Sprintf(
		"Запрос на вывод от пользователя %s (%d) на сумму %s UC\nЗаявка: %s",
		user.Username, user.TelegramID, config.WithdrawalThreshold.String(), res.Reference))
	h.notifier.LogWithdrawal(user.TelegramID, user.Username, config.WithdrawalThreshold, res.Reference)
}
