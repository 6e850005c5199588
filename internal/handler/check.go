package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/ucbot/internal/service"
)

// handleCheck owns every "check_*" callback: the required-channel re-check
// button and per-task verification buttons.
func (h *Handler) handleCheck(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil || cb.Message.Message == nil {
		return
	}
	chatID := cb.Message.Message.Chat.ID
	userID := cb.From.ID

	if cb.Data == "check_subscriptions" {
		h.handleCheckSubscriptions(ctx, b, chatID, userID, cb.ID)
		return
	}

	// Task check. The gate runs first: task rewards stay locked until all
	// required channels are joined.
	if !h.requireSubscribed(ctx, b, chatID, userID, cb.ID) {
		return
	}

	taskID, err := strconv.ParseInt(strings.TrimPrefix(cb.Data, "check_"), 10, 64)
	if err != nil {
		h.ackq.Enqueue(cb.ID, msgTryLater)
		return
	}

	outcome := h.verifier.VerifyAndCredit(ctx, userID, taskID)
	switch outcome.Kind {
	case service.OutcomeCredited:
		h.ackq.Enqueue(cb.ID, fmt.Sprintf("Задание выполнено! Вы заработали %s UC.", outcome.Reward.String()))
		h.notifier.LogTaskCredit(userID, taskID, outcome.Reward)

	case service.OutcomeDeniedAlreadyCompleted:
		h.ackq.Enqueue(cb.ID, "Вы уже выполнили это задание.")

	case service.OutcomeDeniedLimitReached:
		h.ackq.Enqueue(cb.ID, "К сожалению, лимит выполнений для этого задания исчерпан.")

	case service.OutcomeDeniedNotSubscribed:
		h.ackq.Enqueue(cb.ID, "Вы не подписаны на канал. Подпишитесь и попробуйте снова.")

	case service.OutcomeErrorChannelUnresolvable:
		h.ackq.Enqueue(cb.ID, "Ошибка: канал не найден. Пожалуйста, сообщите администратору.")
		h.notifier.LogError(
			fmt.Errorf("task %d channel %s unresolvable", taskID, outcome.Task.ChannelID),
			"task verification")

	default:
		h.ackq.Enqueue(cb.ID, "Произошла ошибка. Попробуйте позже.")
	}
}

func (h *Handler) handleCheckSubscriptions(ctx context.Context, b *bot.Bot, chatID, userID int64, callbackID string) {
	res, err := h.gate.CheckAllRequired(ctx, userID)
	if err != nil {
		slog.Error("check subscriptions", "user_id", userID, "error", err)
		h.ackq.Enqueue(callbackID, msgGateError)
		return
	}

	if res.AllSatisfied {
		h.ackq.Enqueue(callbackID, "Вы успешно подписались на все обязательные каналы!")
		return
	}

	h.ackq.Enqueue(callbackID, msgNotAllChannels)
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        msgJoinAndRetry,
		ReplyMarkup: joinKeyboard(res.Channels),
	})
}
