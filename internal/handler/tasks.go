package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/ucbot/internal/config"
	"github.com/set-night/ucbot/internal/domain"
	"github.com/set-night/ucbot/internal/middleware"
	tg "github.com/set-night/ucbot/internal/telegram"
)

func (h *Handler) handleTasks(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID

	if !h.requireSubscribed(ctx, b, chatID, userID, "") {
		return
	}

	h.showTaskList(ctx, b, chatID)
}

func (h *Handler) showTaskList(ctx context.Context, b *bot.Bot, chatID int64) {
	user := middleware.GetUser(ctx)
	if user == nil {
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: msgRunStart})
		return
	}

	tasks, err := h.taskRepo.All(ctx)
	if err != nil {
		slog.Error("list tasks", "error", err)
		h.sendTryLater(ctx, b, chatID)
		return
	}

	var available []domain.Task
	for _, t := range tasks {
		if !user.HasCompleted(t.ID) && !t.LimitReached() {
			available = append(available, t)
		}
	}

	if len(available) == 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "На данный момент нет доступных заданий.",
		})
		return
	}

	// First few tasks share one row, the rest get a row each.
	var firstRow []models.InlineKeyboardButton
	var rows [][]models.InlineKeyboardButton
	for i, t := range available {
		button := tg.InlineButton(taskButtonLabel(&t), fmt.Sprintf("task_%d", t.ID))
		if i < config.TasksFirstRowMax {
			firstRow = append(firstRow, button)
		} else {
			rows = append(rows, tg.ButtonRow(button))
		}
	}
	rows = append([][]models.InlineKeyboardButton{firstRow}, rows...)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Доступные задания:",
		ReplyMarkup: tg.InlineKeyboard(rows...),
	})
}

func taskButtonLabel(t *domain.Task) string {
	if t.Title != "" {
		return t.Title
	}
	return fmt.Sprintf("Задание %d", t.ID)
}

func (h *Handler) handleTaskDetails(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil || cb.Message.Message == nil {
		return
	}
	chatID := cb.Message.Message.Chat.ID

	if !h.requireSubscribed(ctx, b, chatID, cb.From.ID, cb.ID) {
		return
	}

	taskID, err := strconv.ParseInt(strings.TrimPrefix(cb.Data, "task_"), 10, 64)
	if err != nil {
		return
	}

	task, err := h.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		h.ackq.Enqueue(cb.ID, msgTryLater)
		return
	}

	h.ackq.Enqueue(cb.ID, "")

	text := fmt.Sprintf(`Информация о задании:

Награда: %s UC
Осталось выполнений: %d

Примечание! В случае, если вы отпишетесь от канала после выполнения задания, вы можете быть оштрафованы на сумму, которая была выдана в виде награды. Баланс может уйти в минус, будьте внимательны.

Вот ваше задание`, task.Reward.String(), task.Remaining())

	b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:    chatID,
		MessageID: cb.Message.Message.ID,
		Text:      text,
		ReplyMarkup: tg.InlineKeyboard(
			tg.ButtonRow(tg.URLButton("Ссылка на канал", task.ChannelURL)),
			tg.ButtonRow(tg.InlineButton("Проверить", fmt.Sprintf("check_%d", task.ID))),
			tg.ButtonRow(tg.InlineButton("Назад", "back_to_tasks")),
		),
	})
}

func (h *Handler) handleBackToTasks(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil || cb.Message.Message == nil {
		return
	}
	chatID := cb.Message.Message.Chat.ID

	if !h.requireSubscribed(ctx, b, chatID, cb.From.ID, cb.ID) {
		return
	}

	h.ackq.Enqueue(cb.ID, "")
	h.showTaskList(ctx, b, chatID)
}
