package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/ucbot/internal/domain"
	tg "github.com/set-night/ucbot/internal/telegram"
	"github.com/shopspring/decimal"
)

const msgNoPermission = "У вас нет прав для выполнения этой команды."

// requireAdmin replies with a refusal for non-admin chats.
func (h *Handler) requireAdmin(ctx context.Context, b *bot.Bot, chatID int64) bool {
	if h.cfg.IsAdmin(chatID) {
		return true
	}
	b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: msgNoPermission})
	return false
}

func (h *Handler) handleAddTask(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	if !h.requireAdmin(ctx, b, chatID) {
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text: `Введите данные для нового задания в формате:
Лимит_выполнений Награда ID_канала Ссылка_на_канал

Пример:
1 2 -1002211473340 https://t.me/jskaaow

Где:
1) Лимит выполнений - сколько людей может выполнить задание
2) Награда - сколько UC получит пользователь за выполнение задания
3) ID канала
4) Ссылка на канал`,
	})
	h.pending.set(chatID, pendingAddTask)
}

func (h *Handler) handleRemoveTask(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	if !h.requireAdmin(ctx, b, chatID) {
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "Введите ID задания, которое хотите удалить:",
	})
	h.pending.set(chatID, pendingRemoveTask)
}

func (h *Handler) handleAddChannel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	if !h.requireAdmin(ctx, b, chatID) {
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text: `Введите данные для обязательного канала в формате:
ID_канала Ссылка_на_канал

Пример:
-1002211473340 https://t.me/jskaaow`,
	})
	h.pending.set(chatID, pendingAddChannel)
}

func (h *Handler) handleRemoveChannel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	if !h.requireAdmin(ctx, b, chatID) {
		return
	}

	channels, err := h.channelRepo.All(ctx)
	if err != nil {
		slog.Error("list required channels", "error", err)
		h.sendTryLater(ctx, b, chatID)
		return
	}
	if len(channels) == 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Нет обязательных каналов для удаления.",
		})
		return
	}

	rows := make([][]models.KeyboardButton, 0, len(channels))
	for _, ch := range channels {
		rows = append(rows, tg.KeyboardRow(ch.ChannelURL))
	}
	keyboard := tg.ReplyKeyboard(rows...)
	keyboard.OneTimeKeyboard = true

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Выберите канал для удаления:",
		ReplyMarkup: keyboard,
	})
	h.pending.set(chatID, pendingRemoveChannel)
}

func (h *Handler) handleBroadcast(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	if !h.requireAdmin(ctx, b, chatID) {
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "Введите сообщение для рассылки:",
	})
	h.pending.set(chatID, pendingBroadcast)
}

func (h *Handler) handleAdminStats(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	if !h.requireAdmin(ctx, b, chatID) {
		return
	}

	userCount, err := h.userRepo.Count(ctx)
	if err != nil {
		slog.Error("count users", "error", err)
		h.sendTryLater(ctx, b, chatID)
		return
	}
	taskCount, err := h.taskRepo.Count(ctx)
	if err != nil {
		slog.Error("count tasks", "error", err)
		h.sendTryLater(ctx, b, chatID)
		return
	}
	channelCount, err := h.channelRepo.Count(ctx)
	if err != nil {
		slog.Error("count channels", "error", err)
		h.sendTryLater(ctx, b, chatID)
		return
	}
	totalUC, err := h.userRepo.TotalBalance(ctx)
	if err != nil {
		slog.Error("total balance", "error", err)
		h.sendTryLater(ctx, b, chatID)
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text: fmt.Sprintf(`📊 Статистика бота:

👥 Всего пользователей: %d
📝 Активных заданий: %d
📢 Обязательных каналов: %d
💰 Всего выдано UC: %s`,
			userCount, taskCount, channelCount, totalUC.String()),
	})
}

// processPending consumes the admin's follow-up message for a two-step flow.
func (h *Handler) processPending(ctx context.Context, b *bot.Bot, chatID int64, kind pendingKind, text string) {
	switch kind {
	case pendingAddTask:
		h.processAddTask(ctx, b, chatID, text)
	case pendingRemoveTask:
		h.processRemoveTask(ctx, b, chatID, text)
	case pendingAddChannel:
		h.processAddChannel(ctx, b, chatID, text)
	case pendingRemoveChannel:
		h.processRemoveChannel(ctx, b, chatID, text)
	case pendingBroadcast:
		h.processBroadcast(ctx, b, chatID, text)
	}
}

func (h *Handler) processAddTask(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	parts := strings.Fields(text)
	if len(parts) != 4 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Неверный формат. Пожалуйста, попробуйте еще раз.",
		})
		return
	}

	limit, limitErr := strconv.Atoi(parts[0])
	reward, rewardErr := decimal.NewFromString(parts[1])
	if limitErr != nil || rewardErr != nil || limit <= 0 || reward.IsNegative() {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Неверный формат. Пожалуйста, попробуйте еще раз.",
		})
		return
	}

	task := &domain.Task{
		ChannelID:  parts[2],
		ChannelURL: parts[3],
		Title:      h.channelInfo.Title(ctx, parts[3]),
		Reward:     reward,
		Limit:      limit,
	}
	if err := h.taskRepo.Create(ctx, task); err != nil {
		slog.Error("create task", "error", err)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Произошла ошибка при добавлении задания. Попробуйте позже.",
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   fmt.Sprintf("Задание успешно добавлено с ID: %d", task.ID),
	})

	h.announceNewTask(ctx, b, chatID, task)
}

// announceNewTask notifies every user about the new task and reports the
// delivered count back to the admin. Best effort, no retries.
func (h *Handler) announceNewTask(ctx context.Context, b *bot.Bot, adminChatID int64, task *domain.Task) {
	users, err := h.userRepo.All(ctx)
	if err != nil {
		slog.Error("list users for task announcement", "error", err)
		return
	}

	text := fmt.Sprintf(`🆕 Новое задание доступно!

💰 Награда: %s UC
👥 Количество мест: %d

Скорее приступайте к выполнению, пока есть свободные места!
Используйте /tasks, чтобы увидеть все доступные задания.`,
		task.Reward.String(), task.Limit)

	notified := 0
	for _, u := range users {
		_, err := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: u.TelegramID, Text: text})
		if err != nil {
			slog.Warn("task announcement failed", "user_id", u.TelegramID, "error", err)
			continue
		}
		notified++
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: adminChatID,
		Text:   fmt.Sprintf("Уведомление о новом задании отправлено %d из %d пользователей.", notified, len(users)),
	})
}

func (h *Handler) processRemoveTask(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	taskID, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Неверный формат ID задания. Пожалуйста, введите число.",
		})
		return
	}

	removed, err := h.taskRepo.Delete(ctx, taskID)
	if err != nil {
		slog.Error("delete task", "task_id", taskID, "error", err)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Произошла ошибка при удалении задания. Попробуйте позже.",
		})
		return
	}

	reply := fmt.Sprintf("Задание с ID %d не найдено.", taskID)
	if removed {
		reply = fmt.Sprintf("Задание с ID %d успешно удалено.", taskID)
	}
	b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: reply})
}

func (h *Handler) processAddChannel(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	parts := strings.Fields(text)
	if len(parts) != 2 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Неверный формат. Пожалуйста, попробуйте еще раз.",
		})
		return
	}

	ch := &domain.RequiredChannel{
		ChannelID:  parts[0],
		ChannelURL: parts[1],
		Title:      h.channelInfo.Title(ctx, parts[1]),
	}
	if err := h.channelRepo.Add(ctx, ch); err != nil {
		slog.Error("add required channel", "error", err)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Произошла ошибка при добавлении канала. Попробуйте позже.",
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "Обязательный канал успешно добавлен.",
	})
}

func (h *Handler) processRemoveChannel(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	channelURL := strings.TrimSpace(text)

	removed, err := h.channelRepo.RemoveByURL(ctx, channelURL)
	if err != nil {
		slog.Error("remove required channel", "url", channelURL, "error", err)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Произошла ошибка при удалении канала. Попробуйте позже.",
		})
		return
	}

	reply := fmt.Sprintf("Канал %s не найден в списке обязательных.", channelURL)
	if removed {
		reply = fmt.Sprintf("Канал %s успешно удален из списка обязательных.", channelURL)
	}
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        reply,
		ReplyMarkup: adminKeyboard(),
	})
}

func (h *Handler) processBroadcast(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	users, err := h.userRepo.All(ctx)
	if err != nil {
		slog.Error("list users for broadcast", "error", err)
		h.sendTryLater(ctx, b, chatID)
		return
	}

	var success, failed int
	for _, u := range users {
		_, err := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: u.TelegramID, Text: text})
		if err != nil {
			slog.Warn("broadcast delivery failed", "user_id", u.TelegramID, "error", err)
			failed++
			continue
		}
		success++
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   fmt.Sprintf("Рассылка завершена.\nУспешно отправлено: %d\nОшибок: %d", success, failed),
	})
}
