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
)

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID
	username := update.Message.From.Username

	// Deep link payload: numeric id of the referring user.
	var referrerID *int64
	parts := strings.Fields(update.Message.Text)
	if len(parts) > 1 {
		if id, err := strconv.ParseInt(parts[1], 10, 64); err == nil {
			referrerID = &id
		}
	}

	_, isNew, err := h.users.FindOrCreate(ctx, userID, username, referrerID)
	if err != nil {
		slog.Error("find or create user", "user_id", userID, "error", err)
		h.sendTryLater(ctx, b, chatID)
		return
	}

	welcome := "С возвращением! Готовы к новым заданиям?"
	if isNew {
		welcome = "🎉 Добро пожаловать!\n✅ Выполните обязательные задания и получите первую награду!"
		h.notifier.LogRegistration(userID, username, referrerID)

		if referrerID != nil {
			h.creditReferrer(ctx, b, userID, *referrerID)
		}
	}

	channels, err := h.channelRepo.All(ctx)
	if err != nil {
		slog.Error("load required channels", "error", err)
		h.sendTryLater(ctx, b, chatID)
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        welcome,
		ReplyMarkup: joinKeyboard(channels),
	})
}

func (h *Handler) creditReferrer(ctx context.Context, b *bot.Bot, newUserID, referrerID int64) {
	balance, credited, err := h.users.CreditReferral(ctx, newUserID, referrerID)
	if err != nil {
		slog.Error("credit referral", "referrer_id", referrerID, "error", err)
		return
	}
	if !credited {
		return
	}
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: referrerID,
		Text: fmt.Sprintf("Вы получили нового реферала! %s UC добавлено на ваш счет. Ваш баланс: %s UC",
			config.ReferralBonus.String(), balance.String()),
	})
}
