package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func (h *Handler) handleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	text := `Вот доступные команды:

/start - Начать работу с ботом
/tasks - Посмотреть доступные задания
/profile - Посмотреть ваш профиль и заработок
/withdraw - Запросить вывод средств (минимум 60 UC)
/referral - Получить вашу реферальную ссылку
/leaders - Посмотреть таблицу лидеров
/daily - Получить ежедневный бонус
/help - Показать это сообщение

Если у вас есть вопросы или проблемы, пожалуйста, свяжитесь с нашей поддержкой.`

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   text,
	})
}
