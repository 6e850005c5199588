package handler

import (
	"github.com/go-telegram/bot/models"
	tg "github.com/set-night/ucbot/internal/telegram"
)

const (
	btnTasks    = "📋 Задания"
	btnLeaders  = "👑 Лидеры"
	btnProfile  = "👤 Профиль"
	btnWithdraw = "💰 Вывод"
	btnReferral = "🔗 Реферальная ссылка"
	btnHelp     = "❓ Помощь"
	btnDaily    = "🎁 Ежедневный бонус"

	btnAddTask       = "➕ Добавить задание"
	btnRemoveTask    = "➖ Удалить задание"
	btnAddChannel    = "📢 Добавить канал"
	btnRemoveChannel = "🔇 Удалить канал"
	btnAdminStats    = "📊 Статистика"
	btnBroadcast     = "📨 Рассылка"
)

func mainKeyboard() *models.ReplyKeyboardMarkup {
	return tg.ReplyKeyboard(
		tg.KeyboardRow(btnTasks, btnLeaders),
		tg.KeyboardRow(btnProfile, btnWithdraw),
		tg.KeyboardRow(btnReferral, btnHelp),
		tg.KeyboardRow(btnDaily),
	)
}

func adminKeyboard() *models.ReplyKeyboardMarkup {
	return tg.ReplyKeyboard(
		tg.KeyboardRow(btnTasks, btnLeaders),
		tg.KeyboardRow(btnProfile, btnWithdraw),
		tg.KeyboardRow(btnReferral, btnHelp),
		tg.KeyboardRow(btnDaily),
		tg.KeyboardRow(btnAddTask, btnRemoveTask),
		tg.KeyboardRow(btnAddChannel, btnRemoveChannel),
		tg.KeyboardRow(btnAdminStats, btnBroadcast),
	)
}
