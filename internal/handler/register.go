package handler

import (
	"github.com/go-telegram/bot"
)

// Register registers all command and callback handlers on the bot instance.
// Each command is reachable both as a slash command and as its reply
// keyboard button.
func (h *Handler) Register() {
	// User commands
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/tasks", bot.MatchTypePrefix, h.handleTasks)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, btnTasks, bot.MatchTypeExact, h.handleTasks)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/leaders", bot.MatchTypePrefix, h.handleLeaders)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, btnLeaders, bot.MatchTypeExact, h.handleLeaders)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/profile", bot.MatchTypePrefix, h.handleProfile)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, btnProfile, bot.MatchTypeExact, h.handleProfile)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/withdraw", bot.MatchTypePrefix, h.handleWithdraw)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, btnWithdraw, bot.MatchTypeExact, h.handleWithdraw)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/referral", bot.MatchTypePrefix, h.handleReferral)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, btnReferral, bot.MatchTypeExact, h.handleReferral)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/daily", bot.MatchTypePrefix, h.handleDailyBonus)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, btnDaily, bot.MatchTypeExact, h.handleDailyBonus)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypePrefix, h.handleHelp)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, btnHelp, bot.MatchTypeExact, h.handleHelp)

	// Admin commands
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/addtask", bot.MatchTypePrefix, h.handleAddTask)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, btnAddTask, bot.MatchTypeExact, h.handleAddTask)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/removetask", bot.MatchTypePrefix, h.handleRemoveTask)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, btnRemoveTask, bot.MatchTypeExact, h.handleRemoveTask)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/addchannel", bot.MatchTypePrefix, h.handleAddChannel)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, btnAddChannel, bot.MatchTypeExact, h.handleAddChannel)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/removechannel", bot.MatchTypePrefix, h.handleRemoveChannel)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, btnRemoveChannel, bot.MatchTypeExact, h.handleRemoveChannel)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/broadcast", bot.MatchTypePrefix, h.handleBroadcast)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, btnBroadcast, bot.MatchTypeExact, h.handleBroadcast)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/adminstats", bot.MatchTypePrefix, h.handleAdminStats)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, btnAdminStats, bot.MatchTypeExact, h.handleAdminStats)

	// Callbacks. Handler lookup order is not defined, so "check_" owns
	// both the subscription re-check and task checks and dispatches on
	// the full data string itself.
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "task_", bot.MatchTypePrefix, h.handleTaskDetails)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "check_", bot.MatchTypePrefix, h.handleCheck)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "back_to_tasks", bot.MatchTypeExact, h.handleBackToTasks)
}
