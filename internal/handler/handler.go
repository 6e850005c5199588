package handler

import (
	"github.com/go-telegram/bot"
	"github.com/set-night/ucbot/internal/config"
	"github.com/set-night/ucbot/internal/repository"
	"github.com/set-night/ucbot/internal/service"
	"github.com/set-night/ucbot/internal/telegram"
)

// Handler holds all dependencies needed by command and callback handlers.
type Handler struct {
	bot         *bot.Bot
	cfg         *config.Config
	users       *service.UserService
	verifier    *service.Verifier
	gate        *service.Gate
	rewards     *service.RewardService
	leaderboard *service.Leaderboard
	channelInfo *service.ChannelInfo
	userRepo    *repository.Users
	taskRepo    *repository.Tasks
	channelRepo *repository.Channels
	ackq        *telegram.AckQueue
	notifier    *telegram.AdminNotifier
	pending     *pendingInputs
	botUsername string
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot         *bot.Bot
	Cfg         *config.Config
	Users       *service.UserService
	Verifier    *service.Verifier
	Gate        *service.Gate
	Rewards     *service.RewardService
	Leaderboard *service.Leaderboard
	ChannelInfo *service.ChannelInfo
	UserRepo    *repository.Users
	TaskRepo    *repository.Tasks
	ChannelRepo *repository.Channels
	AckQueue    *telegram.AckQueue
	Notifier    *telegram.AdminNotifier
	BotUsername string
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:         deps.Bot,
		cfg:         deps.Cfg,
		users:       deps.Users,
		verifier:    deps.Verifier,
		gate:        deps.Gate,
		rewards:     deps.Rewards,
		leaderboard: deps.Leaderboard,
		channelInfo: deps.ChannelInfo,
		userRepo:    deps.UserRepo,
		taskRepo:    deps.TaskRepo,
		channelRepo: deps.ChannelRepo,
		ackq:        deps.AckQueue,
		notifier:    deps.Notifier,
		pending:     newPendingInputs(),
		botUsername: deps.BotUsername,
	}
}
