package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/robfig/cron/v3"
	ucbotroot "github.com/set-night/ucbot"
	"github.com/set-night/ucbot/internal/config"
	"github.com/set-night/ucbot/internal/handler"
	"github.com/set-night/ucbot/internal/middleware"
	"github.com/set-night/ucbot/internal/repository"
	"github.com/set-night/ucbot/internal/service"
	"github.com/set-night/ucbot/internal/telegram"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Run migrations
	migrationsFS, err := fs.Sub(ucbotroot.MigrationsFS, "migrations")
	if err != nil {
		slog.Error("failed to load embedded migrations", "error", err)
		os.Exit(1)
	}
	if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize stores
	userRepo := repository.NewUsers(pool)
	taskRepo := repository.NewTasks(pool)
	channelRepo := repository.NewChannels(pool)

	userService := service.NewUserService(userRepo)

	// Handler pointer for use in the default handler closure
	var h *handler.Handler

	// Create bot
	opts := []bot.Option{
		bot.WithMiddlewares(
			middleware.Recover(),
			middleware.Logging(),
			middleware.UserLoader(userService),
		),
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if h == nil {
				return
			}
			h.HandleDefault(ctx, b, update)
		}),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	// Get bot info
	me, err := b.GetMe(ctx)
	if err != nil {
		slog.Error("failed to get bot info", "error", err)
		os.Exit(1)
	}
	slog.Info("bot info retrieved", "id", me.ID, "username", me.Username)

	// Initialize services on top of the bot client
	oracle := service.NewOracle(b)
	gate := service.NewGate(channelRepo, oracle)
	verifier := service.NewVerifier(userRepo, taskRepo, oracle)
	rewards := service.NewRewardService(userRepo)
	leaderboard := service.NewLeaderboard(userRepo)
	channelInfo := service.NewChannelInfo()
	notifier := telegram.NewAdminNotifier(b, cfg)

	// Acknowledgement queue: single consumer, at most one answer in flight
	ackq := telegram.NewAckQueue(b, config.AckQueueCapacity, config.AckDeliveryTimeout)
	go ackq.Run(ctx)

	// Initialize handler
	h = handler.New(handler.Deps{
		Bot:         b,
		Cfg:         cfg,
		Users:       userService,
		Verifier:    verifier,
		Gate:        gate,
		Rewards:     rewards,
		Leaderboard: leaderboard,
		ChannelInfo: channelInfo,
		UserRepo:    userRepo,
		TaskRepo:    taskRepo,
		ChannelRepo: channelRepo,
		AckQueue:    ackq,
		Notifier:    notifier,
		BotUsername: me.Username,
	})

	// Register all handlers
	h.Register()

	// Daily leaderboard digest
	if cfg.LeaderboardCron != "" {
		c := cron.New()
		_, err := c.AddFunc(cfg.LeaderboardCron, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			top, err := leaderboard.Top(ctx)
			if err != nil {
				slog.Error("leaderboard digest", "error", err)
				return
			}
			notifier.Log(telegram.LogTypeLeaderboard, service.FormatLeaderboard(top))
		})
		if err != nil {
			slog.Error("invalid leaderboard cron expression", "cron", cfg.LeaderboardCron, "error", err)
			os.Exit(1)
		}
		c.Start()
		defer c.Stop()
	}

	// Start bot
	slog.Info("starting bot", "username", me.Username, "id", me.ID)
	b.Start(ctx)

	slog.Info("bot stopped gracefully")
}
