package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/set-night/ucbot/internal/config"
	"github.com/shopspring/decimal"
)

const maxLogMessageLen = 4096

// AdminNotifier mirrors significant events into a Telegram log chat with
// per-category topic threads, and can message administrators directly.
type AdminNotifier struct {
	bot *bot.Bot
	cfg *config.Config
}

func NewAdminNotifier(b *bot.Bot, cfg *config.Config) *AdminNotifier {
	return &AdminNotifier{bot: b, cfg: cfg}
}

type LogType string

const (
	LogTypeError        LogType = "error"
	LogTypeRegistration LogType = "registration"
	LogTypeWithdrawal   LogType = "withdrawal"
	LogTypeTaskCredit   LogType = "taskCredit"
	LogTypeLeaderboard  LogType = "leaderboard"
)

func (n *AdminNotifier) Log(logType LogType, message string) {
	if n.cfg.LogTelegramChatID == 0 {
		return
	}

	topicID := n.getTopicID(logType)
	if topicID == 0 {
		return
	}

	if len([]rune(message)) > maxLogMessageLen {
		message = string([]rune(message)[:maxLogMessageLen-20]) + "\n\n... (truncated)"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:          n.cfg.LogTelegramChatID,
		Text:            message,
		ParseMode:       "Markdown",
		MessageThreadID: topicID,
	})
	if err != nil {
		slog.Error("failed to send telegram log", "type", logType, "error", err)
	}
}

func (n *AdminNotifier) LogError(err error, context string) {
	msg := fmt.Sprintf("❌ *Error*\n\n*Context:* %s\n*Error:* `%s`\n*Time:* %s",
		context, err.Error(), time.Now().Format("2006-01-02 15:04:05"))
	n.Log(LogTypeError, msg)
}

func (n *AdminNotifier) LogRegistration(telegramID int64, username string, referredBy *int64) {
	msg := fmt.Sprintf("👤 *New Registration*\n\n*ID:* `%d`\n*Username:* @%s",
		telegramID, username)
	if referredBy != nil {
		msg += fmt.Sprintf("\n*Referred by:* `%d`", *referredBy)
	}
	n.Log(LogTypeRegistration, msg)
}

func (n *AdminNotifier) LogTaskCredit(telegramID, taskID int64, reward decimal.Decimal) {
	msg := fmt.Sprintf("💰 *Task Reward*\n\n*User:* `%d`\n*Task:* %d\n*Reward:* %s UC",
		telegramID, taskID, reward.String())
	n.Log(LogTypeTaskCredit, msg)
}

func (n *AdminNotifier) LogWithdrawal(telegramID int64, username string, amount decimal.Decimal, reference string) {
	msg := fmt.Sprintf("💸 *Withdrawal Request*\n\n*User:* @%s (`%d`)\n*Amount:* %s UC\n*Reference:* `%s`",
		username, telegramID, amount.String(), reference)
	n.Log(LogTypeWithdrawal, msg)
}

// NotifyAdmins sends text directly to every configured administrator.
// Delivery is best effort.
func (n *AdminNotifier) NotifyAdmins(ctx context.Context, text string) {
	for _, adminID := range n.cfg.AdminIDs {
		_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: adminID,
			Text:   text,
		})
		if err != nil {
			slog.Error("notify admin", "admin_id", adminID, "error", err)
		}
	}
}

func (n *AdminNotifier) getTopicID(logType LogType) int {
	switch logType {
	case LogTypeError:
		return n.cfg.LogTopicError
	case LogTypeRegistration:
		return n.cfg.LogTopicRegistration
	case LogTypeWithdrawal:
		return n.cfg.LogTopicWithdrawal
	case LogTypeTaskCredit:
		return n.cfg.LogTopicTaskCredit
	case LogTypeLeaderboard:
		return n.cfg.LogTopicLeaderboard
	default:
		return 0
	}
}
