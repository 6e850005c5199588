package middleware

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/ucbot/internal/domain"
	"github.com/set-night/ucbot/internal/service"
)

type ctxKey string

const UserKey ctxKey = "user"

// GetUser extracts the user from context; nil when the sender has not
// registered via /start yet.
func GetUser(ctx context.Context) *domain.User {
	u, ok := ctx.Value(UserKey).(*domain.User)
	if !ok {
		return nil
	}
	return u
}

// UserLoader returns middleware that loads the existing user record into
// context. It never creates one: creation happens in the /start handler,
// where the referral payload is known.
func UserLoader(users *service.UserService) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			var from *models.User
			if update.Message != nil {
				from = update.Message.From
			} else if update.CallbackQuery != nil {
				from = &update.CallbackQuery.From
			}

			if from == nil {
				next(ctx, b, update)
				return
			}

			user, err := users.GetByTelegramID(ctx, from.ID)
			if err == nil {
				ctx = context.WithValue(ctx, UserKey, user)
			} else if !errors.Is(err, domain.ErrUserNotFound) {
				slog.Error("load user", "user_id", from.ID, "error", err)
			}

			next(ctx, b, update)
		}
	}
}
