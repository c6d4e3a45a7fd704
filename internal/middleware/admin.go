package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AdminOnly restricts a handler to users on the static admin allow-list
func AdminOnly(adminIDs []int64, logger *zap.Logger) tele.MiddlewareFunc {
	allowed := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		allowed[id] = struct{}{}
	}

	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			if _, ok := allowed[userID]; !ok {
				logger.Warn("Non-admin attempted admin command",
					zap.Int64("user_id", userID),
					zap.String("text", c.Text()),
				)
				return c.Send("Tento příkaz je dostupný pouze administrátorům.")
			}

			return next(c)
		}
	}
}
