package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/restaurant-directory/internal/pkg/errors"
	"github.com/restaurant-directory/internal/pkg/token"
	"github.com/restaurant-directory/internal/pkg/utils"
	"go.uber.org/zap"
)

// UserKey - ключ c.Locals с claims проверенного токена
const UserKey = "user"

const bearerPrefix = "Bearer "

// Auth - проверка заголовка "Authorization: Bearer <token>".
// Без валидного токена запрос дальше не проходит.
func Auth(tokens *token.Manager, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			return utils.SendError(c, errors.ErrMissingToken)
		}

		raw := strings.TrimSpace(header[len(bearerPrefix):])
		if raw == "" {
			return utils.SendError(c, errors.ErrMissingToken)
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			logger.Debug("Rejected token", zap.String("path", c.Path()), zap.Error(err))
			return utils.SendError(c, errors.ErrInvalidToken)
		}

		c.Locals(UserKey, claims)
		return c.Next()
	}
}

// CurrentUser - claims, сохранённые Auth
func CurrentUser(c *fiber.Ctx) (*token.Claims, bool) {
	claims, ok := c.Locals(UserKey).(*token.Claims)
	return claims, ok
}
