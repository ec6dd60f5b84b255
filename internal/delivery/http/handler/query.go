package handler

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"github.com/restaurant-directory/internal/pkg/errors"
)

// parseQuery - разбор query-параметров в DTO по тегам `query`.
// Пустое значение (?longitude=) считается отсутствующим параметром и остаётся nil,
// нечисловое значение - ошибка валидации.
func parseQuery(c *fiber.Ctx, out interface{}) error {
	dropEmptyQueryArgs(c)

	if err := c.QueryParser(out); err != nil {
		return errors.ErrValidation.WithErrors([]string{"query parameters must be numbers"})
	}
	return nil
}

func dropEmptyQueryArgs(c *fiber.Ctx) {
	args := c.Context().QueryArgs()

	var empty []string
	args.VisitAll(func(key, value []byte) {
		if len(bytes.TrimSpace(value)) == 0 {
			empty = append(empty, string(key))
		}
	})
	for _, key := range empty {
		args.Del(key)
	}
}
