package utils

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/restaurant-directory/internal/pkg/errors"
)

// MessageResponse - ответ с текстовым сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

func SendJSON(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

func SendMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(MessageResponse{Message: message})
}

// SendError - ответ по AppError; всё остальное отдаётся как 500 без деталей
func SendError(c *fiber.Ctx, err error) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return c.Status(appErr.StatusCode).JSON(appErr)
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(errors.ErrInternalServer)
}
