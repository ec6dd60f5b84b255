package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/restaurant-directory/internal/pkg/errors"
	"github.com/restaurant-directory/internal/pkg/utils"
	"github.com/restaurant-directory/internal/usecase"
	"github.com/restaurant-directory/internal/usecase/dto"
	"go.uber.org/zap"
)

// AuthHandler - регистрация и вход
type AuthHandler struct {
	authUC *usecase.AuthUseCase
	logger *zap.Logger
}

// NewAuthHandler - создание нового AuthHandler
func NewAuthHandler(authUC *usecase.AuthUseCase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		logger: logger,
	}
}

// Signup godoc
// @Summary Регистрация пользователя
// @Description Создаёт учётную запись. Email должен быть уникальным, пароль хранится в виде bcrypt-хеша.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Данные пользователя"
// @Success 201 {object} utils.MessageResponse
// @Failure 400 {object} errors.AppError
// @Failure 500 {object} errors.AppError
// @Router /api/auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	message, err := h.authUC.Signup(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendMessage(c, fiber.StatusCreated, message)
}

// Login godoc
// @Summary Вход
// @Description Проверяет email и пароль и выдаёт токен на 1 час
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Email и пароль"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} errors.AppError
// @Failure 500 {object} errors.AppError
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	resp, err := h.authUC.Login(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, resp)
}
