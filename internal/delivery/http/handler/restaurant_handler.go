package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/restaurant-directory/internal/delivery/http/middleware"
	"github.com/restaurant-directory/internal/pkg/errors"
	"github.com/restaurant-directory/internal/pkg/utils"
	"github.com/restaurant-directory/internal/usecase"
	"github.com/restaurant-directory/internal/usecase/dto"
	"go.uber.org/zap"
)

const msgProtectedRoute = "This is a protected route."

// RestaurantHandler - CRUD ресторанов
type RestaurantHandler struct {
	restaurantUC *usecase.RestaurantUseCase
	logger       *zap.Logger
}

// NewRestaurantHandler - создание нового RestaurantHandler
func NewRestaurantHandler(restaurantUC *usecase.RestaurantUseCase, logger *zap.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantUC: restaurantUC,
		logger:       logger,
	}
}

// Create godoc
// @Summary Создание ресторана
// @Tags Restaurants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRestaurantRequest true "Ресторан"
// @Success 201 {object} dto.RestaurantResponse
// @Failure 400 {object} errors.AppError
// @Failure 401 {object} errors.AppError
// @Failure 500 {object} errors.AppError
// @Router /api/restaurants [post]
func (h *RestaurantHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateRestaurantRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	resp, err := h.restaurantUC.Create(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusCreated, resp)
}

// List godoc
// @Summary Список ресторанов
// @Description Без параметров возвращает все рестораны. Если заданы longitude, latitude и distance (мили),
// @Description возвращает рестораны внутри окружности без сортировки.
// @Tags Restaurants
// @Produce json
// @Security BearerAuth
// @Param longitude query number false "Долгота центра"
// @Param latitude query number false "Широта центра"
// @Param distance query number false "Радиус в милях"
// @Success 200 {array} domain.Restaurant
// @Failure 400 {object} errors.AppError
// @Failure 401 {object} errors.AppError
// @Failure 500 {object} errors.AppError
// @Router /api/restaurants [get]
func (h *RestaurantHandler) List(c *fiber.Ctx) error {
	var query dto.ListRestaurantsQuery
	if err := parseQuery(c, &query); err != nil {
		return utils.SendError(c, err)
	}

	restaurants, err := h.restaurantUC.List(c.UserContext(), query)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, restaurants)
}

// GetByID godoc
// @Summary Ресторан по ID
// @Tags Restaurants
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID ресторана"
// @Success 200 {object} domain.Restaurant
// @Failure 401 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Failure 500 {object} errors.AppError
// @Router /api/restaurants/{id} [get]
func (h *RestaurantHandler) GetByID(c *fiber.Ctx) error {
	restaurant, err := h.restaurantUC.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, restaurant)
}

// Update godoc
// @Summary Обновление ресторана
// @Description Частичное обновление: отсутствующие поля не меняются
// @Tags Restaurants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID ресторана"
// @Param request body dto.UpdateRestaurantRequest true "Изменяемые поля"
// @Success 200 {object} dto.RestaurantResponse
// @Failure 400 {object} errors.AppError
// @Failure 401 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Failure 500 {object} errors.AppError
// @Router /api/restaurants/{id} [put]
func (h *RestaurantHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateRestaurantRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	resp, err := h.restaurantUC.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, resp)
}

// Delete godoc
// @Summary Удаление ресторана
// @Tags Restaurants
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID ресторана"
// @Success 200 {object} utils.MessageResponse
// @Failure 401 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Failure 500 {object} errors.AppError
// @Router /api/restaurants/{id} [delete]
func (h *RestaurantHandler) Delete(c *fiber.Ctx) error {
	message, err := h.restaurantUC.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendMessage(c, fiber.StatusOK, message)
}

// Protected godoc
// @Summary Проверка токена
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProtectedResponse
// @Failure 401 {object} errors.AppError
// @Router /api/protected [get]
func (h *RestaurantHandler) Protected(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.SendError(c, errors.ErrMissingToken)
	}

	return utils.SendJSON(c, fiber.StatusOK, dto.ProtectedResponse{
		Message: msgProtectedRoute,
		User: dto.Identity{
			ID:    claims.UserID,
			Email: claims.Email,
		},
	})
}
