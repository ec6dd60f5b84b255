package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/restaurant-directory/internal/pkg/utils"
	"github.com/restaurant-directory/internal/usecase"
	"github.com/restaurant-directory/internal/usecase/dto"
	"go.uber.org/zap"
)

// ProximityHandler - геопоиск ресторанов
type ProximityHandler struct {
	proximityUC *usecase.ProximityUseCase
	logger      *zap.Logger
}

// NewProximityHandler - создание нового ProximityHandler
func NewProximityHandler(proximityUC *usecase.ProximityUseCase, logger *zap.Logger) *ProximityHandler {
	return &ProximityHandler{
		proximityUC: proximityUC,
		logger:      logger,
	}
}

// Nearby godoc
// @Summary Рестораны в радиусе
// @Description Рестораны не дальше radius метров от точки, от ближнего к дальнему.
// @Description averageRating равен null, если оценок нет.
// @Tags Proximity
// @Produce json
// @Security BearerAuth
// @Param longitude query number true "Долгота"
// @Param latitude query number true "Широта"
// @Param radius query number true "Радиус в метрах"
// @Success 200 {array} domain.NearbyRestaurant
// @Failure 400 {object} errors.AppError
// @Failure 401 {object} errors.AppError
// @Failure 500 {object} errors.AppError
// @Router /api/restaurants/nearby [get]
func (h *ProximityHandler) Nearby(c *fiber.Ctx) error {
	var req dto.RadiusSearchRequest
	if err := parseQuery(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	restaurants, err := h.proximityUC.FindWithinRadius(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, restaurants)
}

// Range godoc
// @Summary Рестораны в кольце
// @Description Рестораны на расстоянии от minimumDistance до maximumDistance метров,
// @Description от ближнего к дальнему; location возвращается как {latitude, longitude}.
// @Tags Proximity
// @Produce json
// @Security BearerAuth
// @Param longitude query number true "Долгота"
// @Param latitude query number true "Широта"
// @Param minimumDistance query number true "Минимальное расстояние в метрах"
// @Param maximumDistance query number true "Максимальное расстояние в метрах"
// @Success 200 {array} dto.RangeRestaurant
// @Failure 400 {object} errors.AppError
// @Failure 401 {object} errors.AppError
// @Failure 500 {object} errors.AppError
// @Router /api/restaurants/range [get]
func (h *ProximityHandler) Range(c *fiber.Ctx) error {
	var req dto.RangeSearchRequest
	if err := parseQuery(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	restaurants, err := h.proximityUC.FindWithinRange(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, restaurants)
}
