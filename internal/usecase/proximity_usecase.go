package usecase

import (
	"context"

	"github.com/restaurant-directory/internal/domain"
	"github.com/restaurant-directory/internal/domain/repository"
	"github.com/restaurant-directory/internal/pkg/errors"
	"github.com/restaurant-directory/internal/pkg/utils"
	"github.com/restaurant-directory/internal/pkg/validator"
	"github.com/restaurant-directory/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	msgRadiusParamsRequired = "Latitude, longitude, and radius are required"
	msgRangeParamsRequired  = "Latitude, longitude, minimumDistance, and maximumDistance are required"
)

// ProximityUseCase - геопоиск ресторанов относительно точки
type ProximityUseCase struct {
	restaurantRepo repository.RestaurantRepository
	logger         *zap.Logger
}

func NewProximityUseCase(
	restaurantRepo repository.RestaurantRepository,
	logger *zap.Logger,
) *ProximityUseCase {
	return &ProximityUseCase{
		restaurantRepo: restaurantRepo,
		logger:         logger,
	}
}

// FindWithinRadius - рестораны не дальше radius метров, от ближнего к дальнему
func (uc *ProximityUseCase) FindWithinRadius(
	ctx context.Context,
	req dto.RadiusSearchRequest,
) ([]*domain.NearbyRestaurant, error) {
	if req.Longitude == nil || req.Latitude == nil || req.Radius == nil {
		return nil, errors.ErrValidation.WithMessage(msgRadiusParamsRequired)
	}
	if err := validator.Validate(&req); err != nil {
		return nil, errors.ErrValidation.WithErrors(validator.Messages(err))
	}

	query := domain.ProximityQuery{
		Center:      domain.NewPoint(*req.Longitude, *req.Latitude),
		MaxDistance: *req.Radius,
	}

	restaurants, err := uc.restaurantRepo.FindNear(ctx, query)
	if err != nil {
		logStoreError(uc.logger, "Failed to search restaurants by radius", err,
			zap.Float64("lon", *req.Longitude),
			zap.Float64("lat", *req.Latitude),
			zap.Float64("radius_m", *req.Radius),
		)
		return nil, err
	}

	return nonNil(restaurants), nil
}

// FindWithinRange - рестораны на расстоянии от minimumDistance до maximumDistance метров,
// координаты в ответе разложены на latitude/longitude
func (uc *ProximityUseCase) FindWithinRange(
	ctx context.Context,
	req dto.RangeSearchRequest,
) ([]dto.RangeRestaurant, error) {
	if req.Longitude == nil || req.Latitude == nil || req.MinimumDistance == nil || req.MaximumDistance == nil {
		return nil, errors.ErrValidation.WithMessage(msgRangeParamsRequired)
	}
	if err := validator.Validate(&req); err != nil {
		return nil, errors.ErrValidation.WithErrors(validator.Messages(err))
	}
	if *req.MinimumDistance > *req.MaximumDistance {
		return nil, errors.ErrValidation.WithErrors([]string{
			"minimumDistance must be less than or equal to maximumDistance",
		})
	}

	minDistance := *req.MinimumDistance
	query := domain.ProximityQuery{
		Center:      domain.NewPoint(*req.Longitude, *req.Latitude),
		MinDistance: &minDistance,
		MaxDistance: *req.MaximumDistance,
	}

	restaurants, err := uc.restaurantRepo.FindNear(ctx, query)
	if err != nil {
		logStoreError(uc.logger, "Failed to search restaurants by range", err,
			zap.Float64("lon", *req.Longitude),
			zap.Float64("lat", *req.Latitude),
			zap.Float64("min_m", *req.MinimumDistance),
			zap.Float64("max_m", *req.MaximumDistance),
		)
		return nil, err
	}

	result := make([]dto.RangeRestaurant, 0, len(restaurants))
	for _, r := range restaurants {
		result = append(result, dto.RangeRestaurant{
			ID:              r.ID,
			Name:            r.Name,
			Description:     r.Description,
			Location:        r.Location.LatLon(),
			AverageRating:   r.AverageRating,
			NumberOfRatings: r.NumberOfRatings,
			Distance:        r.Distance,
		})
	}

	return result, nil
}

// FindByBoundingRegion - рестораны внутри сферической шапки радиусом distanceMiles, без сортировки
func (uc *ProximityUseCase) FindByBoundingRegion(
	ctx context.Context,
	lon, lat, distanceMiles float64,
) ([]*domain.Restaurant, error) {
	if !utils.ValidateCoordinates(lat, lon) {
		return nil, errors.ErrValidation.WithMessage("Invalid coordinates provided")
	}
	if distanceMiles <= 0 {
		return nil, errors.ErrValidation.WithMessage("distance must be greater than 0")
	}

	restaurants, err := uc.restaurantRepo.FindWithinSphere(
		ctx,
		domain.NewPoint(lon, lat),
		utils.MilesToMeters(distanceMiles),
	)
	if err != nil {
		logStoreError(uc.logger, "Failed to search restaurants in region", err,
			zap.Float64("lon", lon),
			zap.Float64("lat", lat),
			zap.Float64("distance_mi", distanceMiles),
		)
		return nil, err
	}

	return nonNil(restaurants), nil
}
