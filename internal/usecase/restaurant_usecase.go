package usecase

import (
	"context"
	stderrors "errors"

	"github.com/restaurant-directory/internal/domain"
	"github.com/restaurant-directory/internal/domain/repository"
	"github.com/restaurant-directory/internal/pkg/errors"
	"github.com/restaurant-directory/internal/pkg/validator"
	"github.com/restaurant-directory/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	msgRestaurantCreated = "Restaurant created successfully!"
	msgRestaurantUpdated = "Restaurant updated successfully!"
	msgRestaurantDeleted = "Restaurant deleted successfully!"
)

// RestaurantUseCase - CRUD над ресторанами
type RestaurantUseCase struct {
	restaurantRepo repository.RestaurantRepository
	proximityUC    *ProximityUseCase
	logger         *zap.Logger
}

func NewRestaurantUseCase(
	restaurantRepo repository.RestaurantRepository,
	proximityUC *ProximityUseCase,
	logger *zap.Logger,
) *RestaurantUseCase {
	return &RestaurantUseCase{
		restaurantRepo: restaurantRepo,
		proximityUC:    proximityUC,
		logger:         logger,
	}
}

func (uc *RestaurantUseCase) Create(
	ctx context.Context,
	req dto.CreateRestaurantRequest,
) (*dto.RestaurantResponse, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, errors.ErrValidation.WithErrors(validator.Messages(err))
	}

	location := req.Location.Normalize()
	if err := location.Validate(); err != nil {
		return nil, locationError(err)
	}

	restaurant := domain.NewRestaurant(req.Name, req.Description, location, req.Ratings)
	if err := uc.restaurantRepo.Create(ctx, restaurant); err != nil {
		logStoreError(uc.logger, "Failed to create restaurant", err, zap.String("name", req.Name))
		return nil, err
	}

	uc.logger.Debug("Restaurant created", zap.String("id", restaurant.ID))

	return &dto.RestaurantResponse{
		Message:    msgRestaurantCreated,
		Restaurant: restaurant,
	}, nil
}

func (uc *RestaurantUseCase) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	restaurant, err := uc.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		logStoreError(uc.logger, "Failed to get restaurant", err, zap.String("id", id))
		return nil, err
	}
	return restaurant, nil
}

// List - все рестораны либо, если заданы longitude, latitude и distance (мили),
// только попавшие в сферическую шапку
func (uc *RestaurantUseCase) List(
	ctx context.Context,
	query dto.ListRestaurantsQuery,
) ([]*domain.Restaurant, error) {
	if err := validator.Validate(&query); err != nil {
		return nil, errors.ErrValidation.WithErrors(validator.Messages(err))
	}

	if query.HasFilter() {
		return uc.proximityUC.FindByBoundingRegion(ctx, *query.Longitude, *query.Latitude, *query.Distance)
	}

	restaurants, err := uc.restaurantRepo.List(ctx)
	if err != nil {
		logStoreError(uc.logger, "Failed to list restaurants", err)
		return nil, err
	}

	return nonNil(restaurants), nil
}

func (uc *RestaurantUseCase) Update(
	ctx context.Context,
	id string,
	req dto.UpdateRestaurantRequest,
) (*dto.RestaurantResponse, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, errors.ErrValidation.WithErrors(validator.Messages(err))
	}

	update := domain.RestaurantUpdate{
		Name:        req.Name,
		Description: req.Description,
		Ratings:     req.Ratings,
	}
	if req.Location != nil {
		location := req.Location.Normalize()
		if err := location.Validate(); err != nil {
			return nil, locationError(err)
		}
		update.Location = &location
	}

	var (
		restaurant *domain.Restaurant
		err        error
	)
	if update.IsEmpty() {
		restaurant, err = uc.restaurantRepo.GetByID(ctx, id)
	} else {
		restaurant, err = uc.restaurantRepo.Update(ctx, id, update)
	}
	if err != nil {
		logStoreError(uc.logger, "Failed to update restaurant", err, zap.String("id", id))
		return nil, err
	}

	return &dto.RestaurantResponse{
		Message:    msgRestaurantUpdated,
		Restaurant: restaurant,
	}, nil
}

// Delete возвращает текст подтверждения; повторное удаление - ErrRestaurantNotFound
func (uc *RestaurantUseCase) Delete(ctx context.Context, id string) (string, error) {
	if err := uc.restaurantRepo.Delete(ctx, id); err != nil {
		logStoreError(uc.logger, "Failed to delete restaurant", err, zap.String("id", id))
		return "", err
	}
	return msgRestaurantDeleted, nil
}

func locationError(err error) error {
	switch {
	case stderrors.Is(err, domain.ErrInvalidPointType):
		return errors.ErrValidation.WithMessage("Location must be of type Point")
	case stderrors.Is(err, domain.ErrInvalidCoordinates):
		return errors.ErrValidation.WithMessage("Location coordinates must be an array with two elements")
	default:
		return errors.ErrValidation.WithMessage("Location coordinates must be [longitude, latitude] within valid ranges")
	}
}
