// Package mocks содержит testify-моки репозиториев для тестов usecase и handler.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/restaurant-directory/internal/domain"
	"github.com/restaurant-directory/internal/domain/repository"
)

var (
	_ repository.RestaurantRepository = (*RestaurantRepository)(nil)
	_ repository.UserRepository       = (*UserRepository)(nil)
)

// RestaurantRepository is a mock of repository.RestaurantRepository
type RestaurantRepository struct {
	mock.Mock
}

func (m *RestaurantRepository) Create(ctx context.Context, restaurant *domain.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *RestaurantRepository) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}

func (m *RestaurantRepository) List(ctx context.Context) ([]*domain.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Restaurant), args.Error(1)
}

func (m *RestaurantRepository) FindWithinSphere(ctx context.Context, center domain.GeoPoint, radiusMeters float64) ([]*domain.Restaurant, error) {
	args := m.Called(ctx, center, radiusMeters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Restaurant), args.Error(1)
}

func (m *RestaurantRepository) FindNear(ctx context.Context, query domain.ProximityQuery) ([]*domain.NearbyRestaurant, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.NearbyRestaurant), args.Error(1)
}

func (m *RestaurantRepository) Update(ctx context.Context, id string, update domain.RestaurantUpdate) (*domain.Restaurant, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}

func (m *RestaurantRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// UserRepository is a mock of repository.UserRepository
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
