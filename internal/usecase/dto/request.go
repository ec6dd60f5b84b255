package dto

import "github.com/restaurant-directory/internal/domain"

// SignupRequest - регистрация пользователя
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest - вход по email и паролю
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateRestaurantRequest - создание ресторана
type CreateRestaurantRequest struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description" validate:"required"`
	Location    *domain.GeoPoint `json:"location" validate:"required"`
	Ratings     []float64        `json:"ratings"`
}

// UpdateRestaurantRequest - частичное обновление, отсутствующие поля не меняются
type UpdateRestaurantRequest struct {
	Name        *string          `json:"name" validate:"omitnil,min=1"`
	Description *string          `json:"description" validate:"omitnil,min=1"`
	Location    *domain.GeoPoint `json:"location"`
	Ratings     []float64        `json:"ratings"`
}

// ListRestaurantsQuery - фильтр списка; distance в милях.
// Фильтр применяется, только если заданы все три параметра.
type ListRestaurantsQuery struct {
	Longitude *float64 `json:"longitude" query:"longitude" validate:"omitnil,min=-180,max=180"`
	Latitude  *float64 `json:"latitude" query:"latitude" validate:"omitnil,min=-90,max=90"`
	Distance  *float64 `json:"distance" query:"distance" validate:"omitnil,gt=0"`
}

func (q ListRestaurantsQuery) HasFilter() bool {
	return q.Longitude != nil && q.Latitude != nil && q.Distance != nil
}

// RadiusSearchRequest - поиск в радиусе (метры)
type RadiusSearchRequest struct {
	Longitude *float64 `json:"longitude" query:"longitude" validate:"required,min=-180,max=180"`
	Latitude  *float64 `json:"latitude" query:"latitude" validate:"required,min=-90,max=90"`
	Radius    *float64 `json:"radius" query:"radius" validate:"required,gt=0"`
}

// RangeSearchRequest - поиск в кольце между minimumDistance и maximumDistance (метры)
type RangeSearchRequest struct {
	Longitude       *float64 `json:"longitude" query:"longitude" validate:"required,min=-180,max=180"`
	Latitude        *float64 `json:"latitude" query:"latitude" validate:"required,min=-90,max=90"`
	MinimumDistance *float64 `json:"minimumDistance" query:"minimumDistance" validate:"required,gte=0"`
	MaximumDistance *float64 `json:"maximumDistance" query:"maximumDistance" validate:"required,gt=0"`
}
