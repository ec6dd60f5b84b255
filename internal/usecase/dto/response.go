package dto

import "github.com/restaurant-directory/internal/domain"

// TokenResponse - ответ на успешный вход
type TokenResponse struct {
	Token string `json:"token"`
}

// RestaurantResponse - ответ на создание и обновление
type RestaurantResponse struct {
	Message    string             `json:"message"`
	Restaurant *domain.Restaurant `json:"restaurant"`
}

// RangeRestaurant - результат поиска в кольце, координаты разложены на скаляры
type RangeRestaurant struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	Location        domain.LatLon `json:"location"`
	AverageRating   *float64      `json:"averageRating"`
	NumberOfRatings int           `json:"numberOfRatings"`
	Distance        float64       `json:"distance"`
}

// Identity - данные пользователя из токена
type Identity struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
}

// ProtectedResponse - ответ защищённого тестового маршрута
type ProtectedResponse struct {
	Message string   `json:"message"`
	User    Identity `json:"user"`
}

// HealthResponse - ответ health check
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}
