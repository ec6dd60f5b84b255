package repository

import (
	"context"

	"github.com/restaurant-directory/internal/domain"
)

// RestaurantRepository определяет методы для работы с ресторанами.
// Отсутствующая запись (в том числе некорректный ID) - errors.ErrRestaurantNotFound.
type RestaurantRepository interface {
	// Create сохраняет запись и заполняет её ID
	Create(ctx context.Context, restaurant *domain.Restaurant) error

	// GetByID возвращает ресторан по ID
	GetByID(ctx context.Context, id string) (*domain.Restaurant, error)

	// List возвращает все рестораны
	List(ctx context.Context) ([]*domain.Restaurant, error)

	// FindWithinSphere возвращает рестораны внутри сферической шапки, без сортировки
	FindWithinSphere(ctx context.Context, center domain.GeoPoint, radiusMeters float64) ([]*domain.Restaurant, error)

	// FindNear возвращает рестораны в пределах расстояний, от ближнего к дальнему,
	// с расстоянием в метрах и агрегатами по оценкам
	FindNear(ctx context.Context, query domain.ProximityQuery) ([]*domain.NearbyRestaurant, error)

	// Update применяет частичное обновление и возвращает новую версию записи
	Update(ctx context.Context, id string, update domain.RestaurantUpdate) (*domain.Restaurant, error)

	// Delete удаляет ресторан по ID
	Delete(ctx context.Context, id string) error
}
