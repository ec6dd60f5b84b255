package repository

import (
	"context"

	"github.com/restaurant-directory/internal/domain"
)

// UserRepository определяет методы для работы с учётными записями
type UserRepository interface {
	// Create сохраняет пользователя; занятый email - errors.ErrUserExists
	Create(ctx context.Context, user *domain.User) error

	// GetByEmail возвращает пользователя; неизвестный email - errors.ErrUserNotFound
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
