package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/restaurant-directory/internal/domain/repository"
	"github.com/restaurant-directory/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewRestaurantRepositoryForTest creates a restaurant repository with test database and logger
func NewRestaurantRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.RestaurantRepository {
	return postgres.NewRestaurantRepository(NewDBForTest(db, logger))
}

// NewUserRepositoryForTest creates a user repository with test database and logger
func NewUserRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.UserRepository {
	return postgres.NewUserRepository(NewDBForTest(db, logger))
}
