package main

import (
	"context"
	"fmt"

	"github.com/restaurant-directory/internal/config"
	"github.com/restaurant-directory/internal/domain/repository"
	"github.com/restaurant-directory/internal/repository/mongodb"
	"github.com/restaurant-directory/internal/repository/postgres"
	"go.uber.org/zap"
)

// database - общая часть подключений MongoDB и PostgreSQL
type database interface {
	Health(ctx context.Context) error
	Close(ctx context.Context) error
}

type store struct {
	db          database
	restaurants repository.RestaurantRepository
	users       repository.UserRepository
}

func openStore(cfg *config.Config, log *zap.Logger) (*store, error) {
	switch cfg.Database.Driver {
	case config.DriverMongo:
		db, err := mongodb.New(&cfg.Mongo, log)
		if err != nil {
			return nil, err
		}
		return &store{
			db:          db,
			restaurants: mongodb.NewRestaurantRepository(db),
			users:       mongodb.NewUserRepository(db),
		}, nil

	case config.DriverPostgres:
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			return nil, err
		}
		return &store{
			db:          db,
			restaurants: postgres.NewRestaurantRepository(db),
			users:       postgres.NewUserRepository(db),
		}, nil
	}

	return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
}
