package main

// @title Restaurant Directory API
// @version 1.0.0
// @description Каталог ресторанов с геопоиском: регистрация и вход по токену, CRUD ресторанов,
// @description поиск в радиусе и в кольце расстояний.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Формат: Bearer <token>

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/restaurant-directory/docs"
	"github.com/restaurant-directory/internal/config"
	httpDelivery "github.com/restaurant-directory/internal/delivery/http"
	"github.com/restaurant-directory/internal/delivery/http/handler"
	"github.com/restaurant-directory/internal/pkg/logger"
	"github.com/restaurant-directory/internal/pkg/token"
	"github.com/restaurant-directory/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Restaurant Directory")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("db_driver", cfg.Database.Driver),
	)

	// 3. Connect to the store selected by DB_DRIVER
	st, err := openStore(cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to store", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := st.db.Health(ctx); err != nil {
		log.Fatal("Store health check failed", zap.Error(err))
	}

	log.Info("Repositories initialized")

	// 4. Initialize Use Cases
	tokens, err := token.NewManager(cfg.Auth.JWTSecret)
	if err != nil {
		log.Fatal("Failed to initialize token manager", zap.Error(err))
	}

	proximityUC := usecase.NewProximityUseCase(st.restaurants, log)
	restaurantUC := usecase.NewRestaurantUseCase(st.restaurants, proximityUC, log)
	authUC := usecase.NewAuthUseCase(st.users, tokens, cfg.Auth.BcryptCost, log)

	log.Info("Use cases initialized")

	// 5. Initialize HTTP Handlers
	authHandler := handler.NewAuthHandler(authUC, log)
	restaurantHandler := handler.NewRestaurantHandler(restaurantUC, log)
	proximityHandler := handler.NewProximityHandler(proximityUC, log)

	// 6. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		tokens,
		st.db,
		authHandler,
		restaurantHandler,
		proximityHandler,
	)

	// 7. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := st.db.Close(ctx); err != nil {
		log.Error("Failed to close store", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
