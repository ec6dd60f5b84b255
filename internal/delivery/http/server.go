package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/restaurant-directory/internal/config"
	"github.com/restaurant-directory/internal/delivery/http/handler"
	"github.com/restaurant-directory/internal/delivery/http/middleware"
	"github.com/restaurant-directory/internal/pkg/errors"
	"github.com/restaurant-directory/internal/pkg/token"
	"github.com/restaurant-directory/internal/pkg/utils"
	"github.com/restaurant-directory/internal/usecase/dto"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// HealthChecker - хранилище, доступность которого проверяет /api/health
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger
	tokens *token.Manager
	store  HealthChecker

	// Handlers
	authHandler       *handler.AuthHandler
	restaurantHandler *handler.RestaurantHandler
	proximityHandler  *handler.ProximityHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	tokens *token.Manager,
	store HealthChecker,
	authHandler *handler.AuthHandler,
	restaurantHandler *handler.RestaurantHandler,
	proximityHandler *handler.ProximityHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Restaurant Directory",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		tokens:            tokens,
		store:             store,
		authHandler:       authHandler,
		restaurantHandler: restaurantHandler,
		proximityHandler:  proximityHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - fiber приложение, используется в тестах через app.Test
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api")

	api.Get("/health", s.health)

	auth := api.Group("/auth")
	auth.Post("/signup", s.authHandler.Signup)
	auth.Post("/login", s.authHandler.Login)

	gate := middleware.Auth(s.tokens, s.logger)

	api.Get("/protected", gate, s.restaurantHandler.Protected)

	restaurants := api.Group("/restaurants", gate)
	restaurants.Post("/", s.restaurantHandler.Create)
	restaurants.Get("/", s.restaurantHandler.List)

	// Proximity routes - регистрируются раньше /:id
	restaurants.Get("/nearby", s.proximityHandler.Nearby)
	restaurants.Get("/range", s.proximityHandler.Range)

	restaurants.Get("/:id", s.restaurantHandler.GetByID)
	restaurants.Put("/:id", s.restaurantHandler.Update)
	restaurants.Delete("/:id", s.restaurantHandler.Delete)
}

// health godoc
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /api/health [get]
func (s *Server) health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{
		Status: "healthy",
		Time:   time.Now().UTC().Format(time.RFC3339),
	}

	if s.store != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if err := s.store.Health(ctx); err != nil {
			s.logger.Warn("Health check failed", zap.Error(err))
			resp.Status = "unhealthy"
			return utils.SendJSON(c, fiber.StatusServiceUnavailable, resp)
		}
	}

	return utils.SendJSON(c, fiber.StatusOK, resp)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки, не обработанные в handler'ах (404 маршрута, паника, слишком большое тело)
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if stderrors.As(err, &fe) {
			if fe.Code >= fiber.StatusInternalServerError {
				logger.Error("HTTP Error", zap.String("path", c.Path()), zap.Error(err))
			}
			return c.Status(fe.Code).JSON(errors.New(httpErrorCode(fe.Code), fe.Message, fe.Code))
		}

		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			return utils.SendError(c, appErr)
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)

		return utils.SendError(c, errors.ErrInternalServer)
	}
}

func httpErrorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "REQUEST_TOO_LARGE"
	}
	if status >= fiber.StatusInternalServerError {
		return "INTERNAL_SERVER_ERROR"
	}
	return "BAD_REQUEST"
}
