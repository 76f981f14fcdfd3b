package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	_ "github.com/leeeeeeeed/real-estate-list-app/docs"
	"github.com/leeeeeeeed/real-estate-list-app/internal/config"
	"github.com/leeeeeeeed/real-estate-list-app/internal/delivery/http/handler"
	"github.com/leeeeeeeed/real-estate-list-app/internal/delivery/http/middleware"
	apperrors "github.com/leeeeeeeed/real-estate-list-app/internal/pkg/errors"
	"github.com/leeeeeeeed/real-estate-list-app/internal/pkg/utils"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	propertyHandler  *handler.PropertyHandler
	boardHandler     *handler.BoardHandler
	selectionHandler *handler.SelectionHandler
	mapHandler       *handler.MapHandler

	healthChecks map[string]HealthCheck
}

// HealthCheck - проверка внешней зависимости (Redis и т.п.)
type HealthCheck func(ctx context.Context) error

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	propertyHandler *handler.PropertyHandler,
	boardHandler *handler.BoardHandler,
	selectionHandler *handler.SelectionHandler,
	mapHandler *handler.MapHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Real Estate Listing Manager",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		// Params/Query переживают запрос (выбор, строка поиска)
		Immutable:    true,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		propertyHandler:  propertyHandler,
		boardHandler:     boardHandler,
		selectionHandler: selectionHandler,
		mapHandler:       mapHandler,
		healthChecks:     make(map[string]HealthCheck),
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.health)

	// Board: список + карта + выбор + детали
	api.Get("/board", s.boardHandler.GetBoard)
	api.Put("/board/query", s.boardHandler.SetQuery)

	// Properties
	api.Get("/properties", s.propertyHandler.List)
	api.Post("/properties", s.propertyHandler.Create)
	api.Get("/properties/:id", s.propertyHandler.Get)
	api.Put("/properties/:id", s.propertyHandler.Update)
	api.Delete("/properties/:id", s.propertyHandler.Delete)

	// Selection
	api.Get("/selection", s.selectionHandler.Get)
	api.Post("/selection/map/:id", s.selectionHandler.SelectFromMap)
	api.Post("/selection/list/:id", s.selectionHandler.SelectFromList)
	api.Delete("/selection", s.selectionHandler.Close)

	// Map
	api.Get("/map", s.mapHandler.GetMap)
	api.Get("/map/loader", s.mapHandler.LoaderStatus)
	api.Post("/map/markers/:markerId/click", s.mapHandler.ClickMarker)
}

// AddHealthCheck подключает зависимость к /health. Вызывать до Start.
func (s *Server) AddHealthCheck(name string, check HealthCheck) {
	s.healthChecks[name] = check
}

func (s *Server) health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := "healthy"
	checks := make(fiber.Map, len(s.healthChecks))
	for name, check := range s.healthChecks {
		if err := check(ctx); err != nil {
			s.logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			checks[name] = err.Error()
			status = "unhealthy"
			continue
		}
		checks[name] = "ok"
	}

	code := fiber.StatusOK
	if status != "healthy" {
		code = fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(fiber.Map{
		"status": status,
		"checks": checks,
		"time":   time.Now(),
	})
}

// App - для тестов через app.Test
func (s *Server) App() *fiber.App {
	return s.app
}

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

// customErrorHandler - ошибки, не обработанные в handler'ах (404 маршрута, паника)
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code := "INTERNAL_SERVER_ERROR"
			switch fiberErr.Code {
			case fiber.StatusNotFound:
				code = "NOT_FOUND"
			case fiber.StatusMethodNotAllowed:
				code = "METHOD_NOT_ALLOWED"
			}
			return utils.SendError(c, apperrors.New(code, fiberErr.Message, fiberErr.Code))
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}
