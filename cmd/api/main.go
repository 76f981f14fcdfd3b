package main

// @title Real Estate Listing Manager API
// @version 1.0.0
// @description Доска объявлений о недвижимости: список с поиском, карта Naver Maps с маркерами,
// @description общий выбор между картой и списком, панель деталей с редактированием и форма создания.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/leeeeeeeed/real-estate-list-app/internal/config"
	httpDelivery "github.com/leeeeeeeed/real-estate-list-app/internal/delivery/http"
	"github.com/leeeeeeeed/real-estate-list-app/internal/delivery/http/handler"
	"github.com/leeeeeeeed/real-estate-list-app/internal/domain"
	"github.com/leeeeeeeed/real-estate-list-app/internal/infrastructure/navermap"
	"github.com/leeeeeeeed/real-estate-list-app/internal/pkg/logger"
	"github.com/leeeeeeeed/real-estate-list-app/internal/repository/memory"
	redisRepo "github.com/leeeeeeeed/real-estate-list-app/internal/repository/redis"
	"github.com/leeeeeeeed/real-estate-list-app/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "listing-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Real Estate Listing Manager")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
	)

	// 3. Property store + seed
	propertyRepo := memory.NewPropertyRepository(log)

	if cfg.Seed.Enabled {
		seed, err := memory.LoadSeed(cfg.Seed.File)
		if err != nil {
			log.Fatal("Failed to load seed", zap.String("file", cfg.Seed.File), zap.Error(err))
		}
		if err := memory.Seed(context.Background(), propertyRepo, seed); err != nil {
			log.Fatal("Failed to seed properties", zap.Error(err))
		}
		log.Info("Seed loaded", zap.Int("count", len(seed)))
	}

	// 4. Change feed (optional)
	var redisClient *redisRepo.Redis
	if cfg.Redis.Enabled {
		redisClient, err = redisRepo.NewRedis(cfg, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}

		streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
		publisher := usecase.NewChangePublisher(streamRepo, cfg.Redis.ChangeStream, cfg.Redis.PublishTimeout, log)
		defer publisher.Attach(propertyRepo)()

		log.Info("Change feed enabled", zap.String("stream", cfg.Redis.ChangeStream))
	}

	// 5. Map provider
	loader := navermap.NewLoader(&cfg.NaverMap, log)
	surface := navermap.NewMap(log)

	// 6. Initialize Use Cases
	selection := usecase.NewSelectionCoordinator(log)
	mapView := usecase.NewMapView(surface, surface, loader, selection, domain.MapOptions{
		Center: domain.Coordinates{Lat: cfg.Map.CenterLat, Lng: cfg.Map.CenterLng},
		Zoom:   cfg.Map.Zoom,
	}, log)
	boardUC := usecase.NewBoardUseCase(propertyRepo, selection, mapView, usecase.NewListView(), log)
	defer boardUC.Close()
	propertyUC := usecase.NewPropertyUseCase(propertyRepo, selection, log)

	log.Info("Use cases initialized")

	// Скрипт карты грузится один раз в фоне; до готовности список работает без карты
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.NaverMap.RequestTimeout+5)*time.Second)
		defer cancel()

		if err := loader.Load(ctx); err != nil {
			log.Warn("Map stays in loading state", zap.Error(err))
			return
		}
		if err := boardUC.Refresh(context.Background()); err != nil {
			log.Error("Failed to render map", zap.Error(err))
		}
	}()

	// 7. Initialize HTTP Handlers
	server := httpDelivery.NewServer(
		cfg,
		log,
		handler.NewPropertyHandler(propertyUC, log),
		handler.NewBoardHandler(boardUC, log),
		handler.NewSelectionHandler(boardUC, log),
		handler.NewMapHandler(boardUC, loader, log),
	)

	if redisClient != nil {
		server.AddHealthCheck("redis", redisClient.Health)
	}

	log.Info("HTTP server initialized")

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
