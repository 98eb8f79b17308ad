package main

import (
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/projsite/bookings-service/internal/auth"
	"github.com/projsite/bookings-service/internal/config"
	"github.com/projsite/bookings-service/internal/db"
	"github.com/projsite/bookings-service/internal/export"
	httphandler "github.com/projsite/bookings-service/internal/http"
	"github.com/projsite/bookings-service/internal/http/middleware"
	"github.com/projsite/bookings-service/internal/logger"
	"github.com/projsite/bookings-service/internal/metrics"
	"github.com/projsite/bookings-service/internal/repository"
	"github.com/projsite/bookings-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)
	metrics.Register()

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect store")
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	projectRepo := repository.NewProjectRepository(database)
	bookingRepo := repository.NewBookingRepository(database)
	excelGenerator := export.NewGenerator()

	bookingService := service.NewBookingService(projectRepo, bookingRepo, excelGenerator, log)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(bookingService, log)
	authMiddleware := middleware.Auth(tokenParser)
	rateLimit := middleware.RateLimit(cfg.RateLimit, rdb)
	router := httphandler.NewRouter(handler, log, cfg.Environment, authMiddleware, rateLimit)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting bookings service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
