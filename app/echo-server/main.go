package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clientCompass/app/echo-server/router"
	"clientCompass/business/analytics"
	"clientCompass/business/ingest"
	"clientCompass/business/recommend"
	"clientCompass/business/uplift"
	userService "clientCompass/business/user"
	"clientCompass/internal/middleware"
	psqlRepo "clientCompass/internal/repository/postgres"
	redisRepo "clientCompass/internal/repository/redis"
	"clientCompass/internal/rest"
	"clientCompass/pkg/config"
	"clientCompass/pkg/database"
	redisdb "clientCompass/pkg/database/redis"
	"clientCompass/pkg/logger"
	"clientCompass/pkg/metrics"
	"clientCompass/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Client Compass", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}
	defer redisdb.CloseRedisClient(redisClient)

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	clientRepo := psqlRepo.NewClientRepository(db)
	txnRepo := psqlRepo.NewTransactionRepository(db)
	actionRepo := psqlRepo.NewActionRepository(db)
	upliftRepo := psqlRepo.NewUpliftRepository(db)
	eventRepo := psqlRepo.NewIngestEventRepository(db)
	tokenRepo := redisRepo.NewTokenRepository(redisClient)

	// Init snapshot store and services
	store := recommend.NewStore(clientRepo, txnRepo)

	recoConfig := recommend.Config{
		Weights: recommend.Weights{
			SameCountry:     cfg.Recommender.WeightSameCountry,
			SameNationality: cfg.Recommender.WeightSameNationality,
			SameCity:        cfg.Recommender.WeightSameCity,
			SameGender:      cfg.Recommender.WeightSameGender,
		},
		DedupeSeeds: cfg.Recommender.DedupeSeeds,
	}

	usrService := userService.NewUserService(userRepo, validate, tokenRepo)
	recoService := recommend.NewService(store, recoConfig)
	analyticsService := analytics.NewService(clientRepo, txnRepo, actionRepo)
	upliftService := uplift.NewService(upliftRepo)
	ingestService := ingest.NewService(clientRepo, txnRepo, actionRepo, upliftRepo, eventRepo, store)

	// Init handler
	userHandler := rest.NewUserHandler(usrService)
	recoHandler := rest.NewRecommendationHandler(recoService)
	analyticsHandler := rest.NewAnalyticsHandler(analyticsService)
	actionHandler := rest.NewActionHandler(upliftService)
	datasetHandler := rest.NewDatasetHandler(ingestService, cfg.Data.Dir)

	// Preload the CSV datasets so the engine is usable before any upload
	if cfg.Data.PreloadOnStart {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		summary, err := ingestService.LoadDir(ctx, cfg.Data.Dir)
		cancel()
		if err != nil {
			logger.Warn("Dataset preload failed, continuing without data", "dir", cfg.Data.Dir, "error", err)
		} else {
			logger.Info("Dataset preloaded",
				"clients", summary.Clients,
				"transactions", summary.Transactions,
				"actions", summary.Actions,
				"uplift_predictions", summary.UpliftPredictions,
			)
		}
	}

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Auth middleware
	authRequired := middleware.AuthMiddlewareWithRedis(usrService)
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired)
	router.SetupRecommendationRoutes(api, recoHandler, authRequired)
	router.SetupAnalyticsRoutes(api, analyticsHandler, authRequired)
	router.SetupActionRoutes(api, actionHandler, authRequired)
	router.SetupDatasetRoutes(api, datasetHandler, authRequired, adminOnly)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
