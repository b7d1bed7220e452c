package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.uber.org/zap"

	"pokedex/cmd/server/docs"
	"pokedex/internal/api"
	"pokedex/internal/api/services"
	"pokedex/internal/api/ws"
	"pokedex/internal/clients/pokeapi"
	"pokedex/internal/config"
	"pokedex/internal/logging"
	"pokedex/internal/metrics"
	"pokedex/internal/redis"
	"pokedex/internal/repository"
	"pokedex/internal/tracing"
	"pokedex/internal/worker"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// @title Pokedex API
// @version 1.0
// @description Catalog browsing, favorites and a turn-based battle arena
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Trainer token from POST /api/sessions. Example: Bearer eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, relying on environment")
	}

	cfg := config.Load()

	logger := logging.New(cfg)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := tracing.Setup(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize tracing", zap.Error(err))
	}

	db, err := repository.New(cfg)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	rdb := redis.New(cfg)
	if err := redis.Ping(ctx, rdb); err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	client, err := pokeapi.New(&pokeapi.Config{
		BaseURL:     cfg.PokeAPI.BaseURL,
		HTTPTimeout: cfg.PokeAPI.Timeout,
	})
	if err != nil {
		logger.Fatal("failed to initialize catalog client", zap.Error(err))
	}

	catalog := services.NewCatalogService(client, rdb, logger)
	hub := ws.NewHub(logger)
	scheduler := worker.NewTurnScheduler(logger)

	svc := &api.Services{
		Catalog:   catalog,
		Favorites: services.NewFavoriteService(repository.NewFavoriteRepository(db.DB()), catalog, logger),
		Battle:    services.NewBattleService(catalog, rdb, scheduler, hub, cfg.Battle, logger),
		Session:   services.NewSessionService(cfg.JWTKey),
		Hub:       hub,
	}

	docs.SwaggerInfo.Host = cfg.HTTPAddr
	if cfg.IsProduction() {
		docs.SwaggerInfo.Schemes = []string{"https"}
	} else {
		docs.SwaggerInfo.Schemes = []string{"http"}
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(otelecho.Middleware(cfg.Tracing.ServiceName))
	e.Use(metrics.PrometheusMiddleware())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api.SetupRoutes(e, svc, cfg, logger)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		logger.Info("server starting", zap.String("addr", cfg.HTTPAddr), zap.String("env", cfg.Env))
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	if err := scheduler.Stop(shutdownCtx); err != nil {
		logger.Error("turn scheduler shutdown failed", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("tracing shutdown failed", zap.Error(err))
	}
}
