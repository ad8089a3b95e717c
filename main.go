package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Madhav-Gupta-28/primecart-backend-go/config"
	"github.com/Madhav-Gupta-28/primecart-backend-go/database"
	"github.com/Madhav-Gupta-28/primecart-backend-go/handlers"
	"github.com/Madhav-Gupta-28/primecart-backend-go/logger"
	customMiddleware "github.com/Madhav-Gupta-28/primecart-backend-go/middleware"
	"github.com/Madhav-Gupta-28/primecart-backend-go/routes"
	"github.com/Madhav-Gupta-28/primecart-backend-go/store"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load config: " + err.Error())
	}

	log := logger.New(cfg.AppEnv, cfg.LogLevel)

	ctx := context.Background()
	client, db, err := database.ConnectDB(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("disconnect mongodb")
		}
	}()

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	categories := store.NewCategoryStore(db)
	products := store.NewProductStore(db)
	users := store.NewUserStore(db)
	orders := store.NewOrderStore(db)

	h := handlers.New(categories, products, users, orders, handlers.Options{
		JWTSecret:      cfg.JWTSecret,
		JWTTTL:         cfg.JWTTTL,
		SecureCookies:  cfg.IsProduction(),
		UploadDir:      cfg.UploadDir,
		PaypalClientID: cfg.PaypalClientID,
	}, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Recover())
	e.Use(customMiddleware.RequestLogger(log))
	e.Use(customMiddleware.Metrics())
	e.Use(middleware.CORS())

	routes.SetupRoutes(e, h, customMiddleware.Authenticate(users, cfg.JWTSecret), cfg.UploadDir)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
}
