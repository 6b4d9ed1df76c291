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

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"vetclinic/docs" // swagger docs
	"vetclinic/internal/auth"
	"vetclinic/internal/cache"
	"vetclinic/internal/config"
	"vetclinic/internal/db"
	"vetclinic/internal/handler"
	"vetclinic/internal/logger"
	"vetclinic/internal/router"
	"vetclinic/internal/service"
)

// @title Veterinary Clinic Management API
// @version 1.0
// @description Clinics, veterinarians, tutors, pets and visits behind username/password authentication with bearer JWT.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	store, closeStore, err := db.OpenStore(cfg, zlog)
	if err != nil {
		zlog.Fatal("database init", zap.Error(err))
	}
	defer func() { _ = closeStore() }()

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer func() { _ = cacheClient.Close() }()
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		zlog.Warn("redis unavailable, serving without cache", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	cancelPing()

	// Initialize auth components
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	jwtService, err := auth.NewJWTService(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.AccessTokenTTL())
	if err != nil {
		zlog.Fatal("jwt init", zap.Error(err))
	}
	resolver := auth.NewResolver(jwtService, store.Users())

	// Initialize services
	authService := service.NewAuthService(store, hasher, jwtService, zlog)
	userService := service.NewUserService(store, cacheClient, hasher)
	clinicService := service.NewClinicService(store, cacheClient)
	veterinarianService := service.NewVeterinarianService(store, cacheClient)
	tutorService := service.NewTutorService(store, cacheClient, cfg.PhoneRegion)
	petService := service.NewPetService(store, cacheClient)
	visitService := service.NewVisitService(store, cacheClient)

	e := echo.New()
	e.HideBanner = true

	router.Register(e, cfg, zlog, router.Handlers{
		Auth:          handler.NewAuthHandler(authService),
		Users:         handler.NewUserHandler(userService),
		Clinics:       handler.NewClinicHandler(clinicService),
		Veterinarians: handler.NewVeterinarianHandler(veterinarianService),
		Tutors:        handler.NewTutorHandler(tutorService),
		Pets:          handler.NewPetHandler(petService),
		Visits:        handler.NewVisitHandler(visitService),
		Health:        handler.NewHealthHandler(cfg),
	}, auth.Middleware(resolver))

	docs.SwaggerInfo.Version = cfg.AppVersion
	docs.SwaggerInfo.Title = cfg.AppName
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	} else {
		docs.SwaggerInfo.Host = "localhost:" + cfg.ServerPort
	}
	zlog.Info("swagger documentation available", zap.String("url", "http://"+docs.SwaggerInfo.Host+"/swagger/index.html"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := ":" + cfg.ServerPort
		zlog.Info("server starting", zap.String("addr", addr), zap.String("environment", cfg.Environment))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		zlog.Error("server shutdown", zap.Error(err))
	}
	zlog.Info("server stopped")
}
