package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"decentralhire-backend/config"
	_ "decentralhire-backend/docs" // Important for Swagger
	v1 "decentralhire-backend/internal/delivery/http/v1"
	"decentralhire-backend/internal/domain"
	"decentralhire-backend/internal/eventbus"
	"decentralhire-backend/internal/repository/postgres"
	"decentralhire-backend/internal/usecase"
	"decentralhire-backend/pkg/database"
	"decentralhire-backend/pkg/logger"
	redisclient "decentralhire-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           DecentralHire Backend API
// @version         1.0
// @description     Hiring registry backend: company profiles, job postings and the application lifecycle.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting decentralhire backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Event Bus
	// Redis is optional; without it events stay in the outbox table and the
	// in-process bus serves local subscribers.
	var bus domain.EventBus
	if err := redisclient.Initialize(redisclient.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-process event bus", "error", err)
		bus = eventbus.NewMemoryBus()
	} else {
		bus = eventbus.NewRedisBus(redisclient.Client(), cfg.EventChannel)
	}
	defer redisclient.Close()

	// 5. Setup Repositories
	profileRepo := postgres.NewCompanyProfileRepository(dbPool)
	postingRepo := postgres.NewJobPostingRepository(dbPool)
	applicationRepo := postgres.NewJobApplicationRepository(dbPool)

	// 6. Setup UseCases
	validate := validator.New()
	fees := domain.FeePolicy{
		PostingFee:       cfg.PostingFeeAmount,
		ApplicationFee:   cfg.ApplicationFeeAmount,
		TreasuryIdentity: cfg.TreasuryIdentity,
	}
	registryUC := usecase.NewRegistryUsecase(profileRepo, bus)
	companyProfileUC := usecase.NewCompanyProfileUsecase(profileRepo, postingRepo, bus, fees, validate)
	jobPostingUC := usecase.NewJobPostingUsecase(postingRepo, applicationRepo, bus, fees)
	jobApplicationUC := usecase.NewJobApplicationUsecase(applicationRepo, postingRepo, bus)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		RegistryUC:       registryUC,
		CompanyProfileUC: companyProfileUC,
		JobPostingUC:     jobPostingUC,
		JobApplicationUC: jobApplicationUC,
		Config:           cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
