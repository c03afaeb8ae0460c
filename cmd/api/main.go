// Circadian API
//
// REST API for chronotype analysis, sleep balance and predicted-energy curves.
//
//	@title			Circadian API
//	@version		1.0
//	@description	Compute chronotype, personalized sleep need, rolling sleep debt and 24h energy curves from daily vitals.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			vitals
//	@tag.description	Daily vitals ingestion endpoints
//
//	@tag.name			circadian
//	@tag.description	Chronotype and day-classification endpoints
//
//	@tag.name			balance
//	@tag.description	Sleep need and debt endpoints
//
//	@tag.name			energy
//	@tag.description	Predicted-energy curve endpoints
//
//	@tag.name			insights
//	@tag.description	LLM insights endpoints
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/noctura/circadian-api/internal/api"
	"github.com/noctura/circadian-api/internal/api/handler"
	"github.com/noctura/circadian-api/internal/config"
	"github.com/noctura/circadian-api/internal/domain"
	"github.com/noctura/circadian-api/internal/langfuse"
	"github.com/noctura/circadian-api/internal/llm"
	"github.com/noctura/circadian-api/internal/logging"
	"github.com/noctura/circadian-api/internal/repository"
	"github.com/noctura/circadian-api/internal/seed"
	"github.com/noctura/circadian-api/internal/service"
	"github.com/noctura/circadian-api/internal/sleep"
	"github.com/noctura/circadian-api/internal/telemetry"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.VitalsEntry{}); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}
	logger.Info("database migration completed")

	if cfg.Seed {
		logger.Info("seeding database with sample data (SEED=true)")
		if err := seed.Run(db, logger); err != nil {
			logger.Fatal("failed to seed database", zap.Error(err))
		}
	}

	// Initialize OpenTelemetry tracing (no-op when Langfuse unconfigured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "circadian-api")
	if err != nil {
		logger.Fatal("failed to initialize tracer", zap.Error(err))
	}

	// Langfuse ingestion client for insights traces and feedback scores
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	}, logger)

	// System prompt for the insights LLM, managed in Langfuse with a
	// local cache; empty falls back to the built-in prompt.
	systemPrompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		PromptName:  "circadian-insights-system",
		PromptLabel: "production",
		SavePath:    "prompts/insights_system_prompt.txt",
		Logger:      logger,
	})
	if err != nil {
		logger.Info("using built-in insights system prompt", zap.Error(err))
		systemPrompt = ""
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	vitalsRepo := repository.NewVitalsRepository(db)

	// Engine configuration
	engineCfg := sleep.DefaultConfig()
	engineCfg.MinChronotypeDays = cfg.ChronotypeMinDays

	// Initialize services
	userService := service.NewUserService(userRepo)
	vitalsService := service.NewVitalsService(vitalsRepo, userRepo)
	profileService := service.NewProfileService(vitalsService, userRepo, engineCfg)
	balanceService := service.NewBalanceService(vitalsService, userRepo, engineCfg)
	energyService := service.NewEnergyService(vitalsService, profileService, userRepo, engineCfg, cfg.ChronotypeMinDays)

	// OpenAI client (nil when not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIInsightsModel, systemPrompt)
	if openaiClient == nil {
		logger.Warn("OpenAI API key not configured, insights endpoint will be unavailable")
	}

	insightsService := service.NewInsightsService(
		profileService, balanceService, energyService,
		openaiClient, langfuseClient, userRepo, engineCfg,
	)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	vitalsHandler := handler.NewVitalsHandler(vitalsService)
	circadianHandler := handler.NewCircadianHandler(profileService, cfg.ChronotypeMinDays)
	balanceHandler := handler.NewBalanceHandler(balanceService)
	energyHandler := handler.NewEnergyHandler(energyService)
	insightsHandler := handler.NewInsightsHandler(insightsService)

	// Setup router
	router := api.NewRouter(logger,
		userHandler, vitalsHandler, circadianHandler,
		balanceHandler, energyHandler, insightsHandler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		logger.Error("tracer shutdown failed", zap.Error(err))
	}
}
