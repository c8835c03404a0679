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

	"github.com/krishirakshak/backend/internal/adapters/cache"
	"github.com/krishirakshak/backend/internal/api/handlers"
	"github.com/krishirakshak/backend/internal/api/routes"
	"github.com/krishirakshak/backend/internal/application/services"
	"github.com/krishirakshak/backend/internal/domain/providers"
	"github.com/krishirakshak/backend/internal/hazard"
	"github.com/krishirakshak/backend/internal/infrastructure/clients/bedrock"
	"github.com/krishirakshak/backend/internal/infrastructure/clients/redis"
	"github.com/krishirakshak/backend/internal/infrastructure/clients/rekognition"
	"github.com/krishirakshak/backend/internal/infrastructure/observability"
	"github.com/krishirakshak/backend/internal/offline"
	"github.com/krishirakshak/backend/pkg/config"
	"github.com/krishirakshak/backend/pkg/retry"
)

func main() {

	// Load configuration

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)
	logger := observability.GetLogger()

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	var shutdown func(context.Context) error
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err = observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			logger.Info().Msg("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize metrics")
	}

	// Initialize Redis client
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize Redis client, falling back to in-memory storage")
		// Continue without Redis - the application can work on the in-memory store
	} else {
		defer redisClient.Close()
		logger.Info().Msg("Redis client initialized successfully")
	}

	var kv providers.KeyValueStore
	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		adapter := cache.NewRedisAdapter(redisClient)
		kv, cacheProvider = adapter, adapter
	} else {
		adapter := cache.NewMemoryAdapter()
		kv, cacheProvider = adapter, adapter
	}

	// Initialize offline storage
	store := offline.NewStore(kv, offline.StoreConfig{
		MaxItems: cfg.Cache.MaxItems,
		MaxAge:   time.Duration(cfg.Cache.MaxAgeDays) * 24 * time.Hour,
	})
	if removed, err := store.PruneExpired(ctx); err != nil {
		logger.Warn().Err(err).Msg("Failed to prune expired cache entries")
	} else if removed > 0 {
		logger.Info().Int("removed", removed).Msg("Pruned expired cache entries")
	}

	hazardHistory := offline.NewHazardHistory(kv, 30)

	// Initialize AWS clients unless running in demo mode
	var answerProvider providers.AnswerProvider
	var interpreter providers.HazardInterpreter
	var visionProvider providers.VisionProvider

	if cfg.DemoMode {
		logger.Info().Msg("Demo mode enabled, remote model calls disabled")
	} else {
		bedrockClient, err := bedrock.NewClient(ctx, &cfg.Bedrock)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize Bedrock client, answers served locally")
		} else {
			defer bedrockClient.Close()
			answerProvider = bedrockClient
			interpreter = bedrockClient
			logger.Info().Str("model", cfg.Bedrock.ModelID).Msg("Bedrock client initialized successfully")
		}

		rekognitionClient, err := rekognition.NewClient(ctx, &cfg.Rekognition)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize Rekognition client, hazard analysis serves demo reports")
		} else {
			visionProvider = rekognitionClient
			logger.Info().Msg("Rekognition client initialized successfully")
		}
	}

	bedrockRetry := retry.DefaultConfig()
	bedrockRetry.MaxAttempts = cfg.Bedrock.MaxAttempts

	rekognitionRetry := retry.DefaultConfig()
	rekognitionRetry.MaxAttempts = cfg.Rekognition.MaxAttempts

	// Initialize services

	resolutionService := services.NewResolutionService(
		answerProvider,
		store,
		metrics,
		bedrockRetry,
		cfg.DemoMode,
	)

	imageService := services.NewImageService(
		visionProvider,
		interpreter,
		hazard.NewMatcher(hazard.WithMinConfidence(cfg.Rekognition.MinConfidence)),
		hazard.NewDemoGenerator(),
		hazardHistory,
		metrics,
		rekognitionRetry,
		cfg.DemoMode,
	)

	feedbackService := services.NewFeedbackService(kv)

	// Initialize handlers

	askHandler := handlers.NewAskHandler(resolutionService)
	analyzeHandler := handlers.NewAnalyzeHandler(imageService)
	historyHandler := handlers.NewHistoryHandler(store, hazardHistory)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService, cacheProvider)

	// Set up router

	router := routes.NewRouter(
		askHandler,
		analyzeHandler,
		historyHandler,
		feedbackHandler,
		metrics,
	)

	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("addr", serverAddr).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Server shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Error during server shutdown")
	}

	logger.Info().Msg("Server stopped")
}
