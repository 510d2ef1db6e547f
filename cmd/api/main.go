// @title Craftify API
// @version 1.0
// @description Generates courses, quizzes and mindmaps with a generative model and finds a matching YouTube video.
// @contact.name API Support
// @license.name MIT
// @host localhost:8000
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "craftify/cmd/api/docs"
	"craftify/internal/adapter"
	"craftify/internal/adapter/llm"
	"craftify/internal/adapter/youtube"
	"craftify/internal/cache"
	"craftify/internal/config"
	"craftify/internal/domain"
	"craftify/internal/handler"
	"craftify/internal/logger"
	"craftify/internal/router"
	"craftify/internal/service"
	"craftify/internal/telemetry"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	shutdownTracing, err := telemetry.InitTracing(ctx, cfg.Telemetry)
	if err != nil {
		appLogger.Fatal("Failed to initialize tracing", zap.Error(err))
	}

	generator, err := llm.NewGenerator(ctx, cfg.LLM, telemetry.HTTPClient(cfg.LLM.Timeout))
	if err != nil {
		appLogger.Fatal("Failed to create generative client", zap.Error(err))
	}
	appLogger.Info("Generative client initialized",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", generator.ModelID()))

	searcher, err := youtube.NewSearcher(ctx, cfg.YouTube, telemetry.HTTPClient(cfg.YouTube.Timeout))
	if err != nil {
		appLogger.Fatal("Failed to create YouTube client", zap.Error(err))
	}
	if cfg.YouTube.APIKey == "" {
		appLogger.Warn("youtube.api_key is empty; video lookups will fail")
	}

	var cacheAdapter domain.Cache = adapter.NewNoopCache()
	cacheEnabled := false
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Warn("Redis unavailable, continuing without cache", zap.Error(err))
		} else {
			defer redisClient.Close()
			cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
			cacheEnabled = true
			appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
		}
	}

	contentHandler := handler.NewContentHandler(
		service.NewCourseService(generator, cacheAdapter, cfg),
		service.NewQuizService(generator, cfg),
		service.NewMindmapService(),
		service.NewVideoService(searcher, cacheAdapter, cfg),
	)
	app := router.New(cfg, router.Handlers{
		Content: contentHandler,
		Health:  handler.NewHealthHandler(cacheAdapter, cacheEnabled),
	})

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		appLogger.Error("Failed to flush traces", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
