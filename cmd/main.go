package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briefforge/briefforge-backend/internal/clients/openai"
	"github.com/briefforge/briefforge-backend/internal/config"
	"github.com/briefforge/briefforge-backend/internal/handlers"
	"github.com/briefforge/briefforge-backend/internal/observability"
	"github.com/briefforge/briefforge-backend/internal/pkg/logger"
	"github.com/briefforge/briefforge-backend/internal/server"
	"github.com/briefforge/briefforge-backend/internal/services"
	"github.com/briefforge/briefforge-backend/internal/store"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Config
	log.Info("Loading configuration...")
	cfg, err := config.Load()
	if err != nil {
		log.Error("Could not load config", "error", err)
		os.Exit(1)
	}

	// Tracing (opt-in via OTEL_ENABLED)
	shutdownOtel := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "briefforge-backend",
		Environment: cfg.Env,
	})
	if shutdownOtel != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdownOtel(ctx)
		}()
	}

	// Store
	log.Info("Setting up brief store...", "dir", cfg.Store.Dir)
	briefStore, err := store.NewFileStore(cfg.Store.Dir, log)
	if err != nil {
		log.Error("Could not init brief store", "error", err)
		os.Exit(1)
	}

	// Clients
	openaiClient, err := openai.NewClient(log)
	if err != nil {
		log.Error("Could not init OpenAIClient", "error", err)
		os.Exit(1)
	}

	// Services
	log.Info("Setting up services...")
	briefService := services.NewBriefService(log, briefStore)
	generationService := services.NewGenerationService(log, openaiClient)

	// Handlers
	briefHandler := handlers.NewBriefHandler(log, briefService)
	generationHandler := handlers.NewGenerationHandler(log, generationService)

	// Router
	log.Info("Setting up router...")
	router := server.NewRouter(server.RouterConfig{
		ServiceName:       "briefforge-backend",
		AllowOrigins:      cfg.HTTP.AllowOrigins,
		BriefHandler:      briefHandler,
		GenerationHandler: generationHandler,
	})

	log.Info("Server listening", "addr", cfg.HTTP.Addr)
	if err := router.Run(cfg.HTTP.Addr); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
