package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dhvanil3103/ats-resume/internal/config"
	"github.com/dhvanil3103/ats-resume/internal/handlers"
	"github.com/dhvanil3103/ats-resume/internal/logger"
	"github.com/dhvanil3103/ats-resume/internal/repositories"
	"github.com/dhvanil3103/ats-resume/internal/router"
	"github.com/dhvanil3103/ats-resume/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	logr := logger.New(cfg.Log.Level, cfg.Log.Format)
	logr.Info("✅ Config loaded successfully")

	// Initialize the optional usage event store
	db, err := config.InitDatabase(cfg, logr)
	if err != nil {
		logr.Fatalf("❌ Failed to initialize database: %v", err)
	}

	recorder := services.NoopRecorder()
	if db != nil {
		recorder = repositories.NewAnalysisEventRepository(db)
		logr.Info("✅ Repositories initialized successfully")
	}

	// Initialize Gemini AI
	ctx := context.Background()
	geminiService, err := services.NewGeminiService(ctx, cfg.Gemini, logr)
	if err != nil {
		logr.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	logr.Info("✅ Gemini AI initialized successfully")

	extractor := services.NewTextExtractor(logr)
	analyzer := services.NewAnalyzer(geminiService, recorder, logr)
	logr.Info("✅ Services initialized successfully")

	// Initialize Handlers
	app := router.New(cfg, logr, router.Handlers{
		Document:   handlers.NewDocumentHandler(extractor, cfg.Storage.MaxFileSize, logr),
		Analysis:   handlers.NewAnalysisHandler(analyzer, extractor),
		Generation: handlers.NewGenerationHandler(analyzer, extractor),
	})
	logr.Info("✅ Handlers initialized")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logr.Info("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			logr.Errorf("❌ Server forced to shutdown: %v", err)
		}
		if db != nil {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logr.Infof("🚀 Server starting on %s (%s)", addr, cfg.Server.Env)
	logr.Infof("📖 API Documentation: http://localhost%s/", addr)

	if err := app.Listen(addr); err != nil {
		logr.Fatalf("❌ Failed to start server: %v", err)
	}
}
