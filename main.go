package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/litehr/cv-summarizer/config"
	_ "github.com/litehr/cv-summarizer/docs"
	"github.com/litehr/cv-summarizer/fetcher"
	"github.com/litehr/cv-summarizer/gemini"
	"github.com/litehr/cv-summarizer/handlers"
	"github.com/litehr/cv-summarizer/middleware"
	"github.com/litehr/cv-summarizer/pipeline"
	"github.com/litehr/cv-summarizer/utils"
)

// @title LiteHR CV Summarizer API
// @version 1.0
// @description AI-powered CV summarization service: PDF upload, URL, and raw-text ingestion with structured hiring summaries.

// @contact.name API Support
// @contact.email support@litehr.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	if !cfg.HasAPIKey() {
		log.Println("Warning: GEMINI_API_KEY is not configured; summarization requests will fail until it is set")
	}

	// Set Gin mode based on debug setting
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Build the summarization pipeline
	geminiClient := gemini.NewClient(cfg)
	extractor := utils.NewDocumentExtractor()
	sourceFetcher := fetcher.NewFetcher(cfg)
	summarizer := pipeline.NewSummarizer(extractor, sourceFetcher, geminiClient)

	// Create handlers
	summarizeHandler := handlers.NewSummarizeHandler(summarizer, cfg)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())

	// Configure CORS for the admin dashboard
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Register routes. Health is served at the root for load balancer probes
	// and under /api where the documented API surface lives.
	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		cv := api.Group("/cv")
		{
			cv.POST("/summarize/upload", summarizeHandler.Upload)
			cv.POST("/summarize/text", summarizeHandler.Text)
			cv.POST("/summarize/url", summarizeHandler.URL)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
