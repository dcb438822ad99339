package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"aqarsearch/internal/config"
	"aqarsearch/internal/handler"
	"aqarsearch/internal/repository"
	"aqarsearch/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log.Printf("Aqar Search Engine")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database connection
	repo, err := repository.NewPostgresRepository(
		cfg.GetPostgreSQLDSN(),
		cfg.PostgreSQL.MaxConnections,
		cfg.PostgreSQL.MaxIdleConnections,
	)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()

	log.Println("✅ Connected to PostgreSQL database")

	// Initialize assistant client
	assistant := service.NewAssistantClient(&cfg.Assistant)
	if assistant.IsEnabled() {
		log.Printf("✅ Assistant backend configured")
		log.Printf("   - Base URL: %s", cfg.Assistant.BaseURL)
		log.Printf("   - Timeout: %ds", cfg.Assistant.Timeout)
	} else {
		log.Println("⚠️  Assistant backend is disabled - conversational search will return empty criteria")
		log.Println("   Set ASSISTANT_BASE_URL environment variable to enable it")
	}

	// Initialize services
	sessions := service.NewFilterSessions(cfg.DefaultFilterCriteria())
	searchService := service.NewSearchService(repo, service.NewAttributeFilter(), cfg.DefaultReference())
	insightsService := service.NewInsightsService(repo, 0.6, 0.4)

	log.Println("✅ Services initialized")
	log.Printf("   - Default reference: %.4f, %.4f", cfg.Geo.DefaultLat, cfg.Geo.DefaultLon)

	// Initialize handlers
	searchHandler := handler.NewSearchHandler(searchService, sessions, cfg.Search.DefaultLimit, cfg.Search.MaxLimit)
	filterHandler := handler.NewFilterHandler(sessions)
	assistantHandler := handler.NewAssistantHandler(assistant, searchService, sessions, cfg.Search.DefaultLimit)
	insightsHandler := handler.NewInsightsHandler(insightsService)
	favoritesHandler := handler.NewFavoritesHandler(searchService)
	embeddingHandler := handler.NewEmbeddingHandler(searchService, cfg.Search.EmbeddingDimensions)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "aqar-search-engine",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		// Search endpoints
		apiV1.POST("/search", searchHandler.Search)
		apiV1.POST("/search/semantic", searchHandler.SemanticSearch)
		apiV1.GET("/properties/:id", searchHandler.GetProperty)

		// Filter session endpoints
		apiV1.GET("/filters", filterHandler.Get)
		apiV1.PATCH("/filters", filterHandler.Patch)
		apiV1.POST("/filters/apply", filterHandler.Apply)
		apiV1.POST("/filters/reset", filterHandler.Reset)

		// Conversational search
		apiV1.POST("/assistant/search", assistantHandler.Search)

		// Market insights
		apiV1.GET("/insights/best-value", insightsHandler.BestValue)
		apiV1.GET("/insights/districts", insightsHandler.Districts)

		// Favorites
		apiV1.POST("/favorites", favoritesHandler.Toggle)
		apiV1.GET("/favorites", favoritesHandler.List)

		// Embedding maintenance
		apiV1.POST("/embeddings/batch", embeddingHandler.BatchUpdate)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)
	log.Printf("📝 API root: http://localhost:%d/api/v1", cfg.Server.Port)

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}
