package main

import (
	"fmt"
	"log"
	"os"

	"hybridretrofit/internal/api/handlers"
	"hybridretrofit/internal/api/middleware"
	"hybridretrofit/internal/data"

	"github.com/gin-gonic/gin"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	registry, err := data.LoadRegistry(data.DefaultRegistryPath())
	if err != nil {
		log.Printf("plant registry file unavailable (%v), falling back to seed plants", err)
		registry = data.NewRegistry(data.SeedPlants())
	}

	optimizeHandler := handlers.NewOptimizeHandler()
	simulateHandler := handlers.NewSimulateHandler()
	byogOptHandler := handlers.NewOptimizeBYOGHandler()
	plantsHandler := handlers.NewPlantsHandler(registry)
	streamHandler := handlers.NewStreamHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/optimize", optimizeHandler.Run)
		api.POST("/simulate", simulateHandler.Run)
		api.POST("/optimize/byog", byogOptHandler.Run)
		api.GET("/optimize/stream", streamHandler.Run)
		api.GET("/cost-scenarios", handlers.ListCostScenarios)
		api.GET("/plants/:id", plantsHandler.Get)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
