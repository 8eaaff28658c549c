package http

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"go.ngs.io/solar-api/internal/usecase"
)

// SetupRouter creates and configures the Gin router.
func SetupRouter(sunUC *usecase.SunTimesUseCase) *gin.Engine {

	router := gin.Default()

	// Setup CORS middleware.
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable.
	// Default to allow all origins if not specified.
	allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if allowedOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(allowedOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}

	router.Use(cors.New(corsConfig))

	// Create handler.
	handler := NewHandler(sunUC)

	// API v1 routes.
	v1 := router.Group("/v1")

	// Solar events and position.
	sun := v1.Group("/sun")
	sun.GET("/times", handler.GetSunTimes)
	sun.GET("/position", handler.GetSunPosition)

	// Event class catalog.
	v1.GET("/events", handler.GetEventClasses)

	// Health check.
	router.GET("/health", handler.HealthCheck)

	return router
}
