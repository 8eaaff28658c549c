// Package main provides the solar events API HTTP server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.ngs.io/solar-api/internal/adapter/store"
	"go.ngs.io/solar-api/internal/adapter/store/csv"
	httpHandler "go.ngs.io/solar-api/internal/http"
	"go.ngs.io/solar-api/internal/usecase"
)

const version = "0.1.0"

func main() {
	// Parse command-line flags.
	showHelp := flag.Bool("help", false, "Show usage information")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showHelp {
		printUsage()
		return
	}

	if *showVersion {
		fmt.Printf("solar-api version %s\n", version)
		return
	}

	// Load configuration from environment.
	port := getEnv("PORT", "8080")
	dataDir := getEnv("DATA_DIR", "./data")

	log.Printf("Starting Solar API server...")
	log.Printf("Port: %s", port)
	log.Printf("Data directory: %s", dataDir)

	// Initialize the named-location store. Place-name queries work only when
	// a locations.csv is present in the data directory; lat/lon queries are
	// always available.
	var locations store.LocationResolver = csv.NewLocationStore(dataDir)

	// Initialize use case.
	sunUC := usecase.NewSunTimesUseCase(locations)

	// Setup router.
	router := httpHandler.SetupRouter(sunUC)

	// Start server.
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Server listening on %s", addr)
	log.Printf("Health check: http://localhost:%s/health", port)
	log.Printf("API endpoints:")
	log.Printf("  - GET /v1/sun/times")
	log.Printf("  - GET /v1/sun/position")
	log.Printf("  - GET /v1/events")

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// printUsage prints usage information.
func printUsage() {
	fmt.Printf("Solar API Server v%s\n\n", version)
	fmt.Println("USAGE:")
	fmt.Println("  solar-api [flags]")
	fmt.Println()
	fmt.Println("FLAGS:")
	fmt.Println("  -help          Show this help message")
	fmt.Println("  -version       Show version information")
	fmt.Println()
	fmt.Println("ENVIRONMENT VARIABLES:")
	fmt.Println("  PORT                    Server port (default: 8080)")
	fmt.Println("  DATA_DIR                Locations CSV directory (default: ./data)")
	fmt.Println("  CORS_ALLOWED_ORIGINS    Comma-separated list of allowed origins (default: all origins)")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  # Start server with default settings")
	fmt.Println("  solar-api")
	fmt.Println()
	fmt.Println("  # Start server on custom port")
	fmt.Println("  PORT=3000 solar-api")
	fmt.Println()
	fmt.Println("API ENDPOINTS:")
	fmt.Println("  GET /health              Health check")
	fmt.Println("  GET /v1/events           List solar event classes")
	fmt.Println("  GET /v1/sun/times        Get solar event times for a date range")
	fmt.Println("  GET /v1/sun/position     Get the instantaneous solar position")
	fmt.Println()
}
