package main

import (
	"log"

	"pipeline-crm-backend/internal/api/routes"
	"pipeline-crm-backend/internal/config"
	"pipeline-crm-backend/internal/database"
	"pipeline-crm-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "pipeline-crm-backend/docs" // This is needed for swag
)

//	@title			Pipeline CRM Backend API
//	@version		1.0
//	@description	Backend API for the funeral outreach CRM: casos, contatos, the six-stage contact pipeline, campaigns and operator profiles.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	var appLogger *logger.Logger
	if cfg.IsDevelopment() {
		appLogger = logger.NewDevelopment(cfg.LogLevel)
	} else {
		appLogger = logger.New(cfg.LogLevel)
	}

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		appLogger.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, appLogger)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	appLogger.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		appLogger.Fatal("Failed to start server:", err)
	}
}
