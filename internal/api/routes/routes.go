package routes

import (
	"context"
	"log"

	"pipeline-crm-backend/internal/api/handlers"
	"pipeline-crm-backend/internal/api/middleware"
	"pipeline-crm-backend/internal/auth"
	"pipeline-crm-backend/internal/config"
	"pipeline-crm-backend/internal/database/models"
	"pipeline-crm-backend/internal/logger"
	"pipeline-crm-backend/internal/repository"
	"pipeline-crm-backend/internal/service"
	"pipeline-crm-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, appLogger *logger.Logger) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	casoRepo := repository.NewCasoRepository(db)
	contatoRepo := repository.NewContatoRepository(db)
	relacionamentoRepo := repository.NewRelacionamentoRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	caseFileRepo := repository.NewCaseFileRepository(db)

	// Initialize storage provider (S3 with local fallback)
	store := storage.Initialize(cfg, appLogger)

	// Initialize services
	casoService := service.NewCasoService(casoRepo, contatoRepo, relacionamentoRepo, validator)
	contatoService := service.NewContatoService(contatoRepo, relacionamentoRepo, casoRepo, validator)
	pipelineService := service.NewPipelineService(contatoRepo, relacionamentoRepo, validator)
	dashboardService := service.NewDashboardService(casoRepo, contatoRepo)
	campaignService := service.NewCampaignService(campaignRepo, contatoRepo, validator)
	exportService := service.NewExportService(campaignRepo)
	profileService := service.NewProfileService(profileRepo, validator)
	directoryService := service.NewDirectoryService(cfg)
	caseFileService := service.NewCaseFileService(caseFileRepo, casoRepo, store)

	// Initialize auth service
	authService, err := auth.NewService(cfg.JWTSecret, profileRepo)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}
	authHandler := auth.NewHandler(authService)
	authMiddleware := auth.NewMiddleware(authService)

	// The session manager tracks the authenticated identity and re-syncs
	// it on sign-in, sign-out and token refresh events
	sessionManager := auth.NewSessionManager(authService, auth.NewRepositoryProfileFetcher(profileRepo), auth.SessionManagerOptions{}, appLogger)
	go sessionManager.Run(context.Background(), authService.Subscribe())

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	casoHandler := handlers.NewCasoHandler(casoService)
	contatoHandler := handlers.NewContatoHandler(contatoService, pipelineService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	campaignHandler := handlers.NewCampaignHandler(campaignService, exportService)
	profileHandler := handlers.NewProfileHandler(profileService)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)
	caseFileHandler := handlers.NewCaseFileHandler(caseFileService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/signin", authHandler.SignIn)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.POST("/signout", authHandler.SignOut)
		authGroup.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Caso routes
		casos := v1.Group("/casos")
		{
			casos.GET("", casoHandler.ListCasos)
			casos.POST("", casoHandler.CreateCaso)
			casos.GET("/cities", casoHandler.ListCities)
			casos.GET("/:id", casoHandler.GetCaso)
			casos.PUT("/:id", casoHandler.UpdateCaso)
			casos.DELETE("/:id", casoHandler.DeleteCaso)
			casos.POST("/:id/relatives", casoHandler.LinkContato)
			casos.DELETE("/relatives/:relId", casoHandler.UnlinkContato)
			casos.POST("/:id/files", caseFileHandler.Upload)
			casos.GET("/:id/files", caseFileHandler.List)
		}

		// Contato and pipeline routes
		contatos := v1.Group("/contatos")
		{
			contatos.GET("", contatoHandler.ListContatos)
			contatos.POST("", contatoHandler.CreateContato)
			contatos.GET("/:id", contatoHandler.GetContato)
			contatos.PUT("/:id", contatoHandler.UpdateContato)
			contatos.DELETE("/:id", contatoHandler.DeleteContato)
			contatos.PATCH("/:id/status", contatoHandler.TransitionStatus)
			contatos.PATCH("/:id/schedule", contatoHandler.UpdateScheduledDate)
			contatos.PUT("/:id/notes", contatoHandler.SaveNotes)
			contatos.PATCH("/:id/contacted", contatoHandler.SetContacted)
		}

		// Dashboard routes
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/summary", dashboardHandler.GetSummary)
			dashboard.GET("/board", dashboardHandler.GetBoard)
		}

		// Campaign routes (mutations are role-gated inside the service)
		campaigns := v1.Group("/campaigns")
		{
			campaigns.GET("", campaignHandler.ListCampaigns)
			campaigns.POST("", campaignHandler.CreateCampaign)
			campaigns.GET("/:id", campaignHandler.GetCampaign)
			campaigns.PUT("/:id", campaignHandler.UpdateCampaign)
			campaigns.DELETE("/:id", campaignHandler.DeleteCampaign)
			campaigns.PUT("/:id/leads", campaignHandler.ReplaceLeads)
			campaigns.GET("/:id/export", campaignHandler.ExportLeads)
		}

		// Profile routes
		profiles := v1.Group("/profiles")
		{
			profiles.PUT("/me/password", profileHandler.ChangePassword)
			profiles.GET("/:id", profileHandler.GetProfile)

			admin := profiles.Group("")
			admin.Use(authMiddleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("", profileHandler.ListProfiles)
				admin.POST("", profileHandler.CreateProfile)
				admin.PUT("/:id", profileHandler.UpdateProfile)
				admin.DELETE("/:id", profileHandler.DeleteProfile)
			}
		}

		// Corporate directory routes
		directory := v1.Group("/directory")
		{
			directory.GET("/search", directoryHandler.Search)
		}

		// Case file routes
		files := v1.Group("/files")
		{
			files.GET("/:fileId", caseFileHandler.Download)
			files.DELETE("/:fileId", caseFileHandler.Delete)
		}
	}

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
