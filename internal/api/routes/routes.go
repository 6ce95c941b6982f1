package routes

import (
	"team-registration-backend/internal/api/handlers"
	"team-registration-backend/internal/api/middleware"
	"team-registration-backend/internal/config"
	"team-registration-backend/internal/repository"
	"team-registration-backend/internal/service"
	"team-registration-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize blob store client
	uploader := storage.NewCloudinaryUploader(cfg)

	// Initialize repositories
	teamRepo := repository.NewTeamRepository(db)
	fixtureRepo := repository.NewFixtureRepository(db)
	resultRepo := repository.NewResultRepository(db)

	// Initialize services
	teamService := service.NewTeamService(teamRepo, uploader, validator)
	fixtureService := service.NewFixtureService(fixtureRepo, validator)
	resultService := service.NewResultService(resultRepo, fixtureRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	teamHandler := handlers.NewTeamHandler(teamService)
	fixtureHandler := handlers.NewFixtureHandler(fixtureService)
	resultHandler := handlers.NewResultHandler(resultService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	teams := v1.Group("/teams")
	{
		teams.POST("/register", teamHandler.RegisterTeam)
		teams.GET("", teamHandler.ListTeams)
		teams.GET("/by-name/:name", teamHandler.GetTeamByName)
		teams.POST("/verify-secret", teamHandler.VerifySecret)

		// Mutations are gated by the team secret once one has been issued;
		// the first roster submission runs against a shell and passes.
		gated := teams.Group("", middleware.TeamSecret(teamRepo))
		{
			gated.PUT("/:id/roster", teamHandler.UpdateRoster)
			gated.PATCH("/:id", teamHandler.UpdateTeam)
			gated.DELETE("/:id", teamHandler.DeleteTeam)
			gated.POST("/:id/logo", teamHandler.UploadLogo)
			gated.PATCH("/:id/players/:playerId", teamHandler.UpdatePlayer)
			gated.POST("/:id/players/:playerId/image", teamHandler.UploadPlayerImage)
		}
	}

	fixtures := v1.Group("/fixtures")
	{
		fixtures.POST("", fixtureHandler.CreateFixture)
		fixtures.GET("", fixtureHandler.ListFixtures)
		fixtures.GET("/:id", fixtureHandler.GetFixture)
		fixtures.PUT("/:id", fixtureHandler.UpdateFixture)
		fixtures.DELETE("/:id", fixtureHandler.DeleteFixture)
	}

	results := v1.Group("/results")
	{
		results.POST("", resultHandler.CreateResult)
		results.GET("", resultHandler.ListResults)
		results.PUT("/:id", resultHandler.UpdateResult)
		results.DELETE("/:id", resultHandler.DeleteResult)
	}

	return router
}
