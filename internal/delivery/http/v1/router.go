package v1

import (
	"net/http"
	"time"

	"decentralhire-backend/config"
	"decentralhire-backend/internal/delivery/http/middleware"
	"decentralhire-backend/internal/delivery/http/response"
	"decentralhire-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	RegistryUC       domain.RegistryUsecase
	CompanyProfileUC domain.CompanyProfileUsecase
	JobPostingUC     domain.JobPostingUsecase
	JobApplicationUC domain.JobApplicationUsecase
	Config           *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config))
	{
		NewRegistryHandler(v1, protected, deps.RegistryUC)
		NewCompanyProfileHandler(v1, protected, deps.CompanyProfileUC)
		NewJobPostingHandler(v1, protected, deps.JobPostingUC)
		NewJobApplicationHandler(v1, protected, deps.JobApplicationUC)
	}

	return r
}
