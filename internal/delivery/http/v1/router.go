package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go-boutique-backend/config"
	"go-boutique-backend/internal/delivery/http/middleware"
	"go-boutique-backend/internal/delivery/http/response"
	"go-boutique-backend/internal/domain"
)

type RouterDeps struct {
	LeadUC domain.LeadUsecase
	Config *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.SiteBaseURL)) // CORS must be first!
	r.Use(middleware.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "operational"})
	})

	// Public routes - NO authentication required
	NewLeadHandler(v1, deps.LeadUC, deps.Config)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
