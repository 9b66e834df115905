package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/OSUMed/feature-request-app/internal/domain/ports"
	"github.com/OSUMed/feature-request-app/internal/handlers/middleware"
	"github.com/OSUMed/feature-request-app/internal/infrastructure/i18n"
)

// RouterConfig reúne as dependências do roteador HTTP
type RouterConfig struct {
	BaseURL        string
	AllowedOrigins string
	Logger         ports.Logger
	I18n           *i18n.Service
	Auth           *middleware.AuthMiddleware

	Features *FeatureRequestHandler
	Upvotes  *UpvoteHandler
	Users    *AuthHandler
	Health   *HealthHandler
}

// NewRouter monta o engine Gin com middlewares globais e as rotas /api/v1
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Logger))
	router.Use(middleware.BaseURL(cfg.BaseURL))
	router.Use(middleware.NewI18nMiddleware(cfg.I18n).DetectLanguage())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(cfg.Auth.Authenticate())

	router.GET("/health", cfg.Health.Check)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/login", cfg.Users.Login)
			authGroup.POST("/logout", middleware.RequireAuth(), cfg.Users.Logout)
			authGroup.GET("/me", middleware.RequireAuth(), cfg.Users.Me)
		}

		// Autorização fica nos services: anônimos chegam até eles
		features := v1.Group("/features")
		{
			features.GET("", cfg.Features.List)
			features.POST("", cfg.Features.Create)
			features.GET("/:id", cfg.Features.Get)
			features.PATCH("/:id", cfg.Features.UpdateStatus)
			features.GET("/:id/upvote", cfg.Upvotes.Status)
			features.POST("/:id/upvote", cfg.Upvotes.Toggle)
		}
	}

	return router
}
