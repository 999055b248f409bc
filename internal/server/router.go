package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/briefforge/briefforge-backend/internal/handlers"
)

type RouterConfig struct {
	ServiceName       string
	AllowOrigins      []string
	BriefHandler      *handlers.BriefHandler
	GenerationHandler *handlers.GenerationHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	if cfg.ServiceName != "" {
		router.Use(otelgin.Middleware(cfg.ServiceName))
	}

	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/briefs/generate", cfg.GenerationHandler.Generate)
		api.POST("/briefs", cfg.BriefHandler.Create)
		api.GET("/briefs", cfg.BriefHandler.List)
		api.GET("/briefs/:id", cfg.BriefHandler.Get)
		api.PATCH("/briefs/:id", cfg.BriefHandler.UpdateMetadata)
		api.PUT("/briefs/:id/document", cfg.BriefHandler.ReplaceDocument)
		api.DELETE("/briefs/:id", cfg.BriefHandler.Delete)
	}

	return router
}
