package router

import (
	"github.com/gin-gonic/gin"

	"github.com/arthUFO12/CivicProject/internal/http/handler"
	"github.com/arthUFO12/CivicProject/internal/service"
)

type RouterConfig struct {
	// AllowedOrigin enables CORS for the editor page when it is served elsewhere.
	AllowedOrigin string
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	if cfg.AllowedOrigin != "" {
		router.Use(cors(cfg.AllowedOrigin))
	}

	healthHandler := handler.NewHealthHandler(services.Store())
	router.GET("/health", healthHandler.Check)

	aiHandler := handler.NewAIHandler(services.AI())
	AIRouter(router, aiHandler)

	v1 := router.Group("/api/v1")
	{
		toneHandler := handler.NewToneHandler(services.Tone())
		ToneRouter(v1, toneHandler)

		documentHandler := handler.NewDocumentHandler(services.Documents())
		DocumentRouter(v1.Group("/documents"), documentHandler)
	}
}
