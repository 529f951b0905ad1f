package router

import (
	"github.com/gin-gonic/gin"

	"github.com/arthUFO12/CivicProject/internal/http/handler"
)

// AIRouter mounts the editor's rewrite endpoint at its fixed path.
func AIRouter(router gin.IRouter, handler *handler.AIHandler) {
	router.POST("/AI", handler.Rewrite)
}

func ToneRouter(router *gin.RouterGroup, handler *handler.ToneHandler) {
	router.POST("/rewrite", handler.Rewrite)
	router.GET("/quotes/:mode", handler.Quote)
}
