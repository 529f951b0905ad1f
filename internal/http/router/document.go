package router

import (
	"github.com/gin-gonic/gin"

	"github.com/arthUFO12/CivicProject/internal/http/handler"
)

func DocumentRouter(router *gin.RouterGroup, handler *handler.DocumentHandler) {
	router.GET("/:mode", handler.Get)
	router.PUT("/:mode", handler.Put)
	router.DELETE("/:mode", handler.Reset)
	router.POST("/:mode/process", handler.Process)
	router.GET("/:mode/html", handler.ExportHTML)
	router.GET("/:mode/revisions", handler.Revisions)
}
