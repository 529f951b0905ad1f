package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arthUFO12/CivicProject/common/logger"
	"github.com/arthUFO12/CivicProject/internal/model"
)

// modeParam parses the :mode path parameter, replying 400 when it is unknown.
func modeParam(c *gin.Context) (model.Mode, bool) {
	mode, err := model.ParseMode(c.Param("mode"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be happy or sad"})
		return "", false
	}

	ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{Mode: logger.Ptr(mode.String())})
	c.Request = c.Request.WithContext(ctx)
	return mode, true
}
