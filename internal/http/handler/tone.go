package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arthUFO12/CivicProject/internal/http/dto"
	"github.com/arthUFO12/CivicProject/internal/model"
	"github.com/arthUFO12/CivicProject/internal/service"
)

type ToneHandler struct {
	toneService service.ToneService
}

func NewToneHandler(toneService service.ToneService) *ToneHandler {
	return &ToneHandler{toneService: toneService}
}

func (h *ToneHandler) Rewrite(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ToneRewriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid rewrite request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mode, err := model.ParseMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be happy or sad"})
		return
	}

	c.JSON(http.StatusOK, dto.RewriteResponse{
		Rewritten: h.toneService.Rewrite(ctx, mode, req.Text),
	})
}

func (h *ToneHandler) Quote(c *gin.Context) {
	mode, ok := modeParam(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.QuoteResponse{
		Mode:  mode.String(),
		Quote: h.toneService.Quote(c.Request.Context(), mode),
	})
}
