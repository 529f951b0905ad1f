package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arthUFO12/CivicProject/internal/http/dto"
	"github.com/arthUFO12/CivicProject/internal/service"
)

type AIHandler struct {
	aiService service.AIService
}

func NewAIHandler(aiService service.AIService) *AIHandler {
	return &AIHandler{aiService: aiService}
}

// Rewrite forwards {prompt} to the model and replies {rewritten}.
// Unreadable bodies are reported like upstream failures.
func (h *AIHandler) Rewrite(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RewriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.ErrorContext(ctx, "rewrite api error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rewrite text"})
		return
	}

	if req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing prompt"})
		return
	}

	rewritten, err := h.aiService.Rewrite(ctx, req.Prompt)
	if err != nil {
		slog.ErrorContext(ctx, "rewrite api error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rewrite text"})
		return
	}

	c.JSON(http.StatusOK, dto.RewriteResponse{Rewritten: rewritten})
}
