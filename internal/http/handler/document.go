package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arthUFO12/CivicProject/internal/document"
	"github.com/arthUFO12/CivicProject/internal/http/dto"
	"github.com/arthUFO12/CivicProject/internal/service"
)

const maxRevisionLimit = 50

type DocumentHandler struct {
	documentService service.DocumentService
}

func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

func (h *DocumentHandler) Get(c *gin.Context) {
	mode, ok := modeParam(c)
	if !ok {
		return
	}

	doc, err := h.documentService.Get(c.Request.Context(), mode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load document"})
		return
	}

	c.JSON(http.StatusOK, dto.DocumentResponse{Mode: mode.String(), Document: doc})
}

// Put stores the request body, an editor value, as the mode's document.
func (h *DocumentHandler) Put(c *gin.Context) {
	mode, ok := modeParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	var doc document.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		slog.WarnContext(ctx, "invalid document body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	revisionID, err := h.documentService.Save(ctx, mode, doc)
	if err != nil {
		writeDocumentError(c, err, "failed to save document")
		return
	}

	c.JSON(http.StatusOK, dto.SaveDocumentResponse{Mode: mode.String(), RevisionID: revisionID})
}

// Reset replaces the mode's document with the initial value.
func (h *DocumentHandler) Reset(c *gin.Context) {
	mode, ok := modeParam(c)
	if !ok {
		return
	}

	doc, err := h.documentService.Reset(c.Request.Context(), mode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset document"})
		return
	}

	c.JSON(http.StatusOK, dto.DocumentResponse{Mode: mode.String(), Document: doc})
}

// Process runs rewrite triggers and sentiment marking over the posted value
// and saves the result.
func (h *DocumentHandler) Process(c *gin.Context) {
	mode, ok := modeParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	var doc document.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		slog.WarnContext(ctx, "invalid document body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.documentService.Process(ctx, mode, doc)
	if err != nil {
		writeDocumentError(c, err, "failed to process document")
		return
	}

	c.JSON(http.StatusOK, dto.ToProcessDocumentResponse(mode, result.Document, result.Rewritten, result.Marked, result.RevisionID))
}

func (h *DocumentHandler) ExportHTML(c *gin.Context) {
	mode, ok := modeParam(c)
	if !ok {
		return
	}

	out, err := h.documentService.ExportHTML(c.Request.Context(), mode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export document"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(out))
}

func (h *DocumentHandler) Revisions(c *gin.Context) {
	mode, ok := modeParam(c)
	if !ok {
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxRevisionLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 50"})
			return
		}
		limit = parsed
	}

	revs, err := h.documentService.Revisions(c.Request.Context(), mode, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list revisions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRevisionResponses(revs))
}

func writeDocumentError(c *gin.Context, err error, message string) {
	if errors.Is(err, document.ErrInvalidDocument) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}
