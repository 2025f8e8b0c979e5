package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fact-data/factstock_backend/internal/core/ports/services"
	"github.com/fact-data/factstock_backend/internal/dto"
	"github.com/fact-data/factstock_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// processingHandler handles HTTP requests for processing runs.
type processingHandler struct {
	processingService portssvc.ProcessingSvcFacade
}

// newProcessingHandler creates a new processingHandler.
func newProcessingHandler(processingService portssvc.ProcessingSvcFacade) *processingHandler {
	return &processingHandler{
		processingService: processingService,
	}
}

func (h *processingHandler) createProcessing(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateProcessingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for processing", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	processing, err := h.processingService.RecordProcessing(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, logger, err, "record processing")
		return
	}

	c.JSON(http.StatusCreated, dto.ToProcessingResponse(processing))
}

func (h *processingHandler) listProcessings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var factoryID *string
	if v := c.Query("factoryID"); v != "" {
		factoryID = &v
	}

	processings, err := h.processingService.ListProcessings(c.Request.Context(), factoryID)
	if err != nil {
		respondServiceError(c, logger, err, "list processings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"processings": dto.ToProcessingResponses(processings)})
}

// registerProcessingRoutes registers processing specific routes
func registerProcessingRoutes(group *gin.RouterGroup, processingService portssvc.ProcessingSvcFacade) {
	h := newProcessingHandler(processingService)

	processings := group.Group("/processings")
	{
		processings.POST("", h.createProcessing)
		processings.GET("", h.listProcessings)
	}
}
