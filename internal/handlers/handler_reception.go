package handlers

import (
	"log/slog"
	"net/http"

	"github.com/fact-data/factstock_backend/internal/core/domain"
	portssvc "github.com/fact-data/factstock_backend/internal/core/ports/services"
	"github.com/fact-data/factstock_backend/internal/dto"
	"github.com/fact-data/factstock_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// receptionHandler handles HTTP requests for crop receptions.
type receptionHandler struct {
	receptionService portssvc.ReceptionSvcFacade
}

// newReceptionHandler creates a new receptionHandler.
func newReceptionHandler(receptionService portssvc.ReceptionSvcFacade) *receptionHandler {
	return &receptionHandler{
		receptionService: receptionService,
	}
}

func (h *receptionHandler) createReception(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateReceptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for reception", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reception, err := h.receptionService.RecordReception(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, logger, err, "record reception")
		return
	}

	c.JSON(http.StatusCreated, dto.ToReceptionResponse(reception))
}

func (h *receptionHandler) listReceptions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var factoryID *string
	if v := c.Query("factoryID"); v != "" {
		factoryID = &v
	}

	receptions, err := h.receptionService.ListReceptions(c.Request.Context(), factoryID)
	if err != nil {
		respondServiceError(c, logger, err, "list receptions")
		return
	}

	c.JSON(http.StatusOK, gin.H{"receptions": dto.ToReceptionResponses(receptions)})
}

func (h *receptionHandler) summarizeReceptions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period := domain.SummaryPeriod(c.DefaultQuery("period", string(domain.PeriodDay)))
	var factoryID *string
	if v := c.Query("factoryID"); v != "" {
		factoryID = &v
	}

	rows, err := h.receptionService.SummarizeReceptions(c.Request.Context(), period, factoryID)
	if err != nil {
		respondServiceError(c, logger, err, "summarize receptions")
		return
	}

	c.JSON(http.StatusOK, gin.H{"period": period, "summary": dto.ToReceptionSummaryResponses(rows)})
}

func (h *receptionHandler) deleteReception(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receptionID := c.Param("receptionID")

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.receptionService.DeleteReception(c.Request.Context(), actor, receptionID); err != nil {
		respondServiceError(c, logger, err, "delete reception")
		return
	}

	c.Status(http.StatusNoContent)
}

// registerReceptionRoutes registers reception specific routes
func registerReceptionRoutes(group *gin.RouterGroup, receptionService portssvc.ReceptionSvcFacade) {
	h := newReceptionHandler(receptionService)

	receptions := group.Group("/receptions")
	{
		receptions.POST("", h.createReception)
		receptions.GET("", h.listReceptions)
		receptions.GET("/summary", h.summarizeReceptions)
		receptions.DELETE("/:receptionID", h.deleteReception)
	}
}
