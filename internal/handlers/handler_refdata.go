package handlers

import (
	"net/http"

	portssvc "github.com/fact-data/factstock_backend/internal/core/ports/services"
	"github.com/fact-data/factstock_backend/internal/dto"
	"github.com/fact-data/factstock_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// refDataHandler handles HTTP requests for reference-data lookups.
type refDataHandler struct {
	refDataService portssvc.RefDataSvcFacade
}

// newRefDataHandler creates a new refDataHandler.
func newRefDataHandler(refDataService portssvc.RefDataSvcFacade) *refDataHandler {
	return &refDataHandler{
		refDataService: refDataService,
	}
}

func (h *refDataHandler) listGrades(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	grades, err := h.refDataService.ListGrades(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "list grades")
		return
	}

	c.JSON(http.StatusOK, gin.H{"grades": dto.ToGradeResponses(grades)})
}

// registerRefDataRoutes registers reference-data specific routes
func registerRefDataRoutes(group *gin.RouterGroup, refDataService portssvc.RefDataSvcFacade) {
	h := newRefDataHandler(refDataService)

	group.GET("/grades", h.listGrades)
}
