package handlers

import (
	"net/http"
	"strings"

	"github.com/fact-data/factstock_backend/internal/core/domain"
	portssvc "github.com/fact-data/factstock_backend/internal/core/ports/services"
	"github.com/fact-data/factstock_backend/internal/dto"
	"github.com/fact-data/factstock_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// balanceHandler handles HTTP requests for derived stock balances.
type balanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

// newBalanceHandler creates a new balanceHandler.
func newBalanceHandler(balanceService portssvc.BalanceSvcFacade) *balanceHandler {
	return &balanceHandler{
		balanceService: balanceService,
	}
}

func (h *balanceHandler) listBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var factoryID *string
	if v := c.Query("factoryID"); v != "" {
		factoryID = &v
	}

	balances, err := h.balanceService.Balances(c.Request.Context(), factoryID)
	if err != nil {
		respondServiceError(c, logger, err, "compute balances")
		return
	}

	c.JSON(http.StatusOK, gin.H{"balances": dto.ToStockBalanceResponses(balances)})
}

func (h *balanceHandler) poolSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	pool := domain.StockPool(strings.ToUpper(c.Param("pool")))

	summary, err := h.balanceService.SummaryByStockPool(c.Request.Context(), pool)
	if err != nil {
		respondServiceError(c, logger, err, "compute pool summary")
		return
	}

	c.JSON(http.StatusOK, gin.H{"pool": pool, "totals": summary})
}

func (h *balanceHandler) negativeBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	balances, err := h.balanceService.NegativeBalances(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "scan negative balances")
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": dto.ToStockBalanceResponses(balances)})
}

// registerBalanceRoutes registers balance specific routes
func registerBalanceRoutes(group *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade) {
	h := newBalanceHandler(balanceService)

	balances := group.Group("/balances")
	{
		balances.GET("", h.listBalances)
		balances.GET("/alerts", h.negativeBalances)
		balances.GET("/pools/:pool", h.poolSummary)
	}
}
