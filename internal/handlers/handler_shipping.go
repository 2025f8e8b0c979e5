package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fact-data/factstock_backend/internal/core/ports/services"
	"github.com/fact-data/factstock_backend/internal/dto"
	"github.com/fact-data/factstock_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// shippingHandler handles HTTP requests for contracts, detail lines and
// loadings.
type shippingHandler struct {
	shippingService portssvc.ShippingSvcFacade
}

// newShippingHandler creates a new shippingHandler.
func newShippingHandler(shippingService portssvc.ShippingSvcFacade) *shippingHandler {
	return &shippingHandler{
		shippingService: shippingService,
	}
}

func (h *shippingHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for order", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	order, err := h.shippingService.CreateOrder(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, logger, err, "create order")
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

func (h *shippingHandler) listOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	orders, err := h.shippingService.ListOrders(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "list orders")
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": dto.ToOrderResponses(orders)})
}

func (h *shippingHandler) getOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contractNo := c.Param("contractNo")

	order, err := h.shippingService.GetOrder(c.Request.Context(), contractNo)
	if err != nil {
		respondServiceError(c, logger, err, "get order")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

func (h *shippingHandler) addOrderDetail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contractNo := c.Param("contractNo")

	var req dto.CreateOrderDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for order detail", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	detail, err := h.shippingService.AddOrderDetail(c.Request.Context(), actor, contractNo, req)
	if err != nil {
		respondServiceError(c, logger, err, "add order detail")
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderDetailResponse(detail))
}

func (h *shippingHandler) listOrderDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contractNo := c.Param("contractNo")

	details, err := h.shippingService.ListOrderDetails(c.Request.Context(), contractNo)
	if err != nil {
		respondServiceError(c, logger, err, "list order details")
		return
	}

	c.JSON(http.StatusOK, gin.H{"details": dto.ToOrderDetailResponses(details)})
}

func (h *shippingHandler) contractBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contractNo := c.Param("contractNo")

	balance, err := h.shippingService.BalanceForContract(c.Request.Context(), contractNo)
	if err != nil {
		respondServiceError(c, logger, err, "compute contract balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToContractBalanceResponse(balance))
}

func (h *shippingHandler) createLoading(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateLoadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for loading", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	loading, err := h.shippingService.RecordLoading(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, logger, err, "record loading")
		return
	}

	c.JSON(http.StatusCreated, dto.ToLoadingResponse(loading))
}

func (h *shippingHandler) listLoadings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var contractNo *string
	if v := c.Query("contractNo"); v != "" {
		contractNo = &v
	}

	loadings, err := h.shippingService.ListLoadings(c.Request.Context(), contractNo)
	if err != nil {
		respondServiceError(c, logger, err, "list loadings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"loadings": dto.ToLoadingResponses(loadings)})
}

// registerShippingRoutes registers contract and loading specific routes
func registerShippingRoutes(group *gin.RouterGroup, shippingService portssvc.ShippingSvcFacade) {
	h := newShippingHandler(shippingService)

	orders := group.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("", h.listOrders)
		orders.GET("/:contractNo", h.getOrder)
		orders.POST("/:contractNo/details", h.addOrderDetail)
		orders.GET("/:contractNo/details", h.listOrderDetails)
		orders.GET("/:contractNo/balance", h.contractBalance)
	}

	loadings := group.Group("/loadings")
	{
		loadings.POST("", h.createLoading)
		loadings.GET("", h.listLoadings)
	}
}
