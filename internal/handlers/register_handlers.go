package handlers

import (
	portssvc "github.com/fact-data/factstock_backend/internal/core/ports/services"
	"github.com/fact-data/factstock_backend/internal/middleware"
	"github.com/fact-data/factstock_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	// Setup API v1 routes; the identity middleware requires the caller
	// headers on every v1 request
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.IdentityMiddleware())

	// Delegate route registration to specific handlers, passing required services
	RegisterLedgerRoutes(v1, services.Ledger)
	registerBalanceRoutes(v1, services.Balance)
	registerReceptionRoutes(v1, services.Reception)
	registerProcessingRoutes(v1, services.Processing)
	registerShippingRoutes(v1, services.Shipping)
	registerRefDataRoutes(v1, services.RefData)
}
