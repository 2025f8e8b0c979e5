package services

import (
	portsrepo "github.com/fact-data/factstock_backend/internal/core/ports/repositories"
	portssvc "github.com/fact-data/factstock_backend/internal/core/ports/services"
	"github.com/fact-data/factstock_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Ledger = NewLedgerService(repos.LedgerRepo, repos.RefDataRepo)
	container.Balance = NewBalanceService(repos.BalanceRepo)
	container.Reception = NewReceptionService(repos.ReceptionRepo, repos.RefDataRepo)
	container.Processing = NewProcessingService(repos.ProcessingRepo, repos.RefDataRepo, cfg.GradeMap)
	container.Shipping = NewShippingService(repos.ShippingRepo, repos.RefDataRepo)
	container.RefData = NewRefDataService(repos.RefDataRepo)

	return container
}
