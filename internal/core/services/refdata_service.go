package services

import (
	"context"
	"log/slog"

	"github.com/fact-data/factstock_backend/internal/core/domain"
	portsrepo "github.com/fact-data/factstock_backend/internal/core/ports/repositories"
	portssvc "github.com/fact-data/factstock_backend/internal/core/ports/services"
	"github.com/fact-data/factstock_backend/internal/middleware"
)

// refDataService exposes the grade catalogue to clients so they can resolve
// grade ids to crop names and pools without hardcoding the seed data.
type refDataService struct {
	refDataRepo portsrepo.RefDataRepository
}

// NewRefDataService creates a new RefDataService.
func NewRefDataService(refDataRepo portsrepo.RefDataRepository) portssvc.RefDataSvcFacade {
	return &refDataService{refDataRepo: refDataRepo}
}

// Ensure refDataService implements the portssvc.RefDataSvcFacade interface
var _ portssvc.RefDataSvcFacade = (*refDataService)(nil)

// ListGrades retrieves all crop grades.
func (s *refDataService) ListGrades(ctx context.Context) ([]domain.Product, error) {
	grades, err := s.refDataRepo.ListProducts(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list grades", slog.String("error", err.Error()))
		return nil, err
	}
	return grades, nil
}
