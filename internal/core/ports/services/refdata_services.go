package services

import (
	"context"

	"github.com/fact-data/factstock_backend/internal/core/domain"
)

// RefDataSvcFacade exposes read-only reference-data lookups. Management of
// reference data lives outside this service.
type RefDataSvcFacade interface {
	// ListGrades retrieves all crop grades, raw and processed.
	ListGrades(ctx context.Context) ([]domain.Product, error)
}
