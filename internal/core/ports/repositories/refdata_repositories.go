package repositories

import (
	"context"

	"github.com/fact-data/factstock_backend/internal/core/domain"
)

// RefDataRepository exposes read-only lookups over reference data.
// Recorders use it to reject unknown factory/product ids before writing;
// reference-data management itself lives outside this service.
type RefDataRepository interface {
	// FindFactoryByID retrieves a factory by id.
	FindFactoryByID(ctx context.Context, factoryID string) (*domain.Factory, error)

	// FindProductByID retrieves a product (grade) by id.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves all products.
	ListProducts(ctx context.Context) ([]domain.Product, error)
}
