package pgsql

import (
	"context"
	"errors"

	"github.com/fact-data/factstock_backend/internal/apperrors"
	"github.com/fact-data/factstock_backend/internal/core/domain"
	portsrepo "github.com/fact-data/factstock_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRefDataRepository struct {
	BaseRepository
}

// newPgxRefDataRepository creates a new repository for factory and product
// reference data.
func newPgxRefDataRepository(pool *pgxpool.Pool) portsrepo.RefDataRepository {
	return &PgxRefDataRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxRefDataRepository implements portsrepo.RefDataRepository
var _ portsrepo.RefDataRepository = (*PgxRefDataRepository)(nil)

// FindFactoryByID retrieves a factory by id.
func (r *PgxRefDataRepository) FindFactoryByID(ctx context.Context, factoryID string) (*domain.Factory, error) {
	query := `SELECT factory_id, name FROM factory WHERE factory_id = $1;`

	var f domain.Factory
	err := r.Pool.QueryRow(ctx, query, factoryID).Scan(&f.FactoryID, &f.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find factory by ID "+factoryID, err)
	}
	return &f, nil
}

// FindProductByID retrieves a product (grade) by id.
func (r *PgxRefDataRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT product_id, crop_name, pool FROM product WHERE product_id = $1;`

	var p domain.Product
	err := r.Pool.QueryRow(ctx, query, productID).Scan(&p.ProductID, &p.CropName, &p.Pool)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find product by ID "+productID, err)
	}
	return &p, nil
}

// ListProducts retrieves all products.
func (r *PgxRefDataRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT product_id, crop_name, pool FROM product ORDER BY product_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query products", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ProductID, &p.CropName, &p.Pool); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan product row", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating product rows", err)
	}

	return products, nil
}
