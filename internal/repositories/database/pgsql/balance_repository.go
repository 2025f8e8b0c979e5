package pgsql

import (
	"context"

	"github.com/fact-data/factstock_backend/internal/apperrors"
	"github.com/fact-data/factstock_backend/internal/core/domain"
	portsrepo "github.com/fact-data/factstock_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxBalanceRepository struct {
	BaseRepository
}

// newPgxBalanceRepository creates a new repository for derived balance reads.
func newPgxBalanceRepository(pool *pgxpool.Pool) portsrepo.BalanceRepository {
	return &PgxBalanceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxBalanceRepository implements portsrepo.BalanceRepository
var _ portsrepo.BalanceRepository = (*PgxBalanceRepository)(nil)

// NetBalances folds the ledger into net stock per (factory, product, pool).
// Balances are computed by summation on every call, never stored.
func (r *PgxBalanceRepository) NetBalances(ctx context.Context, factoryID *string) ([]domain.StockBalance, error) {
	query := `
		SELECT factory_id, product_id, stock_pool,
		       SUM(CASE WHEN direction = 'IN' THEN quantity ELSE -quantity END) AS net_quantity
		FROM ledger_entry
	`
	args := []interface{}{}
	if factoryID != nil {
		query += ` WHERE factory_id = $1`
		args = append(args, *factoryID)
	}
	query += `
		GROUP BY factory_id, product_id, stock_pool
		ORDER BY factory_id, product_id, stock_pool;
	`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query net balances", err)
	}
	defer rows.Close()

	balances := []domain.StockBalance{}
	for rows.Next() {
		var b domain.StockBalance
		if err := rows.Scan(&b.FactoryID, &b.ProductID, &b.StockPool, &b.NetQuantity); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan balance row", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating balance rows", err)
	}

	return balances, nil
}

// SummaryByStockPool pivots one pool's net stock by crop name across all
// factories.
func (r *PgxBalanceRepository) SummaryByStockPool(ctx context.Context, pool domain.StockPool) (domain.PoolSummary, error) {
	query := `
		SELECT p.crop_name,
		       SUM(CASE WHEN l.direction = 'IN' THEN l.quantity ELSE -l.quantity END) AS net_quantity
		FROM ledger_entry l
		JOIN product p ON p.product_id = l.product_id
		WHERE l.stock_pool = $1
		GROUP BY p.crop_name
		ORDER BY p.crop_name;
	`

	rows, err := r.Pool.Query(ctx, query, pool)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query pool summary for "+string(pool), err)
	}
	defer rows.Close()

	summary := domain.PoolSummary{}
	for rows.Next() {
		var cropName string
		var net decimal.Decimal
		if err := rows.Scan(&cropName, &net); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan pool summary row", err)
		}
		summary[cropName] = net
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating pool summary rows", err)
	}

	return summary, nil
}
