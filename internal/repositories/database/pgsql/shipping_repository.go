package pgsql

import (
	"context"
	"errors"

	"github.com/fact-data/factstock_backend/internal/apperrors"
	"github.com/fact-data/factstock_backend/internal/core/domain"
	portsrepo "github.com/fact-data/factstock_backend/internal/core/ports/repositories"
	"github.com/fact-data/factstock_backend/internal/models"
	"github.com/fact-data/factstock_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxShippingRepository struct {
	BaseRepository
}

// newPgxShippingRepository creates a new repository for shipping order,
// order detail and loading data.
func newPgxShippingRepository(pool *pgxpool.Pool) portsrepo.ShippingRepositoryFacade {
	return &PgxShippingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxShippingRepository implements portsrepo.ShippingRepositoryFacade
var _ portsrepo.ShippingRepositoryFacade = (*PgxShippingRepository)(nil)

// SaveOrder persists a new shipping order.
func (r *PgxShippingRepository) SaveOrder(ctx context.Context, order domain.ShippingOrder) error {
	m := mapping.ToModelShippingOrder(order)
	query := `
		INSERT INTO shipping_order (
			contract_no, order_date, buyer, period, destination,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ContractNo,
		m.OrderDate,
		m.Buyer,
		m.Period,
		m.Destination,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert shipping order "+m.ContractNo, err)
	}
	return nil
}

// SaveOrderDetail persists a new detail line for a contract.
func (r *PgxShippingRepository) SaveOrderDetail(ctx context.Context, detail domain.OrderDetail) error {
	m := mapping.ToModelOrderDetail(detail)
	query := `
		INSERT INTO order_detail (
			detail_id, contract_no, class_name, grade_id, packing, quantity,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DetailID,
		m.ContractNo,
		m.ClassName,
		m.GradeID,
		m.Packing,
		m.Quantity,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.ErrReferenceNotFound
		}
		return apperrors.NewAppError(500, "failed to insert order detail for contract "+m.ContractNo, err)
	}
	return nil
}

const shippingOrderColumns = `
	contract_no, order_date, buyer, period, destination,
	created_at, created_by, last_updated_at, last_updated_by`

func scanShippingOrder(row pgx.Row) (models.ShippingOrder, error) {
	var m models.ShippingOrder
	err := row.Scan(
		&m.ContractNo,
		&m.OrderDate,
		&m.Buyer,
		&m.Period,
		&m.Destination,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindOrderByContract retrieves a shipping order by contract number.
func (r *PgxShippingRepository) FindOrderByContract(ctx context.Context, contractNo string) (*domain.ShippingOrder, error) {
	query := `SELECT` + shippingOrderColumns + ` FROM shipping_order WHERE contract_no = $1;`

	m, err := scanShippingOrder(r.Pool.QueryRow(ctx, query, contractNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find shipping order "+contractNo, err)
	}

	d := mapping.ToDomainShippingOrder(m)
	return &d, nil
}

// ListOrders retrieves all shipping orders, most recent first.
func (r *PgxShippingRepository) ListOrders(ctx context.Context) ([]domain.ShippingOrder, error) {
	query := `SELECT` + shippingOrderColumns + ` FROM shipping_order ORDER BY order_date DESC, contract_no;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query shipping orders", err)
	}
	defer rows.Close()

	orders := []domain.ShippingOrder{}
	for rows.Next() {
		m, scanErr := scanShippingOrder(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan shipping order row", scanErr)
		}
		orders = append(orders, mapping.ToDomainShippingOrder(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating shipping order rows", err)
	}

	return orders, nil
}

// ListOrderDetails retrieves the detail lines of a contract.
func (r *PgxShippingRepository) ListOrderDetails(ctx context.Context, contractNo string) ([]domain.OrderDetail, error) {
	query := `
		SELECT detail_id, contract_no, class_name, grade_id, packing, quantity,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM order_detail
		WHERE contract_no = $1
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, contractNo)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query order details for contract "+contractNo, err)
	}
	defer rows.Close()

	details := []domain.OrderDetail{}
	for rows.Next() {
		var m models.OrderDetail
		if err := rows.Scan(
			&m.DetailID,
			&m.ContractNo,
			&m.ClassName,
			&m.GradeID,
			&m.Packing,
			&m.Quantity,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan order detail row for contract "+contractNo, err)
		}
		details = append(details, mapping.ToDomainOrderDetail(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating order detail rows for contract "+contractNo, err)
	}

	return details, nil
}

// OrderedQuantity sums the detail quantities of a contract. The second
// return value reports whether any detail rows exist; a contract without
// details has an undefined ordered quantity, which is distinct from zero.
func (r *PgxShippingRepository) OrderedQuantity(ctx context.Context, contractNo string) (decimal.Decimal, bool, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0), COUNT(*)
		FROM order_detail
		WHERE contract_no = $1;
	`
	var total decimal.Decimal
	var count int64
	if err := r.Pool.QueryRow(ctx, query, contractNo).Scan(&total, &count); err != nil {
		return decimal.Zero, false, apperrors.NewAppError(500, "failed to sum ordered quantity for contract "+contractNo, err)
	}
	return total, count > 0, nil
}

// SaveLoading persists a new loading record.
func (r *PgxShippingRepository) SaveLoading(ctx context.Context, loading domain.Loading) error {
	m := mapping.ToModelLoading(loading)
	query := `
		INSERT INTO loading (
			loading_id, contract_no, factory_id, loading_date, depart_date,
			vessel, container_no, seal_no, tally_no, quantity,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.LoadingID,
		m.ContractNo,
		m.FactoryID,
		m.LoadingDate,
		m.DepartDate,
		m.Vessel,
		m.ContainerNo,
		m.SealNo,
		m.TallyNo,
		m.Quantity,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.ErrReferenceNotFound
		}
		return apperrors.NewAppError(500, "failed to insert loading for contract "+m.ContractNo, err)
	}
	return nil
}

// ListLoadings retrieves loading records, optionally for one contract, most
// recent first.
func (r *PgxShippingRepository) ListLoadings(ctx context.Context, contractNo *string) ([]domain.Loading, error) {
	query := `
		SELECT loading_id, contract_no, factory_id, loading_date, depart_date,
		       vessel, container_no, seal_no, tally_no, quantity,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM loading
	`
	args := []interface{}{}
	if contractNo != nil {
		query += ` WHERE contract_no = $1`
		args = append(args, *contractNo)
	}
	query += ` ORDER BY loading_date DESC, created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query loadings", err)
	}
	defer rows.Close()

	loadings := []models.Loading{}
	for rows.Next() {
		var m models.Loading
		if err := rows.Scan(
			&m.LoadingID,
			&m.ContractNo,
			&m.FactoryID,
			&m.LoadingDate,
			&m.DepartDate,
			&m.Vessel,
			&m.ContainerNo,
			&m.SealNo,
			&m.TallyNo,
			&m.Quantity,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan loading row", err)
		}
		loadings = append(loadings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating loading rows", err)
	}

	return mapping.ToDomainLoadingSlice(loadings), nil
}

// LoadedQuantity sums the loaded quantities of a contract.
func (r *PgxShippingRepository) LoadedQuantity(ctx context.Context, contractNo string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(quantity), 0) FROM loading WHERE contract_no = $1;`

	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, contractNo).Scan(&total); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum loaded quantity for contract "+contractNo, err)
	}
	return total, nil
}
