package repositories

import (
	"context"

	"github.com/fact-data/factstock_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ShippingOrderReader defines read operations for contracts and details.
type ShippingOrderReader interface {
	// FindOrderByContract retrieves a shipping order by contract number.
	FindOrderByContract(ctx context.Context, contractNo string) (*domain.ShippingOrder, error)

	// ListOrders retrieves all shipping orders.
	ListOrders(ctx context.Context) ([]domain.ShippingOrder, error)

	// ListOrderDetails retrieves the detail lines of a contract.
	ListOrderDetails(ctx context.Context, contractNo string) ([]domain.OrderDetail, error)

	// OrderedQuantity sums the detail quantities of a contract. The second
	// return value reports whether any detail rows exist; without them the
	// ordered quantity is undefined, which is distinct from zero.
	OrderedQuantity(ctx context.Context, contractNo string) (decimal.Decimal, bool, error)
}

// ShippingOrderWriter defines write operations for contracts and details.
type ShippingOrderWriter interface {
	// SaveOrder persists a new shipping order.
	SaveOrder(ctx context.Context, order domain.ShippingOrder) error

	// SaveOrderDetail persists a new detail line for a contract.
	SaveOrderDetail(ctx context.Context, detail domain.OrderDetail) error
}

// LoadingReader defines read operations for loading records.
type LoadingReader interface {
	// ListLoadings retrieves loading records, optionally for one contract.
	ListLoadings(ctx context.Context, contractNo *string) ([]domain.Loading, error)

	// LoadedQuantity sums the loaded quantities of a contract.
	LoadedQuantity(ctx context.Context, contractNo string) (decimal.Decimal, error)
}

// LoadingWriter defines write operations for loading records.
type LoadingWriter interface {
	// SaveLoading persists a new loading record.
	SaveLoading(ctx context.Context, loading domain.Loading) error
}

// ShippingRepositoryFacade combines all shipping repository operations.
type ShippingRepositoryFacade interface {
	ShippingOrderReader
	ShippingOrderWriter
	LoadingReader
	LoadingWriter
}
