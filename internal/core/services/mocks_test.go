package services_test

import (
	"context"

	"github.com/fact-data/factstock_backend/internal/core/domain"
	portsrepo "github.com/fact-data/factstock_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) ListEntries(ctx context.Context, filter portsrepo.LedgerEntryFilter, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.LedgerEntry), returnedNextToken, args.Error(2)
}

func (m *MockLedgerRepository) UpsertEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) UpsertEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, tx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) UpdateEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

// --- Mock BalanceRepository ---
type MockBalanceRepository struct {
	mock.Mock
}

var _ portsrepo.BalanceRepository = (*MockBalanceRepository)(nil)

func (m *MockBalanceRepository) NetBalances(ctx context.Context, factoryID *string) ([]domain.StockBalance, error) {
	args := m.Called(ctx, factoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockBalance), args.Error(1)
}

func (m *MockBalanceRepository) SummaryByStockPool(ctx context.Context, pool domain.StockPool) (domain.PoolSummary, error) {
	args := m.Called(ctx, pool)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.PoolSummary), args.Error(1)
}

// --- Mock ReceptionRepository ---
type MockReceptionRepository struct {
	mock.Mock
}

var _ portsrepo.ReceptionRepositoryFacade = (*MockReceptionRepository)(nil)

func (m *MockReceptionRepository) FindReceptionByID(ctx context.Context, receptionID string) (*domain.Reception, error) {
	args := m.Called(ctx, receptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reception), args.Error(1)
}

func (m *MockReceptionRepository) ListReceptions(ctx context.Context, factoryID *string) ([]domain.Reception, error) {
	args := m.Called(ctx, factoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reception), args.Error(1)
}

func (m *MockReceptionRepository) SummarizeReceptions(ctx context.Context, period domain.SummaryPeriod, factoryID *string) ([]domain.ReceptionSummaryRow, error) {
	args := m.Called(ctx, period, factoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReceptionSummaryRow), args.Error(1)
}

func (m *MockReceptionRepository) SaveReception(ctx context.Context, reception domain.Reception, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, reception, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockReceptionRepository) DeleteReception(ctx context.Context, receptionID string) error {
	args := m.Called(ctx, receptionID)
	return args.Error(0)
}

// --- Mock ProcessingRepository ---
type MockProcessingRepository struct {
	mock.Mock
}

var _ portsrepo.ProcessingRepositoryFacade = (*MockProcessingRepository)(nil)

func (m *MockProcessingRepository) FindProcessingByID(ctx context.Context, processingID string) (*domain.Processing, error) {
	args := m.Called(ctx, processingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Processing), args.Error(1)
}

func (m *MockProcessingRepository) ListProcessings(ctx context.Context, factoryID *string) ([]domain.Processing, error) {
	args := m.Called(ctx, factoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Processing), args.Error(1)
}

func (m *MockProcessingRepository) SaveProcessing(ctx context.Context, processing domain.Processing, debit domain.LedgerEntry, credit domain.LedgerEntry) error {
	args := m.Called(ctx, processing, debit, credit)
	return args.Error(0)
}

// --- Mock ShippingRepository ---
type MockShippingRepository struct {
	mock.Mock
}

var _ portsrepo.ShippingRepositoryFacade = (*MockShippingRepository)(nil)

func (m *MockShippingRepository) FindOrderByContract(ctx context.Context, contractNo string) (*domain.ShippingOrder, error) {
	args := m.Called(ctx, contractNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShippingOrder), args.Error(1)
}

func (m *MockShippingRepository) ListOrders(ctx context.Context) ([]domain.ShippingOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShippingOrder), args.Error(1)
}

func (m *MockShippingRepository) ListOrderDetails(ctx context.Context, contractNo string) ([]domain.OrderDetail, error) {
	args := m.Called(ctx, contractNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderDetail), args.Error(1)
}

func (m *MockShippingRepository) OrderedQuantity(ctx context.Context, contractNo string) (decimal.Decimal, bool, error) {
	args := m.Called(ctx, contractNo)
	return args.Get(0).(decimal.Decimal), args.Bool(1), args.Error(2)
}

func (m *MockShippingRepository) SaveOrder(ctx context.Context, order domain.ShippingOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockShippingRepository) SaveOrderDetail(ctx context.Context, detail domain.OrderDetail) error {
	args := m.Called(ctx, detail)
	return args.Error(0)
}

func (m *MockShippingRepository) ListLoadings(ctx context.Context, contractNo *string) ([]domain.Loading, error) {
	args := m.Called(ctx, contractNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loading), args.Error(1)
}

func (m *MockShippingRepository) LoadedQuantity(ctx context.Context, contractNo string) (decimal.Decimal, error) {
	args := m.Called(ctx, contractNo)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockShippingRepository) SaveLoading(ctx context.Context, loading domain.Loading) error {
	args := m.Called(ctx, loading)
	return args.Error(0)
}

// --- Mock RefDataRepository ---
type MockRefDataRepository struct {
	mock.Mock
}

var _ portsrepo.RefDataRepository = (*MockRefDataRepository)(nil)

func (m *MockRefDataRepository) FindFactoryByID(ctx context.Context, factoryID string) (*domain.Factory, error) {
	args := m.Called(ctx, factoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Factory), args.Error(1)
}

func (m *MockRefDataRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockRefDataRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}
