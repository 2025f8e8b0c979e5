package repositories

import (
	"context"
	"time"

	"github.com/fact-data/factstock_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// LedgerEntryFilter narrows ledger listings. Nil fields mean no filter.
type LedgerEntryFilter struct {
	FactoryID *string
	From      *time.Time
	To        *time.Time
}

// LedgerReader defines read operations over the ledger entry store.
type LedgerReader interface {
	// FindEntryByID retrieves a single ledger entry.
	FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// ListEntries retrieves a keyset-paginated list of ledger entries, most
	// recent transaction date first. Returns the entries and a token for the
	// next page.
	ListEntries(ctx context.Context, filter LedgerEntryFilter, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
}

// LedgerWriter defines write operations on the ledger entry store.
//
// UpsertEntry is the merge point of the whole system: it must execute as a
// single atomic statement (insert, on natural-key conflict add quantities)
// so concurrent submissions for the same key never lose an update.
type LedgerWriter interface {
	// UpsertEntry inserts the entry, or merges it additively into the row
	// holding its natural key. Returns the stored row after the merge.
	UpsertEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error)

	// UpsertEntryInTx is UpsertEntry running on a caller-owned transaction,
	// used by the recorders to tie the ledger write to their domain row.
	UpsertEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) (*domain.LedgerEntry, error)

	// UpdateEntry rewrites a ledger row in place. Manual correction only,
	// no merge semantics.
	UpdateEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error)

	// DeleteEntry removes a ledger row. Manual correction only.
	DeleteEntry(ctx context.Context, entryID string) error
}

// LedgerRepositoryFacade combines all ledger store operations.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}

// BalanceRepository defines the read-only projections derived from the
// ledger. Balances are computed by summation, never stored.
type BalanceRepository interface {
	// NetBalances folds the ledger into net stock per
	// (factory, product, pool), optionally filtered by factory.
	NetBalances(ctx context.Context, factoryID *string) ([]domain.StockBalance, error)

	// SummaryByStockPool pivots one pool's net stock by crop name.
	SummaryByStockPool(ctx context.Context, pool domain.StockPool) (domain.PoolSummary, error)
}
