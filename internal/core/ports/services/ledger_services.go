package services

import (
	"context"

	"github.com/fact-data/factstock_backend/internal/core/domain"
	"github.com/fact-data/factstock_backend/internal/dto"
)

// LedgerSvcFacade exposes manual stock-transaction operations over the
// ledger entry store. Recorded receptions and processings write their own
// ledger entries through their recorders, never through this facade.
type LedgerSvcFacade interface {
	// RecordManualEntry upserts a MANUAL ledger entry for the actor's
	// factory, merging additively on natural-key collision.
	RecordManualEntry(ctx context.Context, actor domain.Actor, req dto.CreateManualEntryRequest) (*domain.LedgerEntry, error)

	// ListEntries retrieves a filtered, paginated ledger listing.
	ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)

	// UpdateEntry rewrites a manual ledger row in place (no merge).
	UpdateEntry(ctx context.Context, actor domain.Actor, entryID string, req dto.UpdateManualEntryRequest) (*domain.LedgerEntry, error)

	// DeleteEntry removes a manual ledger row.
	DeleteEntry(ctx context.Context, actor domain.Actor, entryID string) error
}

// BalanceSvcFacade exposes the derived stock balances.
type BalanceSvcFacade interface {
	// Balances folds the ledger into net stock per (factory, product, pool).
	Balances(ctx context.Context, factoryID *string) ([]domain.StockBalance, error)

	// SummaryByStockPool pivots one pool's net stock by crop name.
	SummaryByStockPool(ctx context.Context, pool domain.StockPool) (domain.PoolSummary, error)

	// NegativeBalances reports groups whose derived balance is below zero,
	// the observable alert for receptions recorded after their processing.
	NegativeBalances(ctx context.Context) ([]domain.StockBalance, error)
}
