package services_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/fact-data/factstock_backend/internal/apperrors"
	"github.com/fact-data/factstock_backend/internal/core/domain"
	portsrepo "github.com/fact-data/factstock_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// fakeStockStore is an in-memory stand-in for the SQL store that keeps its
// two load-bearing behaviors: upserts merge additively by natural key (one
// row per key, description recomputed from the new total), and recorder
// writes apply all-or-nothing. Failure flags let tests force a recorder
// write to fail partway and observe that nothing persisted.
type fakeStockStore struct {
	entries     map[domain.EntryKey]domain.LedgerEntry
	receptions  map[string]domain.Reception
	processings map[string]domain.Processing

	failReceptionEntry   bool
	failProcessingCredit bool
}

var _ portsrepo.LedgerRepositoryFacade = (*fakeStockStore)(nil)
var _ portsrepo.ReceptionRepositoryFacade = (*fakeStockStore)(nil)
var _ portsrepo.ProcessingRepositoryFacade = (*fakeStockStore)(nil)

func newFakeStockStore() *fakeStockStore {
	return &fakeStockStore{
		entries:     map[domain.EntryKey]domain.LedgerEntry{},
		receptions:  map[string]domain.Reception{},
		processings: map[string]domain.Processing{},
	}
}

// mergeInto applies one movement to an entry map with the store's merge
// semantics: insert, or on natural-key collision add quantities and refresh
// the description from the merged total.
func mergeInto(entries map[domain.EntryKey]domain.LedgerEntry, entry domain.LedgerEntry) domain.LedgerEntry {
	key := entry.Key()
	if existing, ok := entries[key]; ok {
		existing.Quantity = existing.Quantity.Add(entry.Quantity)
		existing.Description = domain.EntryDescription(existing.DescriptionPrefix(), existing.Quantity)
		existing.LastUpdatedAt = entry.LastUpdatedAt
		existing.LastUpdatedBy = entry.LastUpdatedBy
		entries[key] = existing
		return existing
	}
	entries[key] = entry
	return entry
}

func (s *fakeStockStore) cloneEntries() map[domain.EntryKey]domain.LedgerEntry {
	cloned := make(map[domain.EntryKey]domain.LedgerEntry, len(s.entries))
	for k, v := range s.entries {
		cloned[k] = v
	}
	return cloned
}

// netBalances folds the stored entries into net quantity per
// "factoryID|productID|pool", the same projection the balance queries run.
func (s *fakeStockStore) netBalances() map[string]decimal.Decimal {
	balances := map[string]decimal.Decimal{}
	for _, e := range s.entries {
		key := balanceKey(e.FactoryID, e.ProductID, e.StockPool)
		balances[key] = balances[key].Add(e.SignedQuantity())
	}
	return balances
}

func balanceKey(factoryID, productID string, pool domain.StockPool) string {
	return fmt.Sprintf("%s|%s|%s", factoryID, productID, pool)
}

// --- LedgerRepositoryFacade ---

func (s *fakeStockStore) UpsertEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	merged := mergeInto(s.entries, entry)
	return &merged, nil
}

func (s *fakeStockStore) UpsertEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	return s.UpsertEntry(ctx, entry)
}

func (s *fakeStockStore) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	for _, e := range s.entries {
		if e.EntryID == entryID {
			found := e
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *fakeStockStore) ListEntries(ctx context.Context, filter portsrepo.LedgerEntryFilter, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	results := []domain.LedgerEntry{}
	for _, e := range s.entries {
		if filter.FactoryID != nil && e.FactoryID != *filter.FactoryID {
			continue
		}
		results = append(results, e)
	}
	return results, nil, nil
}

func (s *fakeStockStore) UpdateEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	for key, e := range s.entries {
		if e.EntryID == entry.EntryID {
			delete(s.entries, key)
			s.entries[entry.Key()] = entry
			return &entry, nil
		}
	}
	return nil, apperrors.NewNotFoundError("ledger entry " + entry.EntryID + " not found for update")
}

func (s *fakeStockStore) DeleteEntry(ctx context.Context, entryID string) error {
	for key, e := range s.entries {
		if e.EntryID == entryID {
			delete(s.entries, key)
			return nil
		}
	}
	return apperrors.NewNotFoundError("ledger entry " + entryID + " not found for delete")
}

// --- ReceptionRepositoryFacade ---

func (s *fakeStockStore) SaveReception(ctx context.Context, reception domain.Reception, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	staged := s.cloneEntries()
	if s.failReceptionEntry {
		return nil, apperrors.NewAtomicityError("SaveReception", errors.New("ledger write failed"))
	}
	merged := mergeInto(staged, entry)

	s.entries = staged
	s.receptions[reception.ReceptionID] = reception
	return &merged, nil
}

func (s *fakeStockStore) FindReceptionByID(ctx context.Context, receptionID string) (*domain.Reception, error) {
	r, ok := s.receptions[receptionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &r, nil
}

func (s *fakeStockStore) ListReceptions(ctx context.Context, factoryID *string) ([]domain.Reception, error) {
	results := []domain.Reception{}
	for _, r := range s.receptions {
		if factoryID != nil && r.FactoryID != *factoryID {
			continue
		}
		results = append(results, r)
	}
	return results, nil
}

func (s *fakeStockStore) SummarizeReceptions(ctx context.Context, period domain.SummaryPeriod, factoryID *string) ([]domain.ReceptionSummaryRow, error) {
	return []domain.ReceptionSummaryRow{}, nil
}

func (s *fakeStockStore) DeleteReception(ctx context.Context, receptionID string) error {
	if _, ok := s.receptions[receptionID]; !ok {
		return apperrors.NewNotFoundError("reception " + receptionID + " not found for delete")
	}
	delete(s.receptions, receptionID)
	return nil
}

// --- ProcessingRepositoryFacade ---

func (s *fakeStockStore) SaveProcessing(ctx context.Context, processing domain.Processing, debit domain.LedgerEntry, credit domain.LedgerEntry) error {
	staged := s.cloneEntries()
	mergeInto(staged, debit)
	if s.failProcessingCredit {
		// The debit landed on the staged copy only; dropping it here is the
		// rollback the SQL store gets from its transaction.
		return apperrors.NewAtomicityError("SaveProcessing", errors.New("credit write failed"))
	}
	mergeInto(staged, credit)

	s.entries = staged
	s.processings[processing.ProcessingID] = processing
	return nil
}

func (s *fakeStockStore) FindProcessingByID(ctx context.Context, processingID string) (*domain.Processing, error) {
	p, ok := s.processings[processingID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

func (s *fakeStockStore) ListProcessings(ctx context.Context, factoryID *string) ([]domain.Processing, error) {
	results := []domain.Processing{}
	for _, p := range s.processings {
		if factoryID != nil && p.FactoryID != *factoryID {
			continue
		}
		results = append(results, p)
	}
	return results, nil
}

// --- fakeRefData ---

// fakeRefData serves the seeded grade catalogue to the recorder services.
type fakeRefData struct {
	products map[string]domain.Product
}

var _ portsrepo.RefDataRepository = (*fakeRefData)(nil)

func newFakeRefData() *fakeRefData {
	return &fakeRefData{
		products: map[string]domain.Product{
			"1": {ProductID: "1", CropName: "Latex", Pool: domain.Unprocessed},
			"2": {ProductID: "2", CropName: "Cuplumps", Pool: domain.Unprocessed},
			"3": {ProductID: "3", CropName: "Coagulum", Pool: domain.Unprocessed},
			"4": {ProductID: "4", CropName: "Scrap", Pool: domain.Unprocessed},
			"5": {ProductID: "5", CropName: "RSS", Pool: domain.Processed},
			"6": {ProductID: "6", CropName: "CNR 3L", Pool: domain.Processed},
			"7": {ProductID: "7", CropName: "CNR 10", Pool: domain.Processed},
		},
	}
}

func (f *fakeRefData) FindFactoryByID(ctx context.Context, factoryID string) (*domain.Factory, error) {
	return &domain.Factory{FactoryID: factoryID, Name: "Factory " + factoryID}, nil
}

func (f *fakeRefData) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	p, ok := f.products[productID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

func (f *fakeRefData) ListProducts(ctx context.Context) ([]domain.Product, error) {
	results := make([]domain.Product, 0, len(f.products))
	for _, p := range f.products {
		results = append(results, p)
	}
	return results, nil
}
