package mapping

import (
	"github.com/fact-data/factstock_backend/internal/core/domain"
	"github.com/fact-data/factstock_backend/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:         d.EntryID,
		TransactionDate: domain.NormalizeDate(d.TransactionDate),
		FactoryID:       d.FactoryID,
		ProductID:       d.ProductID,
		StockPool:       models.StockPool(d.StockPool),
		Direction:       models.Direction(d.Direction),
		Source:          models.EntrySource(d.Source),
		Quantity:        d.Quantity,
		Description:     d.Description,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:         m.EntryID,
		TransactionDate: m.TransactionDate,
		FactoryID:       m.FactoryID,
		ProductID:       m.ProductID,
		StockPool:       domain.StockPool(m.StockPool),
		Direction:       domain.Direction(m.Direction),
		Source:          domain.EntrySource(m.Source),
		Quantity:        m.Quantity,
		Description:     m.Description,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLedgerEntrySlice converts a slice of model entries to domain entries
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}
