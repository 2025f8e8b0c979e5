package repositories

import (
	"context"

	"github.com/fact-data/factstock_backend/internal/core/domain"
)

// ReceptionReader defines read operations for reception data.
type ReceptionReader interface {
	// FindReceptionByID retrieves a single reception record.
	FindReceptionByID(ctx context.Context, receptionID string) (*domain.Reception, error)

	// ListReceptions retrieves reception records, optionally for one factory.
	ListReceptions(ctx context.Context, factoryID *string) ([]domain.Reception, error)

	// SummarizeReceptions rolls received quantities up into
	// day/week/month/year buckets per factory and grade.
	SummarizeReceptions(ctx context.Context, period domain.SummaryPeriod, factoryID *string) ([]domain.ReceptionSummaryRow, error)
}

// ReceptionWriter defines write operations for reception data.
type ReceptionWriter interface {
	// SaveReception persists the reception record and upserts its ledger
	// entry within one database transaction. A reception must never exist
	// without its ledger movement; any failure rolls back both rows.
	SaveReception(ctx context.Context, reception domain.Reception, entry domain.LedgerEntry) (*domain.LedgerEntry, error)

	// DeleteReception removes the reception record only. Ledger correction
	// is an explicit manual entry.
	DeleteReception(ctx context.Context, receptionID string) error
}

// ReceptionRepositoryFacade combines all reception repository operations.
type ReceptionRepositoryFacade interface {
	ReceptionReader
	ReceptionWriter
}
