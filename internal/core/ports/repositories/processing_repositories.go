package repositories

import (
	"context"

	"github.com/fact-data/factstock_backend/internal/core/domain"
)

// ProcessingReader defines read operations for processing data.
type ProcessingReader interface {
	// FindProcessingByID retrieves a single processing record.
	FindProcessingByID(ctx context.Context, processingID string) (*domain.Processing, error)

	// ListProcessings retrieves processing records, optionally for one factory.
	ListProcessings(ctx context.Context, factoryID *string) ([]domain.Processing, error)
}

// ProcessingWriter defines write operations for processing data.
type ProcessingWriter interface {
	// SaveProcessing persists the processing record plus its two ledger
	// entries (unprocessed debit, processed credit) in one database
	// transaction. A partial commit would silently create or destroy stock,
	// so any failure rolls back all three rows.
	SaveProcessing(ctx context.Context, processing domain.Processing, debit domain.LedgerEntry, credit domain.LedgerEntry) error
}

// ProcessingRepositoryFacade combines all processing repository operations.
type ProcessingRepositoryFacade interface {
	ProcessingReader
	ProcessingWriter
}
