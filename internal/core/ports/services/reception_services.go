package services

import (
	"context"

	"github.com/fact-data/factstock_backend/internal/core/domain"
	"github.com/fact-data/factstock_backend/internal/dto"
)

// ReceptionSvcFacade exposes crop-reception recording and queries.
type ReceptionSvcFacade interface {
	// RecordReception validates and records a crop delivery together with
	// its ledger movement, atomically.
	RecordReception(ctx context.Context, actor domain.Actor, req dto.CreateReceptionRequest) (*domain.Reception, error)

	// ListReceptions retrieves reception records, optionally per factory.
	ListReceptions(ctx context.Context, factoryID *string) ([]domain.Reception, error)

	// SummarizeReceptions rolls receptions up by period, factory and grade.
	SummarizeReceptions(ctx context.Context, period domain.SummaryPeriod, factoryID *string) ([]domain.ReceptionSummaryRow, error)

	// DeleteReception removes a reception record (not its ledger entry).
	DeleteReception(ctx context.Context, actor domain.Actor, receptionID string) error
}

// ProcessingSvcFacade exposes processing-run recording and queries.
type ProcessingSvcFacade interface {
	// RecordProcessing validates and records a processing run together with
	// its debit and credit ledger movements, atomically.
	RecordProcessing(ctx context.Context, actor domain.Actor, req dto.CreateProcessingRequest) (*domain.Processing, error)

	// ListProcessings retrieves processing records, optionally per factory.
	ListProcessings(ctx context.Context, factoryID *string) ([]domain.Processing, error)
}
