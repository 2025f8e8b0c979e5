package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fact-data/factstock_backend/internal/apperrors"
	"github.com/fact-data/factstock_backend/internal/core/domain"
	portsrepo "github.com/fact-data/factstock_backend/internal/core/ports/repositories"
	portssvc "github.com/fact-data/factstock_backend/internal/core/ports/services"
	"github.com/fact-data/factstock_backend/internal/dto"
	"github.com/fact-data/factstock_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// ledgerService provides manual stock-transaction operations over the
// ledger entry store.
type ledgerService struct {
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	refDataRepo portsrepo.RefDataRepository
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, refDataRepo portsrepo.RefDataRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo:  ledgerRepo,
		refDataRepo: refDataRepo,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// validateReferences rejects unknown factory/product ids before any write
// touches the store.
func (s *ledgerService) validateReferences(ctx context.Context, factoryID, productID string) (*domain.Product, error) {
	if _, err := s.refDataRepo.FindFactoryByID(ctx, factoryID); err != nil {
		return nil, fmt.Errorf("%w: factory %s", apperrors.ErrReferenceNotFound, factoryID)
	}
	product, err := s.refDataRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("%w: product %s", apperrors.ErrReferenceNotFound, productID)
	}
	return product, nil
}

// RecordManualEntry upserts a MANUAL ledger entry for the actor's factory,
// merging additively when the natural key already holds a row.
func (s *ledgerService) RecordManualEntry(ctx context.Context, actor domain.Actor, req dto.CreateManualEntryRequest) (*domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor.FactoryID == "" {
		return nil, fmt.Errorf("%w: actor has no factory scope", apperrors.ErrValidation)
	}
	if req.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}

	if _, err := s.validateReferences(ctx, actor.FactoryID, req.ProductID); err != nil {
		logger.Warn("Reference check failed for manual entry", slog.String("factory_id", actor.FactoryID), slog.String("product_id", req.ProductID), slog.String("error", err.Error()))
		return nil, err
	}

	now := time.Now().UTC()
	entryDate := domain.NormalizeDate(req.TransactionDate)

	description := req.Description
	if description == "" {
		description = domain.EntryDescription(domain.ManualDescriptionPrefix(entryDate), req.Quantity)
	}

	entry := domain.LedgerEntry{
		EntryID:         uuid.NewString(),
		TransactionDate: entryDate,
		FactoryID:       actor.FactoryID,
		ProductID:       req.ProductID,
		StockPool:       domain.StockPool(req.StockPool),
		Direction:       domain.Direction(req.Direction),
		Source:          domain.SourceManual,
		Quantity:        req.Quantity,
		Description:     description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	stored, err := s.ledgerRepo.UpsertEntry(ctx, entry)
	if err != nil {
		logger.Error("Failed to upsert manual ledger entry", slog.String("factory_id", actor.FactoryID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Manual ledger entry recorded",
		slog.String("entry_id", stored.EntryID),
		slog.String("factory_id", stored.FactoryID),
		slog.String("quantity", stored.Quantity.String()),
	)
	return stored, nil
}

// ListEntries retrieves a filtered, keyset-paginated ledger listing.
func (s *ledgerService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	filter := portsrepo.LedgerEntryFilter{
		FactoryID: params.FactoryID,
		From:      params.From,
		To:        params.To,
	}

	entries, nextToken, err := s.ledgerRepo.ListEntries(ctx, filter, params.Limit, params.NextToken)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list ledger entries", slog.String("error", err.Error()))
		return nil, err
	}

	return &dto.ListEntriesResponse{
		Entries:   dto.ToLedgerEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}

// UpdateEntry rewrites a manual ledger row in place. Only MANUAL entries may
// be corrected this way; reception and processing entries are owned by their
// recorders.
func (s *ledgerService) UpdateEntry(ctx context.Context, actor domain.Actor, entryID string, req dto.UpdateManualEntryRequest) (*domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.ledgerRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if existing.Source != domain.SourceManual {
		return nil, fmt.Errorf("%w: only manual entries can be updated, entry %s has source %s", apperrors.ErrValidation, entryID, existing.Source)
	}

	updated := *existing
	if req.TransactionDate != nil {
		updated.TransactionDate = domain.NormalizeDate(*req.TransactionDate)
	}
	if req.Quantity != nil {
		if req.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
		}
		updated.Quantity = *req.Quantity
	}
	if req.Description != nil {
		updated.Description = *req.Description
	} else if req.Quantity != nil || req.TransactionDate != nil {
		updated.Description = domain.EntryDescription(domain.ManualDescriptionPrefix(updated.TransactionDate), updated.Quantity)
	}
	updated.LastUpdatedAt = time.Now().UTC()
	updated.LastUpdatedBy = actor.UserID

	stored, err := s.ledgerRepo.UpdateEntry(ctx, updated)
	if err != nil {
		logger.Error("Failed to update ledger entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Ledger entry updated", slog.String("entry_id", entryID), slog.String("updated_by", actor.UserID))
	return stored, nil
}

// DeleteEntry removes a manual ledger row.
func (s *ledgerService) DeleteEntry(ctx context.Context, actor domain.Actor, entryID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.ledgerRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return err
	}
	if existing.Source != domain.SourceManual {
		return fmt.Errorf("%w: only manual entries can be deleted, entry %s has source %s", apperrors.ErrValidation, entryID, existing.Source)
	}

	if err := s.ledgerRepo.DeleteEntry(ctx, entryID); err != nil {
		logger.Error("Failed to delete ledger entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Ledger entry deleted", slog.String("entry_id", entryID), slog.String("deleted_by", actor.UserID))
	return nil
}
