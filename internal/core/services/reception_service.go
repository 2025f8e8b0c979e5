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

// receptionService records crop deliveries and their ledger movements.
type receptionService struct {
	receptionRepo portsrepo.ReceptionRepositoryFacade
	refDataRepo   portsrepo.RefDataRepository
}

// NewReceptionService creates a new ReceptionService.
func NewReceptionService(receptionRepo portsrepo.ReceptionRepositoryFacade, refDataRepo portsrepo.RefDataRepository) portssvc.ReceptionSvcFacade {
	return &receptionService{
		receptionRepo: receptionRepo,
		refDataRepo:   refDataRepo,
	}
}

// Ensure receptionService implements the portssvc.ReceptionSvcFacade interface
var _ portssvc.ReceptionSvcFacade = (*receptionService)(nil)

// RecordReception validates and records a crop delivery together with its
// ledger movement, atomically. Same-day deliveries of the same grade merge
// into one ledger row; the reception record itself is always a new row.
func (s *receptionService) RecordReception(ctx context.Context, actor domain.Actor, req dto.CreateReceptionRequest) (*domain.Reception, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor.FactoryID == "" {
		return nil, fmt.Errorf("%w: actor has no factory scope", apperrors.ErrValidation)
	}
	if req.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}

	if _, err := s.refDataRepo.FindFactoryByID(ctx, actor.FactoryID); err != nil {
		return nil, fmt.Errorf("%w: factory %s", apperrors.ErrReferenceNotFound, actor.FactoryID)
	}
	grade, err := s.refDataRepo.FindProductByID(ctx, req.GradeID)
	if err != nil {
		return nil, fmt.Errorf("%w: product %s", apperrors.ErrReferenceNotFound, req.GradeID)
	}
	if grade.Pool != domain.Unprocessed {
		return nil, fmt.Errorf("%w: grade %s is not a raw-crop grade", apperrors.ErrValidation, req.GradeID)
	}

	now := time.Now().UTC()
	operationDate := domain.NormalizeDate(req.OperationDate)
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actor.UserID,
		LastUpdatedAt: now,
		LastUpdatedBy: actor.UserID,
	}

	reception := domain.Reception{
		ReceptionID:   uuid.NewString(),
		OperationDate: operationDate,
		FactoryID:     actor.FactoryID,
		GradeID:       req.GradeID,
		SupplyUnitID:  req.SupplyUnitID,
		Quantity:      req.Quantity,
		AuditFields:   audit,
	}

	entry := domain.LedgerEntry{
		EntryID:         uuid.NewString(),
		TransactionDate: operationDate,
		FactoryID:       actor.FactoryID,
		ProductID:       req.GradeID,
		StockPool:       domain.Unprocessed,
		Direction:       domain.In,
		Source:          domain.SourceReception,
		Quantity:        req.Quantity,
		Description:     domain.EntryDescription(domain.ReceptionDescriptionPrefix(operationDate), req.Quantity),
		AuditFields:     audit,
	}

	storedEntry, err := s.receptionRepo.SaveReception(ctx, reception, entry)
	if err != nil {
		logger.Error("Failed to record reception",
			slog.String("factory_id", actor.FactoryID),
			slog.String("grade_id", req.GradeID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	logger.Info("Reception recorded",
		slog.String("reception_id", reception.ReceptionID),
		slog.String("entry_id", storedEntry.EntryID),
		slog.String("merged_total", storedEntry.Quantity.String()),
	)
	return &reception, nil
}

// ListReceptions retrieves reception records, optionally per factory.
func (s *receptionService) ListReceptions(ctx context.Context, factoryID *string) ([]domain.Reception, error) {
	receptions, err := s.receptionRepo.ListReceptions(ctx, factoryID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list receptions", slog.String("error", err.Error()))
		return nil, err
	}
	return receptions, nil
}

// SummarizeReceptions rolls receptions up by period, factory and grade.
func (s *receptionService) SummarizeReceptions(ctx context.Context, period domain.SummaryPeriod, factoryID *string) ([]domain.ReceptionSummaryRow, error) {
	if !period.Valid() {
		return nil, fmt.Errorf("%w: unsupported summary period %q", apperrors.ErrValidation, period)
	}

	rows, err := s.receptionRepo.SummarizeReceptions(ctx, period, factoryID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to summarize receptions", slog.String("period", string(period)), slog.String("error", err.Error()))
		return nil, err
	}
	return rows, nil
}

// DeleteReception removes a reception record. The ledger entry it fed stays
// untouched; stock corrections go through manual entries.
func (s *receptionService) DeleteReception(ctx context.Context, actor domain.Actor, receptionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.receptionRepo.DeleteReception(ctx, receptionID); err != nil {
		logger.Error("Failed to delete reception", slog.String("reception_id", receptionID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Reception deleted", slog.String("reception_id", receptionID), slog.String("deleted_by", actor.UserID))
	return nil
}
