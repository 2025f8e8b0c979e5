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

// processingService records processing runs. Each run moves quantity from
// the unprocessed pool (input grade) to the processed pool (output grade)
// in a single atomic write, using a static output-to-input grade map.
type processingService struct {
	processingRepo portsrepo.ProcessingRepositoryFacade
	refDataRepo    portsrepo.RefDataRepository
	gradeMap       domain.GradeMap
}

// NewProcessingService creates a new ProcessingService.
func NewProcessingService(processingRepo portsrepo.ProcessingRepositoryFacade, refDataRepo portsrepo.RefDataRepository, gradeMap domain.GradeMap) portssvc.ProcessingSvcFacade {
	return &processingService{
		processingRepo: processingRepo,
		refDataRepo:    refDataRepo,
		gradeMap:       gradeMap,
	}
}

// Ensure processingService implements the portssvc.ProcessingSvcFacade interface
var _ portssvc.ProcessingSvcFacade = (*processingService)(nil)

// RecordProcessing validates and records a processing run together with its
// two ledger movements, atomically. The unprocessed balance may go negative;
// that usually means receptions are lagging behind and is surfaced by the
// balance alerts rather than blocked here.
func (s *processingService) RecordProcessing(ctx context.Context, actor domain.Actor, req dto.CreateProcessingRequest) (*domain.Processing, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor.FactoryID == "" {
		return nil, fmt.Errorf("%w: actor has no factory scope", apperrors.ErrValidation)
	}
	if req.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}

	inputGradeID, ok := s.gradeMap.InputFor(req.OutputGradeID)
	if !ok {
		logger.Warn("No input grade mapped for output grade", slog.String("output_grade_id", req.OutputGradeID))
		return nil, fmt.Errorf("%w: output grade %s", apperrors.ErrUnmappedGrade, req.OutputGradeID)
	}

	if _, err := s.refDataRepo.FindFactoryByID(ctx, actor.FactoryID); err != nil {
		return nil, fmt.Errorf("%w: factory %s", apperrors.ErrReferenceNotFound, actor.FactoryID)
	}
	outputGrade, err := s.refDataRepo.FindProductByID(ctx, req.OutputGradeID)
	if err != nil {
		return nil, fmt.Errorf("%w: product %s", apperrors.ErrReferenceNotFound, req.OutputGradeID)
	}
	if outputGrade.Pool != domain.Processed {
		return nil, fmt.Errorf("%w: grade %s is not a processed-output grade", apperrors.ErrValidation, req.OutputGradeID)
	}
	inputGrade, err := s.refDataRepo.FindProductByID(ctx, inputGradeID)
	if err != nil {
		return nil, fmt.Errorf("%w: product %s", apperrors.ErrReferenceNotFound, inputGradeID)
	}
	// A grade map entry pointing at a non-raw grade would silently debit the
	// wrong pool; reject it the same way receptions reject processed grades.
	if inputGrade.Pool != domain.Unprocessed {
		return nil, fmt.Errorf("%w: mapped input grade %s is not a raw-crop grade", apperrors.ErrValidation, inputGradeID)
	}

	now := time.Now().UTC()
	operationDate := domain.NormalizeDate(req.OperationDate)
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actor.UserID,
		LastUpdatedAt: now,
		LastUpdatedBy: actor.UserID,
	}

	processing := domain.Processing{
		ProcessingID:  uuid.NewString(),
		OperationDate: operationDate,
		FactoryID:     actor.FactoryID,
		OutputGradeID: req.OutputGradeID,
		Quantity:      req.Quantity,
		AuditFields:   audit,
	}

	// 1:1 mass assumption: the quantity consumed equals the quantity produced
	debit := domain.LedgerEntry{
		EntryID:         uuid.NewString(),
		TransactionDate: operationDate,
		FactoryID:       actor.FactoryID,
		ProductID:       inputGradeID,
		StockPool:       domain.Unprocessed,
		Direction:       domain.Out,
		Source:          domain.SourceProcessing,
		Quantity:        req.Quantity,
		Description:     domain.EntryDescription(domain.ProcessingDebitPrefix(operationDate), req.Quantity),
		AuditFields:     audit,
	}
	credit := domain.LedgerEntry{
		EntryID:         uuid.NewString(),
		TransactionDate: operationDate,
		FactoryID:       actor.FactoryID,
		ProductID:       req.OutputGradeID,
		StockPool:       domain.Processed,
		Direction:       domain.In,
		Source:          domain.SourceProcessing,
		Quantity:        req.Quantity,
		Description:     domain.EntryDescription(domain.ProcessingCreditPrefix(operationDate), req.Quantity),
		AuditFields:     audit,
	}

	if err := s.processingRepo.SaveProcessing(ctx, processing, debit, credit); err != nil {
		logger.Error("Failed to record processing run",
			slog.String("factory_id", actor.FactoryID),
			slog.String("output_grade_id", req.OutputGradeID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	logger.Info("Processing run recorded",
		slog.String("processing_id", processing.ProcessingID),
		slog.String("input_grade_id", inputGradeID),
		slog.String("output_grade_id", req.OutputGradeID),
		slog.String("quantity", req.Quantity.String()),
	)
	return &processing, nil
}

// ListProcessings retrieves processing records, optionally per factory.
func (s *processingService) ListProcessings(ctx context.Context, factoryID *string) ([]domain.Processing, error) {
	processings, err := s.processingRepo.ListProcessings(ctx, factoryID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list processings", slog.String("error", err.Error()))
		return nil, err
	}
	return processings, nil
}
