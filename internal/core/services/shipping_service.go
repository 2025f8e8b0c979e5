package services

import (
	"context"
	"errors"
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

// shippingService manages sales contracts, their detail lines and the
// loadings that consume them. Loadings never touch the stock ledger; they
// reconcile against the contract's ordered quantity.
type shippingService struct {
	shippingRepo portsrepo.ShippingRepositoryFacade
	refDataRepo  portsrepo.RefDataRepository
}

// NewShippingService creates a new ShippingService.
func NewShippingService(shippingRepo portsrepo.ShippingRepositoryFacade, refDataRepo portsrepo.RefDataRepository) portssvc.ShippingSvcFacade {
	return &shippingService{
		shippingRepo: shippingRepo,
		refDataRepo:  refDataRepo,
	}
}

// Ensure shippingService implements the portssvc.ShippingSvcFacade interface
var _ portssvc.ShippingSvcFacade = (*shippingService)(nil)

// CreateOrder registers a sales contract.
func (s *shippingService) CreateOrder(ctx context.Context, actor domain.Actor, req dto.CreateOrderRequest) (*domain.ShippingOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	order := domain.ShippingOrder{
		ContractNo:  req.ContractNo,
		OrderDate:   req.OrderDate,
		Buyer:       req.Buyer,
		Period:      req.Period,
		Destination: req.Destination,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.shippingRepo.SaveOrder(ctx, order); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: contract %s", apperrors.ErrDuplicate, req.ContractNo)
		}
		logger.Error("Failed to create shipping order", slog.String("contract_no", req.ContractNo), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Shipping order created", slog.String("contract_no", order.ContractNo), slog.String("buyer", order.Buyer))
	return &order, nil
}

// GetOrder retrieves a contract by number.
func (s *shippingService) GetOrder(ctx context.Context, contractNo string) (*domain.ShippingOrder, error) {
	return s.shippingRepo.FindOrderByContract(ctx, contractNo)
}

// ListOrders retrieves all contracts.
func (s *shippingService) ListOrders(ctx context.Context) ([]domain.ShippingOrder, error) {
	orders, err := s.shippingRepo.ListOrders(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list shipping orders", slog.String("error", err.Error()))
		return nil, err
	}
	return orders, nil
}

// AddOrderDetail appends a detail line to an existing contract.
func (s *shippingService) AddOrderDetail(ctx context.Context, actor domain.Actor, contractNo string, req dto.CreateOrderDetailRequest) (*domain.OrderDetail, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}
	if _, err := s.shippingRepo.FindOrderByContract(ctx, contractNo); err != nil {
		return nil, err
	}
	if _, err := s.refDataRepo.FindProductByID(ctx, req.GradeID); err != nil {
		return nil, fmt.Errorf("%w: product %s", apperrors.ErrReferenceNotFound, req.GradeID)
	}

	now := time.Now().UTC()
	detail := domain.OrderDetail{
		DetailID:   uuid.NewString(),
		ContractNo: contractNo,
		ClassName:  req.ClassName,
		GradeID:    req.GradeID,
		Packing:    req.Packing,
		Quantity:   req.Quantity,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.shippingRepo.SaveOrderDetail(ctx, detail); err != nil {
		logger.Error("Failed to add order detail", slog.String("contract_no", contractNo), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Order detail added", slog.String("contract_no", contractNo), slog.String("detail_id", detail.DetailID))
	return &detail, nil
}

// ListOrderDetails retrieves a contract's detail lines.
func (s *shippingService) ListOrderDetails(ctx context.Context, contractNo string) ([]domain.OrderDetail, error) {
	return s.shippingRepo.ListOrderDetails(ctx, contractNo)
}

// BalanceForContract reconciles ordered vs loaded quantity. A contract
// without detail lines has no defined ordered quantity, which reports as
// not found rather than a zero balance.
func (s *shippingService) BalanceForContract(ctx context.Context, contractNo string) (*domain.ContractBalance, error) {
	ordered, hasDetails, err := s.shippingRepo.OrderedQuantity(ctx, contractNo)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to sum ordered quantity", slog.String("contract_no", contractNo), slog.String("error", err.Error()))
		return nil, err
	}
	if !hasDetails {
		return nil, fmt.Errorf("%w: contract %s has no detail lines", apperrors.ErrNotFound, contractNo)
	}

	loaded, err := s.shippingRepo.LoadedQuantity(ctx, contractNo)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to sum loaded quantity", slog.String("contract_no", contractNo), slog.String("error", err.Error()))
		return nil, err
	}

	return &domain.ContractBalance{
		ContractNo: contractNo,
		OrderedQty: ordered,
		LoadedQty:  loaded,
		Remaining:  ordered.Sub(loaded),
	}, nil
}

// RecordLoading records a loading after verifying it does not overdraw the
// contract's remaining quantity.
func (s *shippingService) RecordLoading(ctx context.Context, actor domain.Actor, req dto.CreateLoadingRequest) (*domain.Loading, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor.FactoryID == "" {
		return nil, fmt.Errorf("%w: actor has no factory scope", apperrors.ErrValidation)
	}
	if req.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}

	balance, err := s.BalanceForContract(ctx, req.ContractNo)
	if err != nil {
		return nil, err
	}
	if req.Quantity.GreaterThan(balance.Remaining) {
		logger.Warn("Loading rejected, contract overdrawn",
			slog.String("contract_no", req.ContractNo),
			slog.String("requested", req.Quantity.String()),
			slog.String("remaining", balance.Remaining.String()),
		)
		return nil, fmt.Errorf("%w: loading of %s kg exceeds remaining %s kg on contract %s",
			apperrors.ErrValidation, req.Quantity.String(), balance.Remaining.String(), req.ContractNo)
	}

	now := time.Now().UTC()
	loading := domain.Loading{
		LoadingID:   uuid.NewString(),
		ContractNo:  req.ContractNo,
		FactoryID:   actor.FactoryID,
		LoadingDate: domain.NormalizeDate(req.LoadingDate),
		DepartDate:  domain.NormalizeDate(req.DepartDate),
		Vessel:      req.Vessel,
		ContainerNo: req.ContainerNo,
		SealNo:      req.SealNo,
		TallyNo:     req.TallyNo,
		Quantity:    req.Quantity,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.shippingRepo.SaveLoading(ctx, loading); err != nil {
		logger.Error("Failed to record loading", slog.String("contract_no", req.ContractNo), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Loading recorded",
		slog.String("loading_id", loading.LoadingID),
		slog.String("contract_no", loading.ContractNo),
		slog.String("quantity", loading.Quantity.String()),
	)
	return &loading, nil
}

// ListLoadings retrieves loadings, optionally for one contract.
func (s *shippingService) ListLoadings(ctx context.Context, contractNo *string) ([]domain.Loading, error) {
	loadings, err := s.shippingRepo.ListLoadings(ctx, contractNo)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list loadings", slog.String("error", err.Error()))
		return nil, err
	}
	return loadings, nil
}
