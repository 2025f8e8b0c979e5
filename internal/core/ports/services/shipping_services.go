package services

import (
	"context"

	"github.com/fact-data/factstock_backend/internal/core/domain"
	"github.com/fact-data/factstock_backend/internal/dto"
)

// ShippingSvcFacade exposes contract registration, loading recording and
// contract reconciliation.
type ShippingSvcFacade interface {
	// CreateOrder registers a sales contract.
	CreateOrder(ctx context.Context, actor domain.Actor, req dto.CreateOrderRequest) (*domain.ShippingOrder, error)

	// GetOrder retrieves a contract by number.
	GetOrder(ctx context.Context, contractNo string) (*domain.ShippingOrder, error)

	// ListOrders retrieves all contracts.
	ListOrders(ctx context.Context) ([]domain.ShippingOrder, error)

	// AddOrderDetail appends a detail line to a contract.
	AddOrderDetail(ctx context.Context, actor domain.Actor, contractNo string, req dto.CreateOrderDetailRequest) (*domain.OrderDetail, error)

	// ListOrderDetails retrieves a contract's detail lines.
	ListOrderDetails(ctx context.Context, contractNo string) ([]domain.OrderDetail, error)

	// BalanceForContract reconciles ordered vs loaded quantity. Returns
	// apperrors.ErrNotFound when the contract has no detail lines.
	BalanceForContract(ctx context.Context, contractNo string) (*domain.ContractBalance, error)

	// RecordLoading records a loading after verifying it does not exceed
	// the contract's remaining quantity.
	RecordLoading(ctx context.Context, actor domain.Actor, req dto.CreateLoadingRequest) (*domain.Loading, error)

	// ListLoadings retrieves loadings, optionally for one contract.
	ListLoadings(ctx context.Context, contractNo *string) ([]domain.Loading, error)
}
