package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fact-data/factstock_backend/internal/apperrors"
	"github.com/fact-data/factstock_backend/internal/core/domain"
	portsrepo "github.com/fact-data/factstock_backend/internal/core/ports/repositories"
	portssvc "github.com/fact-data/factstock_backend/internal/core/ports/services"
	"github.com/fact-data/factstock_backend/internal/middleware"
)

// balanceService exposes the derived stock balances. All numbers come from
// folding the ledger at read time; nothing here writes.
type balanceService struct {
	balanceRepo portsrepo.BalanceRepository
}

// NewBalanceService creates a new BalanceService.
func NewBalanceService(balanceRepo portsrepo.BalanceRepository) portssvc.BalanceSvcFacade {
	return &balanceService{balanceRepo: balanceRepo}
}

// Ensure balanceService implements the portssvc.BalanceSvcFacade interface
var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// Balances folds the ledger into net stock per (factory, product, pool).
func (s *balanceService) Balances(ctx context.Context, factoryID *string) ([]domain.StockBalance, error) {
	balances, err := s.balanceRepo.NetBalances(ctx, factoryID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to compute balances", slog.String("error", err.Error()))
		return nil, err
	}
	return balances, nil
}

// SummaryByStockPool pivots one pool's net stock by crop name.
func (s *balanceService) SummaryByStockPool(ctx context.Context, pool domain.StockPool) (domain.PoolSummary, error) {
	if pool != domain.Unprocessed && pool != domain.Processed {
		return nil, fmt.Errorf("%w: unknown stock pool %q", apperrors.ErrValidation, pool)
	}

	summary, err := s.balanceRepo.SummaryByStockPool(ctx, pool)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to compute pool summary", slog.String("pool", string(pool)), slog.String("error", err.Error()))
		return nil, err
	}
	return summary, nil
}

// NegativeBalances reports groups whose derived balance is below zero. A
// negative unprocessed balance usually means a processing run was keyed in
// before its receptions, so it is surfaced as an alert instead of blocked.
func (s *balanceService) NegativeBalances(ctx context.Context) ([]domain.StockBalance, error) {
	balances, err := s.balanceRepo.NetBalances(ctx, nil)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to compute balances for alert scan", slog.String("error", err.Error()))
		return nil, err
	}

	negatives := []domain.StockBalance{}
	for _, b := range balances {
		if b.Negative() {
			negatives = append(negatives, b)
		}
	}
	return negatives, nil
}
