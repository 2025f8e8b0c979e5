package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fact-data/factstock_backend/internal/apperrors"
	"github.com/fact-data/factstock_backend/internal/core/domain"
	portssvc "github.com/fact-data/factstock_backend/internal/core/ports/services"
	"github.com/fact-data/factstock_backend/internal/core/services"
)

type BalanceServiceTestSuite struct {
	suite.Suite
	mockBalanceRepo *MockBalanceRepository
	service         portssvc.BalanceSvcFacade
	ctx             context.Context
}

func (suite *BalanceServiceTestSuite) SetupTest() {
	suite.mockBalanceRepo = new(MockBalanceRepository)
	suite.service = services.NewBalanceService(suite.mockBalanceRepo)
	suite.ctx = context.Background()
}

func (suite *BalanceServiceTestSuite) TestBalances_FactoryFilterPassedThrough() {
	factoryID := "factory-1"
	expected := []domain.StockBalance{
		{FactoryID: factoryID, ProductID: "1", StockPool: domain.Unprocessed, NetQuantity: decimal.NewFromInt(1200)},
	}
	suite.mockBalanceRepo.On("NetBalances", suite.ctx, &factoryID).Return(expected, nil).Once()

	balances, err := suite.service.Balances(suite.ctx, &factoryID)

	suite.Require().NoError(err)
	suite.Equal(expected, balances)
	suite.mockBalanceRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestNegativeBalances_FiltersPositives() {
	all := []domain.StockBalance{
		{FactoryID: "factory-1", ProductID: "1", StockPool: domain.Unprocessed, NetQuantity: decimal.NewFromInt(1200)},
		{FactoryID: "factory-1", ProductID: "2", StockPool: domain.Unprocessed, NetQuantity: decimal.NewFromInt(-75)},
		{FactoryID: "factory-2", ProductID: "5", StockPool: domain.Processed, NetQuantity: decimal.Zero},
	}
	suite.mockBalanceRepo.On("NetBalances", suite.ctx, (*string)(nil)).Return(all, nil).Once()

	negatives, err := suite.service.NegativeBalances(suite.ctx)

	suite.Require().NoError(err)
	suite.Require().Len(negatives, 1)
	suite.Equal("2", negatives[0].ProductID)
	suite.True(negatives[0].NetQuantity.Equal(decimal.NewFromInt(-75)))
	suite.mockBalanceRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestNegativeBalances_EmptyWhenAllPositive() {
	all := []domain.StockBalance{
		{FactoryID: "factory-1", ProductID: "1", StockPool: domain.Unprocessed, NetQuantity: decimal.NewFromInt(10)},
	}
	suite.mockBalanceRepo.On("NetBalances", suite.ctx, (*string)(nil)).Return(all, nil).Once()

	negatives, err := suite.service.NegativeBalances(suite.ctx)

	suite.Require().NoError(err)
	suite.Empty(negatives)
}

func (suite *BalanceServiceTestSuite) TestSummaryByStockPool_Success() {
	expected := domain.PoolSummary{
		"Latex":    decimal.NewFromInt(1200),
		"Cuplumps": decimal.NewFromInt(800),
	}
	suite.mockBalanceRepo.On("SummaryByStockPool", suite.ctx, domain.Unprocessed).Return(expected, nil).Once()

	summary, err := suite.service.SummaryByStockPool(suite.ctx, domain.Unprocessed)

	suite.Require().NoError(err)
	suite.Equal(expected, summary)
	suite.mockBalanceRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestSummaryByStockPool_UnknownPool() {
	summary, err := suite.service.SummaryByStockPool(suite.ctx, domain.StockPool("FROZEN"))

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBalanceRepo.AssertNotCalled(suite.T(), "SummaryByStockPool", mock.Anything, mock.Anything)
}

func (suite *BalanceServiceTestSuite) TestBalances_RepoError() {
	repoErr := errors.New("connection refused")
	suite.mockBalanceRepo.On("NetBalances", suite.ctx, (*string)(nil)).Return(nil, repoErr).Once()

	balances, err := suite.service.Balances(suite.ctx, nil)

	suite.Require().Error(err)
	suite.Nil(balances)
	suite.Equal(repoErr, err)
}

func TestBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}
