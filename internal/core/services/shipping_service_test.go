package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fact-data/factstock_backend/internal/apperrors"
	"github.com/fact-data/factstock_backend/internal/core/domain"
	portssvc "github.com/fact-data/factstock_backend/internal/core/ports/services"
	"github.com/fact-data/factstock_backend/internal/core/services"
	"github.com/fact-data/factstock_backend/internal/dto"
)

type ShippingServiceTestSuite struct {
	suite.Suite
	mockShippingRepo *MockShippingRepository
	mockRefDataRepo  *MockRefDataRepository
	service          portssvc.ShippingSvcFacade
	ctx              context.Context
	actor            domain.Actor
}

func (suite *ShippingServiceTestSuite) SetupTest() {
	suite.mockShippingRepo = new(MockShippingRepository)
	suite.mockRefDataRepo = new(MockRefDataRepository)
	suite.service = services.NewShippingService(suite.mockShippingRepo, suite.mockRefDataRepo)
	suite.ctx = context.Background()
	suite.actor = domain.Actor{UserID: "user-1", FactoryID: "factory-1"}
}

func (suite *ShippingServiceTestSuite) TestCreateOrder_Success() {
	req := dto.CreateOrderRequest{
		ContractNo:  "CT-2025-001",
		OrderDate:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Buyer:       "Pacific Rubber Trading",
		Period:      "Q2 2025",
		Destination: "Singapore",
	}
	suite.mockShippingRepo.On("SaveOrder", suite.ctx, mock.MatchedBy(func(order domain.ShippingOrder) bool {
		return order.ContractNo == "CT-2025-001" &&
			order.Buyer == "Pacific Rubber Trading" &&
			order.CreatedBy == "user-1"
	})).Return(nil).Once()

	order, err := suite.service.CreateOrder(suite.ctx, suite.actor, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(order)
	suite.Equal("CT-2025-001", order.ContractNo)
	suite.mockShippingRepo.AssertExpectations(suite.T())
}

func (suite *ShippingServiceTestSuite) TestCreateOrder_DuplicateContract() {
	req := dto.CreateOrderRequest{ContractNo: "CT-2025-001", Buyer: "Pacific Rubber Trading"}
	suite.mockShippingRepo.On("SaveOrder", suite.ctx, mock.AnythingOfType("domain.ShippingOrder")).
		Return(apperrors.ErrDuplicate).Once()

	order, err := suite.service.CreateOrder(suite.ctx, suite.actor, req)

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.ErrorContains(err, "CT-2025-001")
}

func (suite *ShippingServiceTestSuite) TestAddOrderDetail_UnknownContract() {
	req := dto.CreateOrderDetailRequest{
		ClassName: "RSS",
		GradeID:   "5",
		Quantity:  decimal.NewFromInt(20000),
	}
	suite.mockShippingRepo.On("FindOrderByContract", suite.ctx, "missing").
		Return(nil, apperrors.NewNotFoundError("shipping order not found")).Once()

	detail, err := suite.service.AddOrderDetail(suite.ctx, suite.actor, "missing", req)

	suite.Require().Error(err)
	suite.Nil(detail)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockShippingRepo.AssertNotCalled(suite.T(), "SaveOrderDetail", mock.Anything, mock.Anything)
}

func (suite *ShippingServiceTestSuite) TestAddOrderDetail_Success() {
	req := dto.CreateOrderDetailRequest{
		ClassName: "RSS",
		GradeID:   "5",
		Packing:   "pallet",
		Quantity:  decimal.NewFromInt(20000),
	}
	suite.mockShippingRepo.On("FindOrderByContract", suite.ctx, "CT-2025-001").
		Return(&domain.ShippingOrder{ContractNo: "CT-2025-001"}, nil).Once()
	suite.mockRefDataRepo.On("FindProductByID", suite.ctx, "5").
		Return(&domain.Product{ProductID: "5", CropName: "RSS", Pool: domain.Processed}, nil).Once()
	suite.mockShippingRepo.On("SaveOrderDetail", suite.ctx, mock.MatchedBy(func(detail domain.OrderDetail) bool {
		return detail.ContractNo == "CT-2025-001" &&
			detail.GradeID == "5" &&
			detail.Quantity.Equal(decimal.NewFromInt(20000))
	})).Return(nil).Once()

	detail, err := suite.service.AddOrderDetail(suite.ctx, suite.actor, "CT-2025-001", req)

	suite.Require().NoError(err)
	suite.Require().NotNil(detail)
	suite.NotEmpty(detail.DetailID)
	suite.mockShippingRepo.AssertExpectations(suite.T())
}

func (suite *ShippingServiceTestSuite) TestBalanceForContract_NoDetailLines() {
	suite.mockShippingRepo.On("OrderedQuantity", suite.ctx, "CT-2025-001").
		Return(decimal.Zero, false, nil).Once()

	balance, err := suite.service.BalanceForContract(suite.ctx, "CT-2025-001")

	suite.Require().Error(err)
	suite.Nil(balance)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockShippingRepo.AssertNotCalled(suite.T(), "LoadedQuantity", mock.Anything, mock.Anything)
}

func (suite *ShippingServiceTestSuite) TestBalanceForContract_RemainingMath() {
	suite.mockShippingRepo.On("OrderedQuantity", suite.ctx, "CT-2025-001").
		Return(decimal.NewFromInt(60000), true, nil).Once()
	suite.mockShippingRepo.On("LoadedQuantity", suite.ctx, "CT-2025-001").
		Return(decimal.NewFromInt(42500), nil).Once()

	balance, err := suite.service.BalanceForContract(suite.ctx, "CT-2025-001")

	suite.Require().NoError(err)
	suite.Require().NotNil(balance)
	suite.True(balance.OrderedQty.Equal(decimal.NewFromInt(60000)))
	suite.True(balance.LoadedQty.Equal(decimal.NewFromInt(42500)))
	suite.True(balance.Remaining.Equal(decimal.NewFromInt(17500)))
	suite.mockShippingRepo.AssertExpectations(suite.T())
}

func (suite *ShippingServiceTestSuite) TestRecordLoading_Success() {
	req := dto.CreateLoadingRequest{
		ContractNo:  "CT-2025-001",
		LoadingDate: time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		DepartDate:  time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC),
		Vessel:      "MV Orchid",
		ContainerNo: "TCNU1234567",
		Quantity:    decimal.NewFromInt(17500),
	}
	suite.mockShippingRepo.On("OrderedQuantity", suite.ctx, "CT-2025-001").
		Return(decimal.NewFromInt(60000), true, nil).Once()
	suite.mockShippingRepo.On("LoadedQuantity", suite.ctx, "CT-2025-001").
		Return(decimal.NewFromInt(42500), nil).Once()
	suite.mockShippingRepo.On("SaveLoading", suite.ctx, mock.MatchedBy(func(loading domain.Loading) bool {
		return loading.ContractNo == "CT-2025-001" &&
			loading.FactoryID == "factory-1" &&
			loading.Quantity.Equal(decimal.NewFromInt(17500))
	})).Return(nil).Once()

	loading, err := suite.service.RecordLoading(suite.ctx, suite.actor, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(loading)
	suite.NotEmpty(loading.LoadingID)
	suite.mockShippingRepo.AssertExpectations(suite.T())
}

func (suite *ShippingServiceTestSuite) TestRecordLoading_ExceedsRemaining() {
	req := dto.CreateLoadingRequest{
		ContractNo:  "CT-2025-001",
		LoadingDate: time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		Quantity:    decimal.NewFromInt(20000),
	}
	suite.mockShippingRepo.On("OrderedQuantity", suite.ctx, "CT-2025-001").
		Return(decimal.NewFromInt(60000), true, nil).Once()
	suite.mockShippingRepo.On("LoadedQuantity", suite.ctx, "CT-2025-001").
		Return(decimal.NewFromInt(42500), nil).Once()

	loading, err := suite.service.RecordLoading(suite.ctx, suite.actor, req)

	suite.Require().Error(err)
	suite.Nil(loading)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "exceeds remaining")
	suite.mockShippingRepo.AssertNotCalled(suite.T(), "SaveLoading", mock.Anything, mock.Anything)
}

func (suite *ShippingServiceTestSuite) TestRecordLoading_NoFactoryScope() {
	actor := domain.Actor{UserID: "user-1"}
	req := dto.CreateLoadingRequest{ContractNo: "CT-2025-001", Quantity: decimal.NewFromInt(100)}

	loading, err := suite.service.RecordLoading(suite.ctx, actor, req)

	suite.Require().Error(err)
	suite.Nil(loading)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockShippingRepo.AssertNotCalled(suite.T(), "OrderedQuantity", mock.Anything, mock.Anything)
}

func (suite *ShippingServiceTestSuite) TestListLoadings_ContractFilterPassedThrough() {
	contractNo := "CT-2025-001"
	expected := []domain.Loading{{LoadingID: "l-1", ContractNo: contractNo}}
	suite.mockShippingRepo.On("ListLoadings", suite.ctx, &contractNo).Return(expected, nil).Once()

	loadings, err := suite.service.ListLoadings(suite.ctx, &contractNo)

	suite.Require().NoError(err)
	suite.Equal(expected, loadings)
	suite.mockShippingRepo.AssertExpectations(suite.T())
}

func TestShippingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShippingServiceTestSuite))
}
