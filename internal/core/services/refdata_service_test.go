package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fact-data/factstock_backend/internal/core/domain"
	portssvc "github.com/fact-data/factstock_backend/internal/core/ports/services"
	"github.com/fact-data/factstock_backend/internal/core/services"
)

type RefDataServiceTestSuite struct {
	suite.Suite
	mockRefDataRepo *MockRefDataRepository
	service         portssvc.RefDataSvcFacade
	ctx             context.Context
}

func (suite *RefDataServiceTestSuite) SetupTest() {
	suite.mockRefDataRepo = new(MockRefDataRepository)
	suite.service = services.NewRefDataService(suite.mockRefDataRepo)
	suite.ctx = context.Background()
}

func (suite *RefDataServiceTestSuite) TestListGrades_Success() {
	expected := []domain.Product{
		{ProductID: "1", CropName: "Latex", Pool: domain.Unprocessed},
		{ProductID: "5", CropName: "RSS", Pool: domain.Processed},
	}
	suite.mockRefDataRepo.On("ListProducts", suite.ctx).Return(expected, nil).Once()

	grades, err := suite.service.ListGrades(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, grades)
	suite.mockRefDataRepo.AssertExpectations(suite.T())
}

func (suite *RefDataServiceTestSuite) TestListGrades_RepoError() {
	repoErr := errors.New("connection refused")
	suite.mockRefDataRepo.On("ListProducts", suite.ctx).Return(nil, repoErr).Once()

	grades, err := suite.service.ListGrades(suite.ctx)

	suite.Require().Error(err)
	suite.Nil(grades)
	suite.Equal(repoErr, err)
}

func TestRefDataServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RefDataServiceTestSuite))
}
