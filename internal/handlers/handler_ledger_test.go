package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fact-data/factstock_backend/internal/apperrors"
	"github.com/fact-data/factstock_backend/internal/core/domain"
	portssvc "github.com/fact-data/factstock_backend/internal/core/ports/services"
	"github.com/fact-data/factstock_backend/internal/dto"
	"github.com/fact-data/factstock_backend/internal/handlers"
	"github.com/fact-data/factstock_backend/internal/middleware"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

func (m *MockLedgerService) RecordManualEntry(ctx context.Context, actor domain.Actor, req dto.CreateManualEntryRequest) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEntriesResponse), args.Error(1)
}

func (m *MockLedgerService) UpdateEntry(ctx context.Context, actor domain.Actor, entryID string, req dto.UpdateManualEntryRequest) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, actor, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) DeleteEntry(ctx context.Context, actor domain.Actor, entryID string) error {
	args := m.Called(ctx, actor, entryID)
	return args.Error(0)
}

// --- Test Suite ---
type LedgerHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *MockLedgerService
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockLedgerService = new(MockLedgerService)

	// Use the actual identity middleware so the actor headers are enforced
	v1 := suite.router.Group("/api/v1", middleware.IdentityMiddleware())
	handlers.RegisterLedgerRoutes(v1, suite.mockLedgerService)
}

func (suite *LedgerHandlerTestSuite) doRequest(method, url string, body any, withIdentity bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		suite.Require().NoError(err)
	}

	req, err := http.NewRequest(method, url, &buf)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if withIdentity {
		req.Header.Set(middleware.HeaderUserID, "user-1")
		req.Header.Set(middleware.HeaderFactoryID, "factory-1")
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *LedgerHandlerTestSuite) TestCreateManualEntry_Success() {
	entryDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	stored := &domain.LedgerEntry{
		EntryID:         "entry-1",
		TransactionDate: entryDate,
		FactoryID:       "factory-1",
		ProductID:       "3",
		StockPool:       domain.Unprocessed,
		Direction:       domain.Out,
		Source:          domain.SourceManual,
		Quantity:        decimal.NewFromInt(40),
		Description:     "Spoilage write-off",
	}

	suite.mockLedgerService.On("RecordManualEntry",
		mock.Anything,
		domain.Actor{UserID: "user-1", FactoryID: "factory-1"},
		mock.MatchedBy(func(req dto.CreateManualEntryRequest) bool {
			return req.ProductID == "3" &&
				req.StockPool == "UNPROCESSED" &&
				req.Direction == "OUT" &&
				req.Quantity.Equal(decimal.NewFromInt(40))
		}),
	).Return(stored, nil).Once()

	body := map[string]any{
		"transactionDate": "2025-03-14T00:00:00Z",
		"productID":       "3",
		"stockPool":       "UNPROCESSED",
		"direction":       "OUT",
		"quantity":        "40",
		"description":     "Spoilage write-off",
	}
	w := suite.doRequest(http.MethodPost, "/api/v1/stock/entries", body, true)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.LedgerEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("entry-1", resp.EntryID)
	suite.Equal("2025-03-14", resp.TransactionDate)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestCreateManualEntry_MissingIdentityHeader() {
	body := map[string]any{
		"transactionDate": "2025-03-14T00:00:00Z",
		"productID":       "3",
		"stockPool":       "UNPROCESSED",
		"direction":       "OUT",
		"quantity":        "40",
	}
	w := suite.doRequest(http.MethodPost, "/api/v1/stock/entries", body, false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "RecordManualEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestCreateManualEntry_DateOnlyTimestampRejected() {
	// JSON binding takes RFC3339 timestamps; a bare calendar date is a 400
	body := map[string]any{
		"transactionDate": "2025-03-14",
		"productID":       "3",
		"stockPool":       "UNPROCESSED",
		"direction":       "OUT",
		"quantity":        "40",
	}
	w := suite.doRequest(http.MethodPost, "/api/v1/stock/entries", body, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "RecordManualEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestCreateManualEntry_InvalidDirection() {
	body := map[string]any{
		"transactionDate": "2025-03-14T00:00:00Z",
		"productID":       "3",
		"stockPool":       "UNPROCESSED",
		"direction":       "SIDEWAYS",
		"quantity":        "40",
	}
	w := suite.doRequest(http.MethodPost, "/api/v1/stock/entries", body, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "RecordManualEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestCreateManualEntry_UnmappedReference() {
	suite.mockLedgerService.On("RecordManualEntry", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrReferenceNotFound).Once()

	body := map[string]any{
		"transactionDate": "2025-03-14T00:00:00Z",
		"productID":       "99",
		"stockPool":       "UNPROCESSED",
		"direction":       "IN",
		"quantity":        "40",
	}
	w := suite.doRequest(http.MethodPost, "/api/v1/stock/entries", body, true)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestListEntries_Success() {
	nextToken := "token-2"
	expected := &dto.ListEntriesResponse{
		Entries: []dto.LedgerEntryResponse{
			{EntryID: "entry-1", TransactionDate: "2025-03-14", Quantity: decimal.NewFromInt(500)},
		},
		NextToken: &nextToken,
	}
	suite.mockLedgerService.On("ListEntries", mock.Anything, mock.MatchedBy(func(params dto.ListEntriesParams) bool {
		return params.FactoryID != nil && *params.FactoryID == "factory-1" &&
			params.Limit == 20 &&
			params.From != nil && params.From.Format("2006-01-02") == "2025-03-01"
	})).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/stock/entries?factoryID=factory-1&from=2025-03-01&limit=20", nil, true)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Entries, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("token-2", *resp.NextToken)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestListEntries_BadDateParam() {
	w := suite.doRequest(http.MethodGet, "/api/v1/stock/entries?from=14-03-2025", nil, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "ListEntries", mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestUpdateEntry_NotFound() {
	suite.mockLedgerService.On("UpdateEntry", mock.Anything, mock.Anything, "missing", mock.Anything).
		Return(nil, apperrors.NewNotFoundError("ledger entry not found")).Once()

	body := map[string]any{"quantity": "25"}
	w := suite.doRequest(http.MethodPut, "/api/v1/stock/entries/missing", body, true)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestDeleteEntry_Success() {
	suite.mockLedgerService.On("DeleteEntry", mock.Anything,
		domain.Actor{UserID: "user-1", FactoryID: "factory-1"}, "entry-1").
		Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/stock/entries/entry-1", nil, true)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestDeleteEntry_NonManualRejected() {
	suite.mockLedgerService.On("DeleteEntry", mock.Anything, mock.Anything, "entry-1").
		Return(apperrors.ErrValidation).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/stock/entries/entry-1", nil, true)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestLedgerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
