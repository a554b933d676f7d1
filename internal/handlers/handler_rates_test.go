package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/svitvalut/exchange_backend/internal/core/domain"
	portssvc "github.com/svitvalut/exchange_backend/internal/core/ports/services"
	"github.com/svitvalut/exchange_backend/internal/dto"
)

type RatesHandlerTestSuite struct {
	suite.Suite
	mockRates *MockRateService
	router    *gin.Engine
}

func (suite *RatesHandlerTestSuite) SetupTest() {
	suite.mockRates = new(MockRateService)
	suite.router = newTestRouter(&portssvc.ServiceContainer{
		Rates:    suite.mockRates,
		Quotes:   new(MockQuoteService),
		Branches: new(MockBranchService),
		Location: new(MockLocationService),
	})
}

func (suite *RatesHandlerTestSuite) TestHealth() {
	w := doGet(suite.router, "/health")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *RatesHandlerTestSuite) TestListCurrencies() {
	listings := []domain.CurrencyListing{
		{
			Effective: domain.EffectiveRate{Code: "USD", BuyRate: decimal.RequireFromString("42.0"), SellRate: decimal.RequireFromString("42.5"), IsActive: true},
			Name:      "Dollar",
		},
	}
	suite.mockRates.On("ListCurrencies", mock.Anything, (*int64)(nil)).Return(listings, nil).Once()

	w := doGet(suite.router, "/api/v1/currencies")

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("USD", resp[0].Code)
	suite.True(resp[0].BuyRate.Equal(decimal.RequireFromString("42.0")))
	suite.mockRates.AssertExpectations(suite.T())
}

func (suite *RatesHandlerTestSuite) TestListCurrencies_BranchScoped() {
	branchID := int64(2)
	suite.mockRates.On("ListCurrencies", mock.Anything, &branchID).Return([]domain.CurrencyListing{}, nil).Once()

	w := doGet(suite.router, "/api/v1/currencies?branch_id=2")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockRates.AssertExpectations(suite.T())
}

func (suite *RatesHandlerTestSuite) TestListCurrencies_BadBranchID() {
	w := doGet(suite.router, "/api/v1/currencies?branch_id=abc")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRates.AssertNotCalled(suite.T(), "ListCurrencies", mock.Anything, mock.Anything)
}

func (suite *RatesHandlerTestSuite) TestListCurrencies_ServiceError() {
	suite.mockRates.On("ListCurrencies", mock.Anything, (*int64)(nil)).Return(nil, assert.AnError).Once()

	w := doGet(suite.router, "/api/v1/currencies")

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *RatesHandlerTestSuite) TestGetRates() {
	summary := &domain.RateSummary{
		BaseCurrency: "UAH",
		Rates: map[string]domain.RatePair{
			"USD": {Buy: decimal.RequireFromString("42.0"), Sell: decimal.RequireFromString("42.5")},
		},
		UpdatedAt: time.Now(),
	}
	suite.mockRates.On("RateSummary", mock.Anything, (*int64)(nil)).Return(summary, nil).Once()

	w := doGet(suite.router, "/api/v1/rates")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RatesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("UAH", resp.BaseCurrency)
	suite.Contains(resp.Rates, "USD")
}

func (suite *RatesHandlerTestSuite) TestListCrossRates() {
	crosses := []domain.CrossRate{
		{BaseCurrency: "EUR", QuoteCurrency: "USD", BuyRate: decimal.RequireFromString("1.07"), IsActive: true},
	}
	suite.mockRates.On("ListCrossRates", mock.Anything).Return(crosses, nil).Once()

	w := doGet(suite.router, "/api/v1/rates/cross")

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.CrossRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("EUR/USD", resp[0].Pair)
}

func TestRatesHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RatesHandlerTestSuite))
}
