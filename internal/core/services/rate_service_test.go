package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/svitvalut/exchange_backend/internal/core/domain"
	portssvc "github.com/svitvalut/exchange_backend/internal/core/ports/services"
	"github.com/svitvalut/exchange_backend/internal/core/services"
)

// --- Mock rate repository ---
type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) ListCurrencyRates(ctx context.Context) ([]domain.CurrencyRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyRate), args.Error(1)
}

func (m *MockRateRepository) FindCurrencyRateByCode(ctx context.Context, code string) (*domain.CurrencyRate, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyRate), args.Error(1)
}

func (m *MockRateRepository) ListBranchRates(ctx context.Context) ([]domain.BranchRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BranchRate), args.Error(1)
}

func (m *MockRateRepository) ListCrossRates(ctx context.Context) ([]domain.CrossRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CrossRate), args.Error(1)
}

func (m *MockRateRepository) GetSiteSettings(ctx context.Context) (*domain.SiteSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SiteSettings), args.Error(1)
}

// --- Mock branch reader ---
type MockBranchReader struct {
	mock.Mock
}

func (m *MockBranchReader) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Branch), args.Error(1)
}

func (m *MockBranchReader) FindBranchByID(ctx context.Context, branchID int64) (*domain.Branch, error) {
	args := m.Called(ctx, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}

// --- Mock snapshot cache ---
type MockSnapshotCache struct {
	mock.Mock
}

func (m *MockSnapshotCache) GetSnapshot(ctx context.Context) (*domain.RateSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateSnapshot), args.Error(1)
}

func (m *MockSnapshotCache) SetSnapshot(ctx context.Context, snapshot *domain.RateSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

// --- Test Suite ---
type RateServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockRateRepository
	mockBranches *MockBranchReader
	mockCache    *MockSnapshotCache
	service      portssvc.RateSvcFacade
}

func (suite *RateServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRateRepository)
	suite.mockBranches = new(MockBranchReader)
	suite.mockCache = new(MockSnapshotCache)
	suite.service = services.NewRateService(suite.mockRepo, suite.mockBranches, suite.mockCache, "UAH")
}

func (suite *RateServiceTestSuite) expectHealthyDatabase() {
	ctx := mock.Anything
	suite.mockRepo.On("ListCurrencyRates", ctx).Return([]domain.CurrencyRate{
		{Code: "USD", Name: "Dollar", BuyRate: dec("42.0"), SellRate: dec("42.5"), IsActive: true, SortOrder: 1},
		{Code: "EUR", Name: "Euro", BuyRate: dec("45.5"), SellRate: dec("45.9"), IsActive: true, SortOrder: 2},
		{Code: "RSD", Name: "Dinar", BuyRate: dec("0.4"), SellRate: dec("0.45"), IsActive: false, SortOrder: 3},
	}, nil)
	suite.mockRepo.On("ListBranchRates", ctx).Return([]domain.BranchRate{
		{BranchID: 2, Code: "USD", BuyRate: dec("42.2"), IsActive: true},
		{BranchID: 2, Code: "EUR", IsActive: false},
	}, nil)
	suite.mockRepo.On("ListCrossRates", ctx).Return([]domain.CrossRate{
		{BaseCurrency: "EUR", QuoteCurrency: "USD", BuyRate: dec("1.07"), IsActive: true, SortOrder: 1},
		{BaseCurrency: "GBP", QuoteCurrency: "USD", BuyRate: dec("1.26"), IsActive: false, SortOrder: 2},
	}, nil)
	suite.mockRepo.On("GetSiteSettings", ctx).Return(&domain.SiteSettings{
		BaseCurrency:       "UAH",
		MinWholesaleAmount: dec("2000"),
	}, nil)
	suite.mockBranches.On("ListBranches", ctx).Return([]domain.Branch{{ID: 1}, {ID: 2}}, nil)
	suite.mockCache.On("SetSnapshot", ctx, mock.AnythingOfType("*domain.RateSnapshot")).Return(nil)
}

func (suite *RateServiceTestSuite) TestSnapshot_AssemblesFromDatabase() {
	suite.expectHealthyDatabase()
	ctx := context.Background()

	snapshot, err := suite.service.Snapshot(ctx)

	suite.Require().NoError(err)
	suite.Len(snapshot.Rates, 3)
	suite.Len(snapshot.Overrides[2], 2)
	suite.Len(snapshot.Cross, 2)
	suite.Len(snapshot.Branches, 2)
	suite.False(snapshot.UpdatedAt.IsZero())
	suite.mockCache.AssertCalled(suite.T(), "SetSnapshot", mock.Anything, mock.AnythingOfType("*domain.RateSnapshot"))
}

func (suite *RateServiceTestSuite) TestSnapshot_SettingsBackfillThreshold() {
	suite.expectHealthyDatabase()
	ctx := context.Background()

	snapshot, err := suite.service.Snapshot(ctx)

	suite.Require().NoError(err)
	// USD has no threshold of its own; the site-wide minimum fills it in.
	suite.True(snapshot.Rates["USD"].WholesaleThreshold.Equal(dec("2000")))
}

func (suite *RateServiceTestSuite) TestSnapshot_FallsBackToCache() {
	ctx := context.Background()
	cached := &domain.RateSnapshot{Rates: domain.RateTable{"USD": {Code: "USD", IsActive: true}}}

	suite.mockRepo.On("ListCurrencyRates", mock.Anything).Return(nil, assert.AnError)
	suite.mockCache.On("GetSnapshot", mock.Anything).Return(cached, nil)

	snapshot, err := suite.service.Snapshot(ctx)

	suite.Require().NoError(err)
	suite.Equal(cached, snapshot)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestSnapshot_FallsBackToLastKnown() {
	ctx := context.Background()

	// Warm the in-process copy with one healthy pass.
	suite.expectHealthyDatabase()
	_, err := suite.service.Snapshot(ctx)
	suite.Require().NoError(err)

	// Then both the database and the cache go dark.
	suite.mockRepo.ExpectedCalls = nil
	suite.mockCache.ExpectedCalls = nil
	suite.mockRepo.On("ListCurrencyRates", mock.Anything).Return(nil, assert.AnError)
	suite.mockCache.On("GetSnapshot", mock.Anything).Return(nil, assert.AnError)

	snapshot, err := suite.service.Snapshot(ctx)

	suite.Require().NoError(err)
	suite.Len(snapshot.Rates, 3)
}

func (suite *RateServiceTestSuite) TestSnapshot_ErrorsWhenNothingAvailable() {
	ctx := context.Background()
	suite.mockRepo.On("ListCurrencyRates", mock.Anything).Return(nil, assert.AnError)
	suite.mockCache.On("GetSnapshot", mock.Anything).Return(nil, assert.AnError)

	snapshot, err := suite.service.Snapshot(ctx)

	suite.Require().Error(err)
	suite.Nil(snapshot)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *RateServiceTestSuite) TestListCurrencies_GlobalScope() {
	suite.expectHealthyDatabase()
	ctx := context.Background()

	listings, err := suite.service.ListCurrencies(ctx, nil)

	suite.Require().NoError(err)
	// RSD is globally inactive and dropped; order follows SortOrder.
	suite.Require().Len(listings, 2)
	suite.Equal("USD", listings[0].Effective.Code)
	suite.Equal("EUR", listings[1].Effective.Code)
	suite.False(listings[0].Effective.Overridden)
}

func (suite *RateServiceTestSuite) TestListCurrencies_BranchScope() {
	suite.expectHealthyDatabase()
	ctx := context.Background()
	branchID := int64(2)

	listings, err := suite.service.ListCurrencies(ctx, &branchID)

	suite.Require().NoError(err)
	// EUR is explicitly disabled at branch 2; USD keeps its override buy
	// rate and inherits the global sell rate.
	suite.Require().Len(listings, 1)
	suite.Equal("USD", listings[0].Effective.Code)
	suite.True(listings[0].Effective.Overridden)
	suite.True(listings[0].Effective.BuyRate.Equal(dec("42.2")))
	suite.True(listings[0].Effective.SellRate.Equal(dec("42.5")))
}

func (suite *RateServiceTestSuite) TestRateSummary() {
	suite.expectHealthyDatabase()
	ctx := context.Background()

	summary, err := suite.service.RateSummary(ctx, nil)

	suite.Require().NoError(err)
	suite.Equal("UAH", summary.BaseCurrency)
	suite.Require().Len(summary.Rates, 2)
	suite.True(summary.Rates["USD"].Buy.Equal(dec("42.0")))
	suite.True(summary.Rates["EUR"].Sell.Equal(dec("45.9")))
	suite.False(summary.UpdatedAt.IsZero())
}

func (suite *RateServiceTestSuite) TestListCrossRates_DropsInactive() {
	suite.expectHealthyDatabase()
	ctx := context.Background()

	crosses, err := suite.service.ListCrossRates(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(crosses, 1)
	suite.Equal("EUR/USD", crosses[0].PairKey())
}

func TestRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
