package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/svitvalut/exchange_backend/internal/core/domain"
	portssvc "github.com/svitvalut/exchange_backend/internal/core/ports/services"
	"github.com/svitvalut/exchange_backend/internal/handlers"
	"github.com/svitvalut/exchange_backend/internal/platform/config"
)

// --- Mock RateService ---
type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) Snapshot(ctx context.Context) (*domain.RateSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateSnapshot), args.Error(1)
}

func (m *MockRateService) ListCurrencies(ctx context.Context, branchID *int64) ([]domain.CurrencyListing, error) {
	args := m.Called(ctx, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyListing), args.Error(1)
}

func (m *MockRateService) RateSummary(ctx context.Context, branchID *int64) (*domain.RateSummary, error) {
	args := m.Called(ctx, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateSummary), args.Error(1)
}

func (m *MockRateService) ListCrossRates(ctx context.Context) ([]domain.CrossRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CrossRate), args.Error(1)
}

var _ portssvc.RateSvcFacade = (*MockRateService)(nil)

// --- Mock QuoteService ---
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) Calculate(ctx context.Context, from, to string, amount decimal.Decimal, branchID *int64) (*domain.Calculation, error) {
	args := m.Called(ctx, from, to, amount, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Calculation), args.Error(1)
}

var _ portssvc.QuoteSvcFacade = (*MockQuoteService)(nil)

// --- Mock BranchService ---
type MockBranchService struct {
	mock.Mock
}

func (m *MockBranchService) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Branch), args.Error(1)
}

func (m *MockBranchService) GetBranchByID(ctx context.Context, branchID int64) (*domain.Branch, error) {
	args := m.Called(ctx, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}

func (m *MockBranchService) NearestBranch(ctx context.Context, point domain.GeoPoint) (*domain.Branch, error) {
	args := m.Called(ctx, point)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}

func (m *MockBranchService) BestRateBranch(ctx context.Context, code string, direction domain.Direction) (*domain.Branch, error) {
	args := m.Called(ctx, code, direction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}

func (m *MockBranchService) AutoSelect(ctx context.Context, point *domain.GeoPoint, code string, direction domain.Direction) (*domain.BranchChoice, error) {
	args := m.Called(ctx, point, code, direction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BranchChoice), args.Error(1)
}

var _ portssvc.BranchSvcFacade = (*MockBranchService)(nil)

// --- Mock LocationService ---
type MockLocationService struct {
	mock.Mock
}

func (m *MockLocationService) Resolve(ctx context.Context, hint *domain.GeoPoint, ip string) (*domain.Location, error) {
	args := m.Called(ctx, hint, ip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

var _ portssvc.LocationSvcFacade = (*MockLocationService)(nil)

// newTestRouter wires the full route table over the given mocks. Production
// mode keeps swagger off the route table.
func newTestRouter(container *portssvc.ServiceContainer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers.RegisterRoutes(router, &config.Config{IsProduction: true}, container)
	return router
}

func doGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}
