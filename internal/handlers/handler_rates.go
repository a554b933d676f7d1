package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/svitvalut/exchange_backend/internal/apperrors"
	portssvc "github.com/svitvalut/exchange_backend/internal/core/ports/services"
	"github.com/svitvalut/exchange_backend/internal/dto"
	"github.com/svitvalut/exchange_backend/internal/middleware"
)

// ratesHandler handles HTTP requests related to currencies and rates.
type ratesHandler struct {
	rateService portssvc.RateSvcFacade
}

// newRatesHandler creates a new ratesHandler.
func newRatesHandler(rs portssvc.RateSvcFacade) *ratesHandler {
	return &ratesHandler{rateService: rs}
}

// registerRateRoutes registers routes related to currencies and rates.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRatesHandler(rateService)

	rg.GET("/currencies", h.listCurrencies)
	rates := rg.Group("/rates")
	{
		rates.GET("", h.getRates)
		rates.GET("/cross", h.listCrossRates)
	}
}

// parseBranchID reads the optional branch_id query parameter. A missing
// parameter means the global scope.
func parseBranchID(c *gin.Context) (*int64, error) {
	raw := c.Query("branch_id")
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, errors.New("branch_id must be a positive integer")
	}
	return &id, nil
}

// listCurrencies godoc
// @Summary List resolved currencies
// @Description Retrieves the tradeable currencies with effective rates, merged with branch overrides when branch_id is given
// @Tags rates
// @Produce  json
// @Param   branch_id query int false "Branch ID for branch-scoped rates"
// @Success 200 {array} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid branch_id"
// @Failure 500 {object} map[string]string "Failed to list currencies"
// @Router /currencies [get]
func (h *ratesHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	branchID, err := parseBranchID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	listings, err := h.rateService.ListCurrencies(c.Request.Context(), branchID)
	if err != nil {
		logger.Error("Failed to list currencies from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currencies"})
		return
	}

	logger.Debug("Currencies listed successfully", slog.Int("count", len(listings)))
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(listings))
}

// getRates godoc
// @Summary Compact rates view
// @Description Retrieves buy/sell per active currency with the snapshot timestamp
// @Tags rates
// @Produce  json
// @Param   branch_id query int false "Branch ID for branch-scoped rates"
// @Success 200 {object} dto.RatesResponse
// @Failure 400 {object} map[string]string "Invalid branch_id"
// @Failure 500 {object} map[string]string "Failed to get rates"
// @Router /rates [get]
func (h *ratesHandler) getRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	branchID, err := parseBranchID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.rateService.RateSummary(c.Request.Context(), branchID)
	if err != nil {
		logger.Error("Failed to get rate summary from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRatesResponse(summary))
}

// listCrossRates godoc
// @Summary List stored cross pairs
// @Description Retrieves the directly quoted cross-rate table
// @Tags rates
// @Produce  json
// @Success 200 {array} dto.CrossRateResponse
// @Failure 500 {object} map[string]string "Failed to list cross rates"
// @Router /rates/cross [get]
func (h *ratesHandler) listCrossRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	crosses, err := h.rateService.ListCrossRates(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusOK, []dto.CrossRateResponse{})
			return
		}
		logger.Error("Failed to list cross rates from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cross rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCrossRateResponse(crosses))
}
