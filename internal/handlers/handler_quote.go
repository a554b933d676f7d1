package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/svitvalut/exchange_backend/internal/apperrors"
	portssvc "github.com/svitvalut/exchange_backend/internal/core/ports/services"
	"github.com/svitvalut/exchange_backend/internal/dto"
	"github.com/svitvalut/exchange_backend/internal/middleware"
)

// quoteHandler handles HTTP requests for conversion quotes.
type quoteHandler struct {
	quoteService portssvc.QuoteSvcFacade
}

// newQuoteHandler creates a new quoteHandler.
func newQuoteHandler(qs portssvc.QuoteSvcFacade) *quoteHandler {
	return &quoteHandler{quoteService: qs}
}

// registerQuoteRoutes registers the quote calculation route.
func registerQuoteRoutes(rg *gin.RouterGroup, quoteService portssvc.QuoteSvcFacade) {
	h := newQuoteHandler(quoteService)
	rg.GET("/calculate", h.calculate)
}

// calculate godoc
// @Summary Quote a conversion
// @Description Calculates the counter-amount for a conversion; the trade direction follows from which side is the domestic currency
// @Tags quotes
// @Produce  json
// @Param   from query string true "Source currency code"
// @Param   to query string true "Target currency code"
// @Param   amount query string true "Amount in the source currency"
// @Param   branch_id query int false "Branch ID for branch-scoped rates"
// @Success 200 {object} dto.CalculateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to calculate"
// @Router /calculate [get]
func (h *quoteHandler) calculate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CalculateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for calculate", slog.String("error", err.Error()))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parameter: " + ve[0].Field()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a decimal number"})
		return
	}

	calc, err := h.quoteService.Calculate(c.Request.Context(), req.From, req.To, amount, req.BranchID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to calculate quote in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCalculateResponse(calc))
}
