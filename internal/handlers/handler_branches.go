package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/svitvalut/exchange_backend/internal/apperrors"
	"github.com/svitvalut/exchange_backend/internal/core/domain"
	portssvc "github.com/svitvalut/exchange_backend/internal/core/ports/services"
	"github.com/svitvalut/exchange_backend/internal/dto"
	"github.com/svitvalut/exchange_backend/internal/middleware"
)

// branchHandler handles HTTP requests related to branches and selection.
type branchHandler struct {
	branchService portssvc.BranchSvcFacade
}

// newBranchHandler creates a new branchHandler.
func newBranchHandler(bs portssvc.BranchSvcFacade) *branchHandler {
	return &branchHandler{branchService: bs}
}

// registerBranchRoutes registers routes related to branches.
func registerBranchRoutes(rg *gin.RouterGroup, branchService portssvc.BranchSvcFacade) {
	h := newBranchHandler(branchService)

	branches := rg.Group("/branches")
	{
		branches.GET("", h.listBranches)
		branches.GET("/nearest", h.nearestBranch)
		branches.GET("/best", h.bestRateBranch)
		branches.GET("/select", h.autoSelect)
	}
}

// parsePoint reads lat/lng query parameters tolerantly. nil means the
// caller sent no usable coordinates.
func parsePoint(c *gin.Context) *domain.GeoPoint {
	return domain.ParseGeoPoint(c.Query("lat"), c.Query("lng"))
}

// parseDirection maps the optional direction parameter, defaulting to the
// customer selling foreign currency.
func parseDirection(c *gin.Context) domain.Direction {
	switch c.Query("direction") {
	case "buy", string(domain.BuyForeign):
		return domain.BuyForeign
	default:
		return domain.SellForeign
	}
}

// listBranches godoc
// @Summary List branches
// @Description Retrieves all exchange branches
// @Tags branches
// @Produce  json
// @Success 200 {array} dto.BranchResponse
// @Failure 500 {object} map[string]string "Failed to list branches"
// @Router /branches [get]
func (h *branchHandler) listBranches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	branches, err := h.branchService.ListBranches(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list branches from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list branches"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBranchResponse(branches))
}

// nearestBranch godoc
// @Summary Nearest branch
// @Description Picks the branch closest to the given coordinates
// @Tags branches
// @Produce  json
// @Param   lat query number true "Latitude"
// @Param   lng query number true "Longitude"
// @Success 200 {object} dto.BranchResponse
// @Failure 400 {object} map[string]string "Missing or unusable coordinates"
// @Failure 404 {object} map[string]string "No branch has coordinates"
// @Failure 500 {object} map[string]string "Failed to pick a branch"
// @Router /branches/nearest [get]
func (h *branchHandler) nearestBranch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	point := parsePoint(c)
	if point == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng are required"})
		return
	}

	branch, err := h.branchService.NearestBranch(c.Request.Context(), *point)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No branch has usable coordinates"})
			return
		}
		logger.Error("Failed to pick nearest branch", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to pick a branch"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBranchResponse(*branch))
}

// bestRateBranch godoc
// @Summary Best-rate branch
// @Description Picks the branch with the most favorable rate for the customer
// @Tags branches
// @Produce  json
// @Param   currency query string true "Currency code"
// @Param   direction query string false "Trade direction: sell (default) or buy, from the customer's side"
// @Success 200 {object} dto.BranchResponse
// @Failure 400 {object} map[string]string "Invalid currency code"
// @Failure 404 {object} map[string]string "Currency not available at any branch"
// @Failure 500 {object} map[string]string "Failed to pick a branch"
// @Router /branches/best [get]
func (h *branchHandler) bestRateBranch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	branch, err := h.branchService.BestRateBranch(c.Request.Context(), c.Query("currency"), parseDirection(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrUnavailable) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not available at any branch"})
			return
		}
		logger.Error("Failed to pick best-rate branch", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to pick a branch"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBranchResponse(*branch))
}

// autoSelect godoc
// @Summary Auto-select a branch
// @Description Runs one auto-selection pass: nearest branch when coordinates are given, best rate otherwise
// @Tags branches
// @Produce  json
// @Param   lat query number false "Latitude"
// @Param   lng query number false "Longitude"
// @Param   currency query string false "Currency code for the best-rate fallback"
// @Param   direction query string false "Trade direction: sell (default) or buy"
// @Success 200 {object} dto.BranchSelectionResponse
// @Failure 400 {object} map[string]string "Invalid currency code"
// @Failure 500 {object} map[string]string "Failed to select a branch"
// @Router /branches/select [get]
func (h *branchHandler) autoSelect(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	choice, err := h.branchService.AutoSelect(c.Request.Context(), parsePoint(c), c.Query("currency"), parseDirection(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to auto-select branch", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to select a branch"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBranchSelectionResponse(choice))
}
