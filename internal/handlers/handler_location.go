package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/svitvalut/exchange_backend/internal/apperrors"
	portssvc "github.com/svitvalut/exchange_backend/internal/core/ports/services"
	"github.com/svitvalut/exchange_backend/internal/dto"
	"github.com/svitvalut/exchange_backend/internal/middleware"
)

// locationHandler handles HTTP requests for user geolocation.
type locationHandler struct {
	locationService portssvc.LocationSvcFacade
}

// newLocationHandler creates a new locationHandler.
func newLocationHandler(ls portssvc.LocationSvcFacade) *locationHandler {
	return &locationHandler{locationService: ls}
}

// registerLocationRoutes registers the geolocation route.
func registerLocationRoutes(rg *gin.RouterGroup, locationService portssvc.LocationSvcFacade) {
	h := newLocationHandler(locationService)
	rg.GET("/my-location", h.myLocation)
}

// myLocation godoc
// @Summary Resolve the caller's location
// @Description Uses device-supplied lat/lng when present, otherwise geolocates the client IP
// @Tags location
// @Produce  json
// @Param   lat query number false "Device latitude"
// @Param   lng query number false "Device longitude"
// @Success 200 {object} dto.LocationResponse
// @Failure 404 {object} map[string]string "Location could not be determined"
// @Failure 500 {object} map[string]string "Failed to resolve location"
// @Router /my-location [get]
func (h *locationHandler) myLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	loc, err := h.locationService.Resolve(c.Request.Context(), parsePoint(c), c.ClientIP())
	if err != nil {
		if errors.Is(err, apperrors.ErrLocation) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Location could not be determined"})
			return
		}
		logger.Error("Failed to resolve location", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve location"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLocationResponse(loc))
}
