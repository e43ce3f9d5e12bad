package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inetready/travel-advisor/internal/domain/traveladvisor"
	apperrors "github.com/inetready/travel-advisor/pkg/errors"
)

// CityDirectory exposes the static city/distance table to the API.
type CityDirectory interface {
	Cities() []string
	DistanceKm(cityA, cityB string) (float64, bool)
}

// AdvisorHandler wires the HTTP transport to the travel advisor domain.
type AdvisorHandler struct {
	advisorSvc traveladvisor.Service
	directory  CityDirectory
	logger     *slog.Logger
}

// NewAdvisorHandler constructs the root HTTP handler.
func NewAdvisorHandler(advisorSvc traveladvisor.Service, directory CityDirectory, logger *slog.Logger) *AdvisorHandler {
	return &AdvisorHandler{
		advisorSvc: advisorSvc,
		directory:  directory,
		logger:     logger.With("component", "http.handler"),
	}
}

// Advise runs a travel-readiness assessment for the requested trip.
func (h *AdvisorHandler) Advise(c *gin.Context) {
	var req traveladvisor.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	result, err := h.advisorSvc.Assess(c.Request.Context(), req)
	if err != nil {
		if apperrors.IsCode(err, "invalid_input") {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_input", errMessage(err), err))
			return
		}
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "advice_failed", errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListCities returns the known city names for client pickers.
func (h *AdvisorHandler) ListCities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cities": h.directory.Cities()})
}

// CityDistance resolves the precomputed distance between two cities.
func (h *AdvisorHandler) CityDistance(c *gin.Context) {
	from := traveladvisor.NormalizeCity(c.Param("from"))
	to := traveladvisor.NormalizeCity(c.Param("to"))

	if from == to {
		c.JSON(http.StatusOK, gin.H{"fromCity": from, "toCity": to, "distanceKm": 0.0})
		return
	}

	km, ok := h.directory.DistanceKm(from, to)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusNotFound, "unknown_route", "one or both cities are not covered", nil))
		return
	}

	c.JSON(http.StatusOK, gin.H{"fromCity": from, "toCity": to, "distanceKm": km})
}
