package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/geomapa/geochem-viewer-go/internal/service"
	"github.com/geomapa/geochem-viewer-go/pkg/response"
	"github.com/gin-gonic/gin"
)

// StatsHandler handles HTTP requests for element summary statistics
type StatsHandler struct {
	service *service.MapService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(service *service.MapService) *StatsHandler {
	return &StatsHandler{service: service}
}

// GetElementStats handles GET /api/v1/elements/:symbol/stats
func (h *StatsHandler) GetElementStats(c *gin.Context) {
	symbol := c.Param("symbol")
	types := splitTypes(c.QueryArray("types"))
	if len(types) == 0 {
		response.BadRequest(c, "Select at least one sample type")
		return
	}

	summary, err := h.service.Summary(symbol, types)
	if err != nil {
		if errors.Is(err, service.ErrUnknownElement) {
			response.BadRequest(c, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to compute statistics: "+err.Error())
		return
	}

	if summary.Count == 0 {
		response.Warning(c,
			fmt.Sprintf("No valid data for element %q with the selected filters", symbol),
			gin.H{"empty": true, "element": symbol})
		return
	}

	response.Success(c, gin.H{
		"element": symbol,
		"stats":   summary,
	})
}
