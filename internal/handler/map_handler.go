package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/geomapa/geochem-viewer-go/internal/models"
	"github.com/geomapa/geochem-viewer-go/internal/service"
	"github.com/geomapa/geochem-viewer-go/pkg/response"
	"github.com/gin-gonic/gin"
)

// MapHandler handles HTTP requests for the marker pipeline
type MapHandler struct {
	service *service.MapService
}

// NewMapHandler creates a new map handler
func NewMapHandler(service *service.MapService) *MapHandler {
	return &MapHandler{service: service}
}

// GetMarkers handles GET /api/v1/map/markers
func (h *MapHandler) GetMarkers(c *gin.Context) {
	filter, ok := bindMarkerFilter(c)
	if !ok {
		return
	}

	view, err := h.service.BuildView(filter.Element, filter.Types)
	if err != nil {
		if errors.Is(err, service.ErrUnknownElement) {
			response.BadRequest(c, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to build map view: "+err.Error())
		return
	}

	if view.Count == 0 {
		response.Warning(c,
			fmt.Sprintf("No valid data for element %q with the selected filters", filter.Element),
			gin.H{"empty": true, "element": filter.Element})
		return
	}

	response.Success(c, view)
}

// bindMarkerFilter binds and normalizes the selection parameters shared by
// the marker and statistics endpoints. It writes the error response itself
// when the selection is unusable.
func bindMarkerFilter(c *gin.Context) (models.MarkerFilter, bool) {
	var filter models.MarkerFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return filter, false
	}

	if filter.Element == "" {
		filter.Element = models.DefaultElement().Symbol
	}
	filter.Types = splitTypes(filter.Types)
	if len(filter.Types) == 0 {
		response.BadRequest(c, "Select at least one sample type")
		return filter, false
	}
	return filter, true
}

// splitTypes accepts both repeated ?types= parameters and a single
// comma-separated value.
func splitTypes(raw []string) []string {
	var types []string
	for _, v := range raw {
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				types = append(types, t)
			}
		}
	}
	return types
}
