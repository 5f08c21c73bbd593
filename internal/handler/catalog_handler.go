package handler

import (
	"net/http"

	"github.com/geomapa/geochem-viewer-go/internal/service"
	"github.com/geomapa/geochem-viewer-go/pkg/response"
	"github.com/gin-gonic/gin"
)

// CatalogHandler handles HTTP requests for the element catalog and the
// sample types observed in the dataset.
type CatalogHandler struct {
	service *service.DatasetService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service *service.DatasetService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// GetElements handles GET /api/v1/elements
func (h *CatalogHandler) GetElements(c *gin.Context) {
	elements := h.service.Elements()
	response.Success(c, gin.H{
		"data":  elements,
		"count": len(elements),
	})
}

// GetSampleTypes handles GET /api/v1/sample-types
func (h *CatalogHandler) GetSampleTypes(c *gin.Context) {
	types, err := h.service.SampleTypes()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get sample types: "+err.Error())
		return
	}
	response.Success(c, gin.H{
		"data":  types,
		"count": len(types),
	})
}
