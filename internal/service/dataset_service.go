package service

import (
	"github.com/geomapa/geochem-viewer-go/internal/models"
	"github.com/geomapa/geochem-viewer-go/internal/repository"
)

// DatasetService exposes the static element catalog and the sample types
// observed in the clean table.
type DatasetService struct {
	repo *repository.SampleRepository
}

// NewDatasetService creates a new dataset service
func NewDatasetService(repo *repository.SampleRepository) *DatasetService {
	return &DatasetService{repo: repo}
}

// Elements returns the element catalog in its fixed order.
func (s *DatasetService) Elements() []models.Element {
	return models.Catalog
}

// SampleTypes returns the distinct sample types present in the clean table
// with their row counts.
func (s *DatasetService) SampleTypes() ([]models.SampleTypeCount, error) {
	return s.repo.DistinctSampleTypes()
}

// SampleCount returns the size of the clean table.
func (s *DatasetService) SampleCount() (int64, error) {
	return s.repo.Count()
}
