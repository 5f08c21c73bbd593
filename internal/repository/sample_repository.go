package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/geomapa/geochem-viewer-go/internal/database"
	"github.com/geomapa/geochem-viewer-go/internal/models"
)

// SampleRepository handles database operations for the cached clean table.
type SampleRepository struct {
	db *sql.DB
}

// NewSampleRepository creates a new sample repository
func NewSampleRepository(db *sql.DB) *SampleRepository {
	return &SampleRepository{db: db}
}

// sampleColumns returns the ordered column list shared by inserts and
// selects: the fixed sample columns followed by one column per catalog
// element.
func sampleColumns() []string {
	cols := []string{"latitude", "longitude", "sample_type", "municipality"}
	for _, e := range models.Catalog {
		cols = append(cols, e.DBColumn)
	}
	return cols
}

// HasDataset reports whether the dataset at sourcePath was already ingested.
func (r *SampleRepository) HasDataset(sourcePath string) (bool, error) {
	var count int64
	err := r.db.QueryRow("SELECT COUNT(*) FROM datasets WHERE source_path = ?", sourcePath).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to query datasets: %w", err)
	}
	return count > 0, nil
}

// SaveDataset inserts the clean table in one transaction, preserving input
// row order, and records the source path so a later start with the same
// path skips the reload.
func (r *SampleRepository) SaveDataset(sourcePath string, samples []models.Sample) error {
	cols := sampleColumns()
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	insertSQL := fmt.Sprintf("INSERT INTO samples (%s) VALUES (%s)",
		strings.Join(cols, ", "), placeholders)

	return database.Transaction(r.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(insertSQL)
		if err != nil {
			return fmt.Errorf("failed to prepare sample insert: %w", err)
		}
		defer stmt.Close()

		for _, s := range samples {
			args := make([]interface{}, 0, len(cols))
			args = append(args, s.Latitude, s.Longitude, s.SampleType, s.Municipality)
			for _, e := range models.Catalog {
				if cell, ok := s.Elements[e.Symbol]; ok {
					args = append(args, cell)
				} else {
					args = append(args, nil)
				}
			}
			if _, err := stmt.Exec(args...); err != nil {
				return fmt.Errorf("failed to insert sample: %w", err)
			}
		}

		_, err = tx.Exec("INSERT INTO datasets (source_path, row_count) VALUES (?, ?)",
			sourcePath, len(samples))
		if err != nil {
			return fmt.Errorf("failed to record dataset: %w", err)
		}
		return nil
	})
}

// GetBySampleTypes retrieves the clean rows whose sample type is in types,
// in insertion order.
func (r *SampleRepository) GetBySampleTypes(types []string) ([]models.Sample, error) {
	if len(types) == 0 {
		return nil, nil
	}

	cols := sampleColumns()
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(types)), ", ")
	query := fmt.Sprintf("SELECT id, %s FROM samples WHERE sample_type IN (%s) ORDER BY id",
		strings.Join(cols, ", "), placeholders)

	args := make([]interface{}, len(types))
	for i, t := range types {
		args[i] = t
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query samples: %w", err)
	}
	defer rows.Close()

	var samples []models.Sample
	for rows.Next() {
		s, err := scanSample(rows)
		if err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate samples: %w", err)
	}
	return samples, nil
}

// DistinctSampleTypes returns the distinct sample types present in the
// clean table with their row counts, sorted by name.
func (r *SampleRepository) DistinctSampleTypes() ([]models.SampleTypeCount, error) {
	rows, err := r.db.Query(
		"SELECT sample_type, COUNT(*) FROM samples GROUP BY sample_type ORDER BY sample_type")
	if err != nil {
		return nil, fmt.Errorf("failed to query sample types: %w", err)
	}
	defer rows.Close()

	var result []models.SampleTypeCount
	for rows.Next() {
		var stc models.SampleTypeCount
		if err := rows.Scan(&stc.SampleType, &stc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan sample type: %w", err)
		}
		result = append(result, stc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sample types: %w", err)
	}
	return result, nil
}

// Count returns the number of rows in the clean table.
func (r *SampleRepository) Count() (int64, error) {
	var count int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM samples").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count samples: %w", err)
	}
	return count, nil
}

func scanSample(rows *sql.Rows) (models.Sample, error) {
	var s models.Sample
	cells := make([]sql.NullString, len(models.Catalog))

	dest := []interface{}{&s.ID, &s.Latitude, &s.Longitude, &s.SampleType, &s.Municipality}
	for i := range cells {
		dest = append(dest, &cells[i])
	}
	if err := rows.Scan(dest...); err != nil {
		return s, fmt.Errorf("failed to scan sample: %w", err)
	}

	s.Elements = make(map[string]string, len(models.Catalog))
	for i, e := range models.Catalog {
		if cells[i].Valid {
			s.Elements[e.Symbol] = cells[i].String
		}
	}
	return s, nil
}
