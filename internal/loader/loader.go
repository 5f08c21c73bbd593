package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/geomapa/geochem-viewer-go/internal/models"
)

// Required non-element columns of the source CSV.
const (
	ColLatitude     = "latitude"
	ColLongitude    = "longitude"
	ColSampleType   = "tipo_muestra"
	ColMunicipality = "Municipio"
)

// ErrNotFound reports a missing data file. It halts startup; no partial
// table is ever produced.
var ErrNotFound = errors.New("data file not found")

// Load parses the CSV at path into the clean sample table. Latitude and
// longitude are coerced to numbers; a row missing latitude, longitude or
// sample type is dropped silently. Element cells are kept raw so coercion
// can happen per selection at filter time.
func Load(path string) ([]models.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	samples, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return samples, nil
}

// Parse reads CSV content from r and applies the cleaning pass. Exposed
// separately so tests can feed in-memory tables.
func Parse(r io.Reader) ([]models.Sample, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1 // ragged rows are handled per-field

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty csv")
	}
	if err != nil {
		return nil, err
	}

	cols, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	samples := make([]models.Sample, 0, 256)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		lat, latOK := CoerceFloat(field(row, cols.latitude))
		lng, lngOK := CoerceFloat(field(row, cols.longitude))
		sampleType := strings.TrimSpace(field(row, cols.sampleType))
		if !latOK || !lngOK || sampleType == "" {
			continue
		}

		s := models.Sample{
			Latitude:     lat,
			Longitude:    lng,
			SampleType:   sampleType,
			Municipality: strings.TrimSpace(field(row, cols.municipality)),
			Elements:     make(map[string]string, len(models.Catalog)),
		}
		for symbol, idx := range cols.elements {
			if cell := strings.TrimSpace(field(row, idx)); cell != "" {
				s.Elements[symbol] = cell
			}
		}
		samples = append(samples, s)
	}

	return samples, nil
}

// columnIndex holds the resolved positions of every column of interest.
type columnIndex struct {
	latitude     int
	longitude    int
	sampleType   int
	municipality int
	elements     map[string]int // element symbol -> column position
}

func indexColumns(header []string) (columnIndex, error) {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		byName[strings.TrimSpace(h)] = i
	}

	cols := columnIndex{latitude: -1, longitude: -1, sampleType: -1, municipality: -1}
	var ok bool
	if cols.latitude, ok = byName[ColLatitude]; !ok {
		return cols, fmt.Errorf("missing required column %q", ColLatitude)
	}
	if cols.longitude, ok = byName[ColLongitude]; !ok {
		return cols, fmt.Errorf("missing required column %q", ColLongitude)
	}
	if cols.sampleType, ok = byName[ColSampleType]; !ok {
		return cols, fmt.Errorf("missing required column %q", ColSampleType)
	}
	// Municipality is display-only; tolerate its absence.
	if cols.municipality, ok = byName[ColMunicipality]; !ok {
		cols.municipality = -1
	}

	cols.elements = make(map[string]int, len(models.Catalog))
	for _, e := range models.Catalog {
		if idx, ok := byName[e.CSVColumn]; ok {
			cols.elements[e.Symbol] = idx
		}
	}
	return cols, nil
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// CoerceFloat parses a cell as float64. NaN and Inf count as missing, the
// same as any unparseable cell. The filter engine shares this policy for
// element values.
func CoerceFloat(cell string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
