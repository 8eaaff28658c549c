// Package csv provides CSV-based named-location loading.
package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.ngs.io/solar-api/internal/adapter/store"
)

// LocationStore provides access to named-location data.
type LocationStore struct {
	dataDir string
}

// NewLocationStore creates a new CSV-based location store.
func NewLocationStore(dataDir string) *LocationStore {
	return &LocationStore{
		dataDir: dataDir,
	}
}

// Resolve returns the coordinates for a place name. Matching is
// case-insensitive.
func (s *LocationStore) Resolve(place string) (*store.Location, error) {
	locations, err := s.load()
	if err != nil {
		return nil, err
	}

	key := strings.ToLower(strings.TrimSpace(place))
	for _, loc := range locations {
		if strings.ToLower(loc.Name) == key {
			l := loc
			return &l, nil
		}
	}

	return nil, fmt.Errorf("unknown place: %s", place)
}

// ListPlaces returns the available place names.
func (s *LocationStore) ListPlaces() ([]string, error) {
	locations, err := s.load()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(locations))
	for _, loc := range locations {
		names = append(names, loc.Name)
	}
	return names, nil
}

// load reads and parses the locations CSV file.
func (s *LocationStore) load() ([]store.Location, error) {
	filename := fmt.Sprintf("%s/locations.csv", s.dataDir)

	//nolint:gosec // G304: File path constructed from dataDir (config).
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open locations CSV: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	// Read header.
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	// Validate header.
	expectedHeaders := []string{"place", "latitude_deg", "longitude_deg"}
	if len(header) != len(expectedHeaders) {
		return nil, fmt.Errorf("invalid CSV header: expected %v, got %v", expectedHeaders, header)
	}
	for i, h := range header {
		if h != expectedHeaders[i] {
			return nil, fmt.Errorf("invalid CSV header: expected column %d to be %s, got %s", i, expectedHeaders[i], h)
		}
	}

	// Read data rows.
	locations := make([]store.Location, 0)

	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		if len(record) != 3 {
			return nil, fmt.Errorf("invalid CSV record: expected 3 columns, got %d", len(record))
		}

		name := strings.TrimSpace(record[0])

		lat, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude for place %s: %w", name, err)
		}

		lon, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude for place %s: %w", name, err)
		}

		locations = append(locations, store.Location{
			Name: name,
			Lat:  lat,
			Lon:  lon,
		})
	}

	if len(locations) == 0 {
		return nil, fmt.Errorf("no locations found in %s", filename)
	}

	return locations, nil
}
