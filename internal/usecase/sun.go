package usecase

import (
	"fmt"
	"time"

	"go.ngs.io/solar-api/internal/adapter/store"
	"go.ngs.io/solar-api/internal/domain"
)

// SunTimesRequest encapsulates a solar event query.
type SunTimesRequest struct {
	// Location parameters (mutually exclusive with Place)
	Lat *float64
	Lon *float64

	// Named place resolved through the location store (mutually exclusive
	// with Lat/Lon)
	Place *string

	// First date of the series, interpreted at UTC midnight
	Date time.Time

	// Number of consecutive days (default 1)
	Days int
}

// DayTimes holds one day's event times as RFC3339 UTC strings. Events that
// do not occur (polar day or night) are null; the sentinel encoding lives
// only here, at the boundary, never in the domain.
type DayTimes struct {
	Date      string  `json:"date"`
	Noon      string  `json:"noon"`
	Midnight  string  `json:"midnight"`
	AstroDawn *string `json:"astro_dawn"`
	NautDawn  *string `json:"naut_dawn"`
	CivilDawn *string `json:"civil_dawn"`
	Sunrise   *string `json:"sunrise"`
	Sunset    *string `json:"sunset"`
	CivilDusk *string `json:"civil_dusk"`
	NautDusk  *string `json:"naut_dusk"`
	AstroDusk *string `json:"astro_dusk"`
}

// SunTimesResponse contains the solar event results.
type SunTimesResponse struct {
	Latitude  float64           `json:"latitude"`
	Longitude float64           `json:"longitude"`
	Timezone  string            `json:"timezone"`
	Days      []DayTimes        `json:"days"`
	Meta      map[string]string `json:"meta,omitempty"`
}

// SunTimesUseCase orchestrates solar event computation.
type SunTimesUseCase struct {
	locations store.LocationResolver
}

// NewSunTimesUseCase creates a new sun times use case. The location resolver
// may be nil if place-name queries are not needed.
func NewSunTimesUseCase(locations store.LocationResolver) *SunTimesUseCase {
	return &SunTimesUseCase{
		locations: locations,
	}
}

// Validate checks if the request is valid.
func (r *SunTimesRequest) Validate() error {
	// Check mutually exclusive parameters.
	hasLatLon := r.Lat != nil && r.Lon != nil
	hasPlace := r.Place != nil && *r.Place != ""

	if !hasLatLon && !hasPlace {
		return fmt.Errorf("either lat/lon or place must be provided")
	}
	if hasLatLon && hasPlace {
		return fmt.Errorf("lat/lon and place are mutually exclusive")
	}

	// The domain accepts any coordinates; physically meaningless ones are
	// rejected here at the boundary instead.
	if hasLatLon {
		if *r.Lat < -90 || *r.Lat > 90 {
			return fmt.Errorf("latitude must be between -90 and 90")
		}
		if *r.Lon < -180 || *r.Lon > 180 {
			return fmt.Errorf("longitude must be between -180 and 180")
		}
	}

	if r.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if r.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}
	if r.Days > 366 {
		return fmt.Errorf("days must be at most 366")
	}

	return nil
}

// Execute computes the solar events for each requested day.
func (uc *SunTimesUseCase) Execute(req SunTimesRequest) (*SunTimesResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	var lat, lon float64
	meta := make(map[string]string)

	if req.Place != nil && *req.Place != "" {
		if uc.locations == nil {
			return nil, fmt.Errorf("place queries are not configured - use lat/lon instead")
		}
		loc, err := uc.locations.Resolve(*req.Place)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve place %s: %w", *req.Place, err)
		}
		lat, lon = loc.Lat, loc.Lon
		meta["place"] = loc.Name
	} else {
		lat, lon = *req.Lat, *req.Lon
	}

	days := make([]DayTimes, 0, req.Days)
	for i := 0; i < req.Days; i++ {
		d := req.Date.AddDate(0, 0, i)
		st := domain.ComputeSunTimes(lat, lon, d)
		days = append(days, toDayTimes(d, st))
	}

	return &SunTimesResponse{
		Latitude:  lat,
		Longitude: lon,
		Timezone:  "UTC",
		Days:      days,
		Meta:      meta,
	}, nil
}

// toDayTimes formats a day's events for the JSON boundary.
func toDayTimes(date time.Time, st domain.SunTimes) DayTimes {
	opt := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		s := t.Format(time.RFC3339)
		return &s
	}

	return DayTimes{
		Date:      date.UTC().Format("2006-01-02"),
		Noon:      st.Noon.Format(time.RFC3339),
		Midnight:  st.Midnight.Format(time.RFC3339),
		AstroDawn: opt(st.AstroDawn),
		NautDawn:  opt(st.NautDawn),
		CivilDawn: opt(st.CivilDawn),
		Sunrise:   opt(st.Sunrise),
		Sunset:    opt(st.Sunset),
		CivilDusk: opt(st.CivilDusk),
		NautDusk:  opt(st.NautDusk),
		AstroDusk: opt(st.AstroDusk),
	}
}
