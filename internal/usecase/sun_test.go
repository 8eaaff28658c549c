package usecase

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"go.ngs.io/solar-api/internal/adapter/store"
)

func f64(v float64) *float64 { return &v }
func str(s string) *string   { return &s }

// fakeResolver serves a fixed set of places.
type fakeResolver struct {
	places map[string]store.Location
}

func (r *fakeResolver) Resolve(place string) (*store.Location, error) {
	if loc, ok := r.places[strings.ToLower(place)]; ok {
		return &loc, nil
	}
	return nil, fmt.Errorf("unknown place: %s", place)
}

func (r *fakeResolver) ListPlaces() ([]string, error) {
	names := make([]string, 0, len(r.places))
	for name := range r.places {
		names = append(names, name)
	}
	return names, nil
}

func TestSunTimesRequest_Validate(t *testing.T) {
	date := time.Date(2022, 10, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     SunTimesRequest
		wantErr bool
	}{
		{"valid lat/lon", SunTimesRequest{Lat: f64(52), Lon: f64(8.5), Date: date, Days: 1}, false},
		{"valid place", SunTimesRequest{Place: str("bielefeld"), Date: date, Days: 1}, false},
		{"no location", SunTimesRequest{Date: date, Days: 1}, true},
		{"both locations", SunTimesRequest{Lat: f64(52), Lon: f64(8.5), Place: str("x"), Date: date, Days: 1}, true},
		{"latitude out of range", SunTimesRequest{Lat: f64(91), Lon: f64(0), Date: date, Days: 1}, true},
		{"longitude out of range", SunTimesRequest{Lat: f64(0), Lon: f64(-181), Date: date, Days: 1}, true},
		{"missing date", SunTimesRequest{Lat: f64(52), Lon: f64(8.5), Days: 1}, true},
		{"zero days", SunTimesRequest{Lat: f64(52), Lon: f64(8.5), Date: date, Days: 0}, true},
		{"too many days", SunTimesRequest{Lat: f64(52), Lon: f64(8.5), Date: date, Days: 367}, true},
	}

	for _, tt := range tests {
		err := tt.req.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: expected error=%v, got %v", tt.name, tt.wantErr, err)
		}
	}
}

func TestExecute_LatLon(t *testing.T) {
	uc := NewSunTimesUseCase(nil)

	resp, err := uc.Execute(SunTimesRequest{
		Lat:  f64(52.02182),
		Lon:  f64(8.53509),
		Date: time.Date(2022, 10, 15, 0, 0, 0, 0, time.UTC),
		Days: 1,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(resp.Days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(resp.Days))
	}
	day := resp.Days[0]
	if day.Date != "2022-10-15" {
		t.Errorf("expected date 2022-10-15, got %s", day.Date)
	}
	if day.Noon != "2022-10-15T11:11:37Z" {
		t.Errorf("unexpected noon: %s", day.Noon)
	}
	if day.Sunrise == nil || day.Sunset == nil {
		t.Error("expected sunrise and sunset to be present")
	}
	if resp.Timezone != "UTC" {
		t.Errorf("expected timezone UTC, got %s", resp.Timezone)
	}
}

// Polar-day events surface as nulls at the boundary, never as sentinel
// timestamps.
func TestExecute_PolarDay(t *testing.T) {
	uc := NewSunTimesUseCase(nil)

	resp, err := uc.Execute(SunTimesRequest{
		Lat:  f64(80.0),
		Lon:  f64(0.0),
		Date: time.Date(2022, 6, 21, 0, 0, 0, 0, time.UTC),
		Days: 1,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	day := resp.Days[0]
	for name, v := range map[string]*string{
		"astro_dawn": day.AstroDawn,
		"naut_dawn":  day.NautDawn,
		"civil_dawn": day.CivilDawn,
		"sunrise":    day.Sunrise,
		"sunset":     day.Sunset,
		"civil_dusk": day.CivilDusk,
		"naut_dusk":  day.NautDusk,
		"astro_dusk": day.AstroDusk,
	} {
		if v != nil {
			t.Errorf("%s: expected null during polar day, got %s", name, *v)
		}
	}
	if day.Noon == "" || day.Midnight == "" {
		t.Error("noon and midnight must always be present")
	}
}

func TestExecute_MultiDay(t *testing.T) {
	uc := NewSunTimesUseCase(nil)

	resp, err := uc.Execute(SunTimesRequest{
		Lat:  f64(52.02182),
		Lon:  f64(8.53509),
		Date: time.Date(2022, 10, 15, 0, 0, 0, 0, time.UTC),
		Days: 3,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(resp.Days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(resp.Days))
	}
	want := []string{"2022-10-15", "2022-10-16", "2022-10-17"}
	for i, day := range resp.Days {
		if day.Date != want[i] {
			t.Errorf("day %d: expected %s, got %s", i, want[i], day.Date)
		}
	}
}

func TestExecute_Place(t *testing.T) {
	uc := NewSunTimesUseCase(&fakeResolver{
		places: map[string]store.Location{
			"bielefeld": {Name: "bielefeld", Lat: 52.02182, Lon: 8.53509},
		},
	})

	resp, err := uc.Execute(SunTimesRequest{
		Place: str("Bielefeld"),
		Date:  time.Date(2022, 10, 15, 0, 0, 0, 0, time.UTC),
		Days:  1,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if resp.Latitude != 52.02182 || resp.Longitude != 8.53509 {
		t.Errorf("unexpected coordinates: %v, %v", resp.Latitude, resp.Longitude)
	}
	if resp.Meta["place"] != "bielefeld" {
		t.Errorf("expected place meta, got %v", resp.Meta)
	}

	if _, err := uc.Execute(SunTimesRequest{
		Place: str("atlantis"),
		Date:  time.Date(2022, 10, 15, 0, 0, 0, 0, time.UTC),
		Days:  1,
	}); err == nil {
		t.Error("expected error for unknown place")
	}
}

func TestExecute_PlaceWithoutResolver(t *testing.T) {
	uc := NewSunTimesUseCase(nil)

	if _, err := uc.Execute(SunTimesRequest{
		Place: str("bielefeld"),
		Date:  time.Date(2022, 10, 15, 0, 0, 0, 0, time.UTC),
		Days:  1,
	}); err == nil {
		t.Error("expected error when no resolver is configured")
	}
}
