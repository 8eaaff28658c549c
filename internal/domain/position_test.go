package domain

import (
	"math"
	"testing"
	"time"
)

func TestComputeSunPosition(t *testing.T) {
	at := time.Date(2022, 10, 15, 12, 0, 0, 0, time.UTC)
	pos := ComputeSunPosition(bielefeldLat, bielefeldLon, at)

	want := SunPosition{
		DeclinationDeg: -8.611307910194371,
		EqOfTimeMin:    14.23772602815839,
		HourAngleDeg:   12.094521507039588,
		ElevationDeg:   28.48279979055672,
		AzimuthDeg:     193.63236002436702,
	}

	check := func(name string, got, want float64) {
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("%s: expected %.12f, got %.12f", name, want, got)
		}
	}
	check("declination", pos.DeclinationDeg, want.DeclinationDeg)
	check("equation of time", pos.EqOfTimeMin, want.EqOfTimeMin)
	check("hour angle", pos.HourAngleDeg, want.HourAngleDeg)
	check("elevation", pos.ElevationDeg, want.ElevationDeg)
	check("azimuth", pos.AzimuthDeg, want.AzimuthDeg)
}

// At solar noon the sun sits on the meridian: hour angle near zero, azimuth
// near due south (for a northern-hemisphere observer), elevation at its
// daily maximum of 90 - lat + decl.
func TestComputeSunPosition_AtSolarNoon(t *testing.T) {
	st := ComputeSunTimes(bielefeldLat, bielefeldLon, utcDate(2022, 10, 15))
	pos := ComputeSunPosition(bielefeldLat, bielefeldLon, st.Noon)

	if math.Abs(pos.HourAngleDeg) > 0.05 {
		t.Errorf("hour angle at solar noon: expected ~0, got %.6f", pos.HourAngleDeg)
	}
	if math.Abs(pos.AzimuthDeg-180) > 0.1 {
		t.Errorf("azimuth at solar noon: expected ~180, got %.6f", pos.AzimuthDeg)
	}

	wantElev := 90 - bielefeldLat + pos.DeclinationDeg
	if math.Abs(pos.ElevationDeg-wantElev) > 0.01 {
		t.Errorf("elevation at solar noon: expected %.4f, got %.4f", wantElev, pos.ElevationDeg)
	}
}

// Before local noon the hour angle is negative and the azimuth east of
// south; afterwards the signs flip.
func TestComputeSunPosition_MorningEvening(t *testing.T) {
	morning := ComputeSunPosition(bielefeldLat, bielefeldLon, time.Date(2022, 10, 15, 8, 0, 0, 0, time.UTC))
	evening := ComputeSunPosition(bielefeldLat, bielefeldLon, time.Date(2022, 10, 15, 15, 0, 0, 0, time.UTC))

	if morning.HourAngleDeg >= 0 {
		t.Errorf("morning hour angle: expected negative, got %.4f", morning.HourAngleDeg)
	}
	if evening.HourAngleDeg <= 0 {
		t.Errorf("evening hour angle: expected positive, got %.4f", evening.HourAngleDeg)
	}
	if morning.AzimuthDeg >= 180 {
		t.Errorf("morning azimuth: expected east of south, got %.4f", morning.AzimuthDeg)
	}
	if evening.AzimuthDeg <= 180 {
		t.Errorf("evening azimuth: expected west of south, got %.4f", evening.AzimuthDeg)
	}
}
