package domain

import (
	"math"
	"time"
)

// SunPosition describes the instantaneous geometry of the sun as seen from a
// point on the surface.
type SunPosition struct {
	DeclinationDeg float64
	EqOfTimeMin    float64
	HourAngleDeg   float64
	ElevationDeg   float64
	AzimuthDeg     float64
}

// ComputeSunPosition returns the solar position for the given location and
// instant. Latitude and longitude are in degrees. The azimuth is measured
// clockwise from north; near the poles it degenerates and may be NaN.
func ComputeSunPosition(latitude, longitude float64, at time.Time) SunPosition {
	tc := JulianDayFromInstant(at).Century().SubDay(J2000)

	decl := SunDeclination(tc)
	eqMin := EquationOfTime(tc).Deg() * 4

	// True solar time in minutes: clock minutes since UTC midnight shifted
	// by the longitude and the equation of time. The hour angle is its
	// distance from the meridian.
	utc := at.UTC()
	clockMin := float64(utc.Hour()*60+utc.Minute()) + float64(utc.Second())/60.0
	trueSolarMin := clockMin + 4*longitude + eqMin
	ha := AngleFromDeg(trueSolarMin/4 - 180)

	lat := AngleFromDeg(latitude)
	cosZen := lat.Sin()*decl.Sin() + lat.Cos()*decl.Cos()*ha.Cos()
	zen := AngleFromRad(math.Acos(cosZen))
	elevDeg := 90 - zen.Deg()

	azNum := decl.Sin() - lat.Sin()*cosZen
	azDen := lat.Cos() * zen.Sin()
	azDeg := AngleFromRad(math.Acos(azNum/azDen)).Deg()
	if ha.Deg() > 0 {
		azDeg = 360 - azDeg
	}

	return SunPosition{
		DeclinationDeg: decl.Deg(),
		EqOfTimeMin:    eqMin,
		HourAngleDeg:   ha.Deg(),
		ElevationDeg:   elevDeg,
		AzimuthDeg:     azDeg,
	}
}
