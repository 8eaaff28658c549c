package domain

import "math"

// Solar position model ported from the NOAA solar calculator:
// https://gml.noaa.gov/grad/solcalc/sunrise.html
//
// All functions are pure and take the time parameter as Julian centuries
// since J2000.0. The polynomial coefficients are empirical fits valid within
// a few centuries of the epoch; they must not be "simplified".

// sunGeometricMeanLongitude returns L0. The 360° modulo applies to the
// trailing polynomial term only, so the result can exceed 360°. Every
// consumer feeds it into a periodic function, so no further range reduction
// is done; the exact arithmetic routing is pinned by a regression test.
func sunGeometricMeanLongitude(tp JulianCentury) Angle {
	t := float64(tp)
	return AngleFromDeg(280.46646 + math.Mod(t*(36000.76983+t*0.0003032), 360))
}

// sunGeometricMeanAnomaly returns M.
func sunGeometricMeanAnomaly(tp JulianCentury) Angle {
	t := float64(tp)
	return AngleFromDeg(357.52911 + t*(35999.05029-0.0001537*t))
}

// earthOrbitEccentricity is unitless.
func earthOrbitEccentricity(tp JulianCentury) float64 {
	t := float64(tp)
	return 0.016708634 - t*(0.000042037+0.0000001267*t)
}

// sunEquationOfCenter returns C, the angular difference between the true and
// mean anomaly.
func sunEquationOfCenter(tp JulianCentury) Angle {
	an := sunGeometricMeanAnomaly(tp)
	t := float64(tp)
	return AngleFromDeg(
		an.Sin()*(1.914602-t*(0.004817+0.000014*t)) +
			an.Mul(2).Sin()*(0.019993-0.000101*t) +
			an.Mul(3).Sin()*0.000289)
}

// sunApparentLongitude corrects the true longitude for nutation and
// aberration using the longitude of the ascending lunar node.
func sunApparentLongitude(tp JulianCentury) Angle {
	trueLong := sunGeometricMeanLongitude(tp).Add(sunEquationOfCenter(tp))
	t := float64(tp)
	node := AngleFromDeg(125.04 - 1934.136*t)
	return trueLong.Sub(AngleFromDeg(0.00569 + 0.00478*node.Sin()))
}

// meanEclipticObliquity returns ε0 from its arcsecond polynomial.
func meanEclipticObliquity(tp JulianCentury) Angle {
	t := float64(tp)
	return AngleFromDeg(23.0 + (26.0+(21.448-t*(46.815+t*(0.00059-t*0.001813)))/60.0)/60.0)
}

// obliquityCorrection returns ε, the mean obliquity corrected for nutation.
func obliquityCorrection(tp JulianCentury) Angle {
	t := float64(tp)
	node := AngleFromDeg(125.04 - 1934.136*t)
	return meanEclipticObliquity(tp).Add(AngleFromDeg(0.00256 * node.Cos()))
}

// SunDeclination returns the sun's angular distance north of the celestial
// equator at tp.
func SunDeclination(tp JulianCentury) Angle {
	al := sunApparentLongitude(tp)
	oc := obliquityCorrection(tp)
	return AngleFromRad(math.Asin(oc.Sin() * al.Sin()))
}

// EquationOfTime returns the difference between apparent (sundial) and mean
// (clock) solar time at tp, as a time angle: a full rotation corresponds to
// one day, so minutes of time are Deg() * 4.
func EquationOfTime(tp JulianCentury) Angle {
	oc := obliquityCorrection(tp)
	ml := sunGeometricMeanLongitude(tp)
	ma := sunGeometricMeanAnomaly(tp)
	oe := earthOrbitEccentricity(tp)
	y := oc.Div(2).Tan() * oc.Div(2).Tan()

	et := y*ml.Mul(2).Sin() -
		2*oe*ma.Sin() +
		4*oe*y*ma.Sin()*ml.Mul(2).Cos() -
		0.5*y*y*ml.Mul(4).Sin() -
		1.25*oe*oe*ma.Mul(2).Sin()

	return AngleFromRad(et)
}
