package domain

import (
	"math"
	"time"
)

const (
	// unixEpochJD is 1970-01-01T00:00Z expressed as a Julian day.
	unixEpochJD = 2440587.5

	// daysPerCentury is the length of a Julian century in days.
	daysPerCentury = 36525.0
)

// J2000 is the Julian day of the J2000.0 epoch, the zero point of the
// polynomial time parameter used by the solar position model.
const J2000 JulianDay = 2451545.0

// JulianDay counts days (possibly fractional) since the Julian epoch. Small
// values double as day-fraction offsets from a day's UTC midnight.
type JulianDay float64

// JulianCentury counts centuries of 36525 days on the same epoch.
type JulianCentury float64

// JulianDayFromDate returns the Julian day of the given date's UTC midnight.
// The time-of-day component of t is discarded.
func JulianDayFromDate(t time.Time) JulianDay {
	y, m, d := t.UTC().Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return JulianDay(float64(midnight.Unix())/86400.0 + unixEpochJD)
}

// JulianDayFromInstant returns the fractional Julian day of an instant, with
// second resolution.
func JulianDayFromInstant(t time.Time) JulianDay {
	return JulianDay(float64(t.UTC().Unix())/86400.0 + unixEpochJD)
}

// JulianCenturyFromDate returns the Julian century of the given date's UTC
// midnight.
func JulianCenturyFromDate(t time.Time) JulianCentury {
	return JulianDayFromDate(t).Century()
}

// JulianDayFromAngle treats an angle as a fraction of a full rotation and
// returns it as a fraction of a day. This is how hour-angle and longitude
// results become time offsets.
func JulianDayFromAngle(a Angle) JulianDay {
	return JulianDay(a.Deg() / 360.0)
}

// Century converts a day count to centuries.
func (d JulianDay) Century() JulianCentury {
	return JulianCentury(float64(d) / daysPerCentury)
}

// Day converts a century count to days.
func (c JulianCentury) Day() JulianDay {
	return JulianDay(float64(c) * daysPerCentury)
}

// Duration converts a day count to an elapsed duration with whole-second
// resolution. Seconds are obtained by flooring, not truncating, which
// matters for negative day fractions.
func (d JulianDay) Duration() time.Duration {
	sec := math.Floor(float64(d) * 86400.0)
	return time.Duration(sec) * time.Second
}

// Add returns c + o.
func (c JulianCentury) Add(o JulianCentury) JulianCentury { return c + o }

// Sub returns c - o.
func (c JulianCentury) Sub(o JulianCentury) JulianCentury { return c - o }

// AddDay adds a day-scale correction to a century-scale baseline. The day
// operand is converted before combining.
func (c JulianCentury) AddDay(d JulianDay) JulianCentury { return c + d.Century() }

// SubDay subtracts a day-scale correction from a century-scale baseline.
func (c JulianCentury) SubDay(d JulianDay) JulianCentury { return c - d.Century() }
