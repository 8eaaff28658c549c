package domain

import (
	"math"
	"time"
)

// Event names one of the ten solar events computed per day.
type Event int

// The ten events, in chronological order for a non-polar day.
const (
	EventAstroDawn Event = iota
	EventNautDawn
	EventCivilDawn
	EventSunrise
	EventNoon
	EventSunset
	EventCivilDusk
	EventNautDusk
	EventAstroDusk
	EventMidnight
)

// Sun elevation thresholds in degrees from the horizon. The sunrise/sunset
// value accounts for the solar disc radius and average atmospheric
// refraction.
const (
	AstroTwilightElev = -18.0
	NautTwilightElev  = -12.0
	CivilTwilightElev = -6.0
	DaytimeElev       = -0.833
)

// eventTarget describes the threshold crossing an elevation-based event
// stands for.
type eventTarget struct {
	ElevationDeg float64 // threshold relative to the horizon
	Dusk         bool    // true for the setting-side crossing
}

// eventTargets is the exhaustive catalog of elevation-based events. Noon and
// midnight are meridian events and have no entry.
var eventTargets = map[Event]eventTarget{
	EventAstroDawn: {AstroTwilightElev, false},
	EventNautDawn:  {NautTwilightElev, false},
	EventCivilDawn: {CivilTwilightElev, false},
	EventSunrise:   {DaytimeElev, false},
	EventSunset:    {DaytimeElev, true},
	EventCivilDusk: {CivilTwilightElev, true},
	EventNautDusk:  {NautTwilightElev, true},
	EventAstroDusk: {AstroTwilightElev, true},
}

// targetAngle converts an event's threshold into the zenith-relative target
// passed to the solver. Dawn-side targets are negative so that the hour
// angle comes back positive; see hourAngle.
func targetAngle(t eventTarget) Angle {
	if t.Dusk {
		return AngleFromDeg(90.0 - t.ElevationDeg)
	}
	return AngleFromDeg(-90.0 + t.ElevationDeg)
}

// Target returns the elevation threshold (degrees from the horizon) of an
// elevation-based event and whether it is on the dusk side. ok is false for
// noon and midnight, which are not elevation crossings.
func (e Event) Target() (elevationDeg float64, dusk, ok bool) {
	t, ok := eventTargets[e]
	return t.ElevationDeg, t.Dusk, ok
}

// String returns the wire name of the event.
func (e Event) String() string {
	switch e {
	case EventAstroDawn:
		return "astro_dawn"
	case EventNautDawn:
		return "naut_dawn"
	case EventCivilDawn:
		return "civil_dawn"
	case EventSunrise:
		return "sunrise"
	case EventNoon:
		return "noon"
	case EventSunset:
		return "sunset"
	case EventCivilDusk:
		return "civil_dusk"
	case EventNautDusk:
		return "naut_dusk"
	case EventAstroDusk:
		return "astro_dusk"
	case EventMidnight:
		return "midnight"
	default:
		return "unknown"
	}
}

// AllEvents lists the ten events in chronological order for a non-polar day.
func AllEvents() []Event {
	return []Event{
		EventAstroDawn, EventNautDawn, EventCivilDawn, EventSunrise,
		EventNoon, EventSunset,
		EventCivilDusk, EventNautDusk, EventAstroDusk, EventMidnight,
	}
}

// SunTimes holds the UTC instants of a day's solar events. Elevation-based
// events are nil when the sun never crosses the event's threshold on that
// day (polar day or polar night).
type SunTimes struct {
	Noon      time.Time
	Midnight  time.Time
	AstroDawn *time.Time
	NautDawn  *time.Time
	CivilDawn *time.Time
	Sunrise   *time.Time
	Sunset    *time.Time
	CivilDusk *time.Time
	NautDusk  *time.Time
	AstroDusk *time.Time
}

// noonAngle is solar noon expressed as a time angle: half a rotation past
// midnight.
var noonAngle = AngleFromRad(math.Pi)

// hourAngle returns the angular distance of the sun from the local meridian
// at the instant it crosses targetElevation. The result takes its sign from
// the negated target elevation, so dawn-side targets (negative) produce
// positive hour angles and a single formula serves both sides of the day.
// When the acos argument leaves [-1, 1] the result is NaN: the sun never
// reaches targetElevation on this day at this latitude.
func hourAngle(tp JulianCentury, latitude, targetElevation Angle) Angle {
	decl := SunDeclination(tp)
	omega := math.Acos(
		targetElevation.Cos()/(latitude.Cos()*decl.Cos()) - latitude.Tan()*decl.Tan())
	return AngleFromRad(math.Copysign(omega, -targetElevation.Rad()))
}

// TimeOfSolarNoon returns the offset of true solar noon from the day's UTC
// midnight, as a fraction of a day. day is the midnight baseline in Julian
// centuries since J2000.0.
func TimeOfSolarNoon(day JulianCentury, longitude Angle) JulianDay {
	// First approximation from the longitude alone.
	tp := day.AddDay(JulianDayFromAngle(noonAngle.Sub(longitude)))

	// Refine with the equation of time at the approximate instant, then once
	// more at the refined instant. Two passes are enough: the equation of
	// time varies on a timescale of days.
	eq := EquationOfTime(tp)
	tp = day.AddDay(JulianDayFromAngle(noonAngle.Sub(longitude).Sub(eq)))

	eq = EquationOfTime(tp)
	return JulianDayFromAngle(noonAngle.Sub(longitude).Sub(eq))
}

// TimeOfSolarElevation returns the offset from the day's UTC midnight of the
// instant the sun crosses targetElevation, as a fraction of a day. noon is
// the instant of solar noon in Julian centuries since J2000.0. A NaN hour
// angle (threshold never crossed) propagates into the result.
func TimeOfSolarElevation(noon JulianCentury, latitude, longitude, targetElevation Angle) JulianDay {
	// Approximate the crossing by applying the hour angle at solar noon.
	angle := hourAngle(noon, latitude, targetElevation)
	tp := noon.SubDay(JulianDayFromAngle(angle))

	// Second pass: equation of time and hour angle at the approximate
	// crossing instant.
	eq := EquationOfTime(tp)
	angle = hourAngle(tp, latitude, targetElevation)
	return JulianDayFromAngle(noonAngle.Sub(longitude).Sub(eq).Sub(angle))
}

// ComputeSunTimes computes all ten events for the given location and date.
// Latitude and longitude are in degrees; the date is interpreted at UTC
// midnight. Inputs are not range-checked: physically meaningless coordinates
// produce meaningless (possibly all-nil) results.
func ComputeSunTimes(latitude, longitude float64, date time.Time) SunTimes {
	lat := AngleFromDeg(latitude)
	lon := AngleFromDeg(longitude)

	y, m, d := date.UTC().Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	// The day's UTC midnight in centuries since J2000.0 is the baseline all
	// offsets are measured from.
	day := JulianCenturyFromDate(midnight).SubDay(J2000)

	noonOffset := TimeOfSolarNoon(day, lon)
	noonCentury := day.AddDay(noonOffset)

	st := SunTimes{Noon: midnight.Add(noonOffset.Duration())}
	st.Midnight = st.Noon.Add(12 * time.Hour)

	at := func(ev Event) *time.Time {
		offset := TimeOfSolarElevation(noonCentury, lat, lon, targetAngle(eventTargets[ev]))
		if math.IsNaN(float64(offset)) {
			return nil
		}
		t := midnight.Add(offset.Duration())
		return &t
	}

	st.AstroDawn = at(EventAstroDawn)
	st.NautDawn = at(EventNautDawn)
	st.CivilDawn = at(EventCivilDawn)
	st.Sunrise = at(EventSunrise)
	st.Sunset = at(EventSunset)
	st.CivilDusk = at(EventCivilDusk)
	st.NautDusk = at(EventNautDusk)
	st.AstroDusk = at(EventAstroDusk)
	return st
}
