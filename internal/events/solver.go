// Package events locates the sunrise, solar transit and sunset instants of a
// UT day using the three-day sampling and interpolation procedure from
// appendix A of Reda & Andreas (NREL, 2004).
package events

import (
	"math"

	"github.com/sun/sungo/internal/angles"
	"github.com/sun/sungo/internal/ephemeris"
	"github.com/sun/sungo/internal/solar"
	"github.com/sun/sungo/internal/transform"
)

// siderealRatePerDay is the advance of Greenwich sidereal time per UT day,
// in degrees (A7).
const siderealRatePerDay = 360.985647

// Times holds the sunrise, transit and sunset instants as unix milliseconds
// on the same timeline as the input.
type Times struct {
	SunriseMillis int64 `json:"sunrise_millis"`
	TransitMillis int64 `json:"transit_millis"`
	SunsetMillis  int64 `json:"sunset_millis"`
}

// hourAngleAtElevation computes the local hour angle H0 at which the Sun
// crosses the elevation h0Prime, in degrees [0, 180) (A4). The second return
// is false when the Sun stays above or below h0Prime for the whole day.
func hourAngleAtElevation(latitudeDeg, declination, h0Prime float64) (float64, bool) {
	phi := angles.Deg2Rad(latitudeDeg)
	d := angles.Deg2Rad(declination)
	aux := (math.Sin(angles.Deg2Rad(h0Prime)) - math.Sin(phi)*math.Sin(d)) / (math.Cos(phi) * math.Cos(d))
	if aux < -1 || aux > 1 {
		return 0, false
	}
	return angles.LimitDegrees180(angles.Rad2Deg(math.Acos(aux))), true
}

// wrapDifference re-wraps a first difference of sampled right ascensions or
// declinations whose magnitude exceeds 2 degrees, which happens when the
// angle crossed its 0/360 wraparound between consecutive days (A9, A10).
func wrapDifference(d float64) float64 {
	if math.Abs(d) > 2 {
		return angles.LimitZeroToOne(d)
	}
	return d
}

// Compute locates sunrise, transit and sunset for the UT day containing
// in.TimeMillis. The second return is false when the Sun never crosses
// in.H0Prime that day (polar day or polar night relative to the threshold);
// callers are expected to check it routinely.
func Compute(in solar.EventInputs) (Times, bool) {
	ut0 := ephemeris.ZeroUT(in.TimeMillis)

	// Apparent sidereal time at Greenwich at 0h UT, with the caller's
	// delta-T; the three-day right ascension/declination samples are taken
	// at 0 TT instead, so they use delta-T of zero. The caller's delta-T
	// re-enters through the n terms below (A8).
	nu := ephemeris.GreenwichSiderealTime(ut0, in.DeltaT)

	var alpha, delta [3]float64
	for i, dayOffset := range [3]int64{-ephemeris.DayMillis, 0, ephemeris.DayMillis} {
		alpha[i], delta[i] = ephemeris.SunCoordinates(ut0+dayOffset, 0)
	}
	const yesterday, today, tomorrow = 0, 1, 2

	// Approximate transit as fraction of day (A3).
	m0 := (alpha[today] - in.LongitudeDeg - nu) / 360

	h0, crosses := hourAngleAtElevation(in.LatitudeDeg, delta[today], in.H0Prime)
	if !crosses {
		return Times{}, false
	}

	// Approximate transit, sunrise and sunset fractions (A5, A6).
	m := [3]float64{
		angles.LimitZeroToOne(m0),
		angles.LimitZeroToOne(m0 - h0/360),
		angles.LimitZeroToOne(m0 + h0/360),
	}

	a := wrapDifference(alpha[today] - alpha[yesterday])
	b := wrapDifference(alpha[tomorrow] - alpha[today])
	aPrime := wrapDifference(delta[today] - delta[yesterday])
	bPrime := wrapDifference(delta[tomorrow] - delta[today])
	c := b - a
	cPrime := bPrime - aPrime

	// Interpolate right ascension and declination at each candidate instant
	// (A9, A10), then form the local hour angle (A11) and sun altitude.
	var hPrime, altitude, deltaPrime [3]float64
	for i := range m {
		nuI := nu + siderealRatePerDay*m[i]
		n := m[i] + in.DeltaT/86400
		alphaI := alpha[today] + (n*(a+b+c*n))/2
		deltaPrime[i] = delta[today] + (n*(aPrime+bPrime+cPrime*n))/2
		hPrime[i] = angles.LimitDegreesPm180(nuI + in.LongitudeDeg - alphaI)
		altitude[i] = transform.ElevationAngle(in.LatitudeDeg, deltaPrime[i], hPrime[i])
	}

	// Transit needs no elevation correction (A13); rise and set get a
	// single first-order refinement toward the exact crossing (A14, A15).
	transit := m[0] - hPrime[0]/360
	rise := riseSetCorrection(m[1], altitude[1], deltaPrime[1], in.LatitudeDeg, hPrime[1], in.H0Prime)
	set := riseSetCorrection(m[2], altitude[2], deltaPrime[2], in.LatitudeDeg, hPrime[2], in.H0Prime)

	t := Times{
		SunriseMillis: ut0 + roundDayFraction(rise),
		TransitMillis: ut0 + roundDayFraction(transit),
		SunsetMillis:  ut0 + roundDayFraction(set),
	}
	// A rise fraction at or past the transit wrapped around midnight and
	// belongs to the previous day; symmetrically for the set fraction.
	if rise >= transit {
		t.SunriseMillis -= ephemeris.DayMillis
	}
	if set <= transit {
		t.SunsetMillis += ephemeris.DayMillis
	}
	return t, true
}

// riseSetCorrection refines an approximate crossing fraction m toward the
// instant where the sun altitude equals h0Prime (A14, A15).
func riseSetCorrection(m, altitude, declination, latitudeDeg, hPrime, h0Prime float64) float64 {
	phi := angles.Deg2Rad(latitudeDeg)
	return m + (altitude-h0Prime)/(360*math.Cos(angles.Deg2Rad(declination))*math.Cos(phi)*math.Sin(angles.Deg2Rad(hPrime)))
}

func roundDayFraction(f float64) int64 {
	return int64(math.Round(f * float64(ephemeris.DayMillis)))
}
