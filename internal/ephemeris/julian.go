package ephemeris

// Time scale conversions from Reda & Andreas, "Solar Position Algorithm for
// Solar Radiation Applications" (NREL, 2004). Equation numbers in comments
// refer to that paper.

// j2000 is the Julian Date of the J2000.0 epoch.
const j2000 = 2451545.0

// DayMillis is the length of a UT day in milliseconds.
const DayMillis int64 = 24 * 60 * 60 * 1000

// JulianDay converts unix time in milliseconds to Julian Day (JD).
func JulianDay(timeMillis int64) float64 {
	return float64(timeMillis)/86400000.0 + 2440587.5
}

// JulianEphemerisDay computes JDE from the Julian Day and delta-T in seconds (5).
func JulianEphemerisDay(jd, deltaT float64) float64 {
	return jd + deltaT/86400.0
}

// JulianCentury computes the Julian Century from a Julian Day (6), or the
// Julian Ephemeris Century from a Julian Ephemeris Day (7).
func JulianCentury(jd float64) float64 {
	return (jd - j2000) / 36525.0
}

// JulianMillennium computes the Julian Ephemeris Millennium from the Julian
// Ephemeris Century (8).
func JulianMillennium(jce float64) float64 {
	return jce / 10.0
}

// ZeroUT truncates a unix millisecond time to 0h UT of the same day.
func ZeroUT(timeMillis int64) int64 {
	mod := timeMillis % DayMillis
	if mod < 0 {
		mod += DayMillis
	}
	return timeMillis - mod
}
