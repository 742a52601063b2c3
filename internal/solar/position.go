package solar

import (
	"github.com/sun/sungo/internal/ephemeris"
	"github.com/sun/sungo/internal/transform"
)

// Position is the full solar position snapshot for one instant and observer.
// All angles are in degrees; the radius vector is in astronomical units.
type Position struct {
	JulianDay        float64 `json:"julian_day"`
	JulianMillennium float64 `json:"julian_millennium"`

	HeliocentricLongitude float64 `json:"heliocentric_longitude"`
	HeliocentricLatitude  float64 `json:"heliocentric_latitude"`
	RadiusVector          float64 `json:"radius_vector"`

	GeocentricLongitude float64 `json:"geocentric_longitude"`
	GeocentricLatitude  float64 `json:"geocentric_latitude"`

	NutationLongitude float64 `json:"nutation_longitude"`
	NutationObliquity float64 `json:"nutation_obliquity"`
	TrueObliquity     float64 `json:"true_obliquity"`

	ApparentLongitude float64 `json:"apparent_longitude"`
	RightAscension    float64 `json:"right_ascension"`
	Declination       float64 `json:"declination"`

	LocalHourAngle            float64 `json:"local_hour_angle"`
	TopocentricRightAscension float64 `json:"topocentric_right_ascension"`
	TopocentricDeclination    float64 `json:"topocentric_declination"`
	TopocentricHourAngle      float64 `json:"topocentric_hour_angle"`

	UncorrectedElevation float64 `json:"uncorrected_elevation"`
	Elevation            float64 `json:"elevation"`
	ZenithAngle          float64 `json:"zenith_angle"`
	AstronomersAzimuth   float64 `json:"astronomers_azimuth"`
	Azimuth              float64 `json:"azimuth"`
	SurfaceIncidence     float64 `json:"surface_incidence"`
}

// ComputePosition runs the full heliocentric-to-topocentric chain for the
// given inputs. It is a pure function: identical inputs produce bit-identical
// snapshots.
func ComputePosition(in PositionInputs) Position {
	jd := ephemeris.JulianDay(in.TimeMillis)
	jde := ephemeris.JulianEphemerisDay(jd, in.DeltaT)
	jce := ephemeris.JulianCentury(jde)
	jme := ephemeris.JulianMillennium(jce)

	l := ephemeris.HeliocentricLongitude(jme)
	b := ephemeris.HeliocentricLatitude(jme)
	r := ephemeris.RadiusVector(jme)
	theta := ephemeris.GeocentricLongitude(l)
	beta := ephemeris.GeocentricLatitude(b)

	deltaPsi, deltaEpsilon := ephemeris.Nutation(jce)
	epsilon := ephemeris.TrueObliquity(jme, deltaEpsilon)
	lambda := ephemeris.ApparentSunLongitude(theta, deltaPsi, ephemeris.AberrationCorrection(r))
	alpha := ephemeris.RightAscension(lambda, epsilon, beta)
	delta := ephemeris.Declination(beta, epsilon, lambda)

	// Sidereal time uses the Julian Century of the observed day, not the
	// ephemeris day.
	jc := ephemeris.JulianCentury(jd)
	nu := ephemeris.ApparentSiderealTime(jd, jc, deltaPsi, epsilon)
	h := transform.LocalHourAngle(nu, in.LongitudeDeg, alpha)

	obs := transform.NewObserver(in.LatitudeDeg, in.ElevationM)
	xi := transform.HorizontalParallax(r)
	topo := transform.Topocentric(obs, alpha, delta, xi, h)

	e0 := transform.ElevationAngle(in.LatitudeDeg, topo.DeclinationDeg, topo.HourAngleDeg)
	e := e0 + transform.RefractionCorrection(in.PressureMb, in.TemperatureC, e0, in.H0Prime)
	zenith := transform.ZenithAngle(e)

	gamma := transform.AstronomersAzimuth(topo.HourAngleDeg, in.LatitudeDeg, topo.DeclinationDeg)

	return Position{
		JulianDay:                 jd,
		JulianMillennium:          jme,
		HeliocentricLongitude:     l,
		HeliocentricLatitude:      b,
		RadiusVector:              r,
		GeocentricLongitude:       theta,
		GeocentricLatitude:        beta,
		NutationLongitude:         deltaPsi,
		NutationObliquity:         deltaEpsilon,
		TrueObliquity:             epsilon,
		ApparentLongitude:         lambda,
		RightAscension:            alpha,
		Declination:               delta,
		LocalHourAngle:            h,
		TopocentricRightAscension: topo.RightAscensionDeg,
		TopocentricDeclination:    topo.DeclinationDeg,
		TopocentricHourAngle:      topo.HourAngleDeg,
		UncorrectedElevation:      e0,
		Elevation:                 e,
		ZenithAngle:               zenith,
		AstronomersAzimuth:        gamma,
		Azimuth:                   transform.Azimuth(gamma),
		SurfaceIncidence:          transform.SurfaceIncidence(zenith, in.SurfaceSlopeDeg, gamma, in.SurfaceAzimuthDeg),
	}
}
