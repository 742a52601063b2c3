// Package solar orchestrates the position engines into full sun position
// snapshots and derives the equation of time.
package solar

import "fmt"

// Standard sun elevation thresholds, in degrees, used to define rise/set and
// the twilight variants.
const (
	// SunRadius is the apparent solar radius.
	SunRadius = 0.26667
	// RiseSetRefraction is the atmospheric refraction typically adopted at
	// sunrise and sunset times.
	RiseSetRefraction = 0.5667
	// RiseSetElevation is the sun elevation defining ordinary sunrise and
	// sunset: the upper limb touching the horizon through refraction.
	RiseSetElevation = -(SunRadius + RiseSetRefraction)
	// CivilTwilight, NauticalTwilight and AstronomicalTwilight are the
	// conventional twilight elevations.
	CivilTwilight        = -6.0
	NauticalTwilight     = -12.0
	AstronomicalTwilight = -18.0
)

// EventInputs holds the parameters needed to locate sunrise, transit and
// sunset: a unix millisecond time identifying the UT day, the observer's
// coordinates, the terrestrial-time offset and the sun elevation threshold.
type EventInputs struct {
	TimeMillis   int64
	LongitudeDeg float64 // positive east of Greenwich
	LatitudeDeg  float64 // positive north
	DeltaT       float64 // TT - UT, seconds
	H0Prime      float64 // sun elevation defining rise/set, degrees
}

// NewEventInputs validates the coordinate ranges and builds an EventInputs.
func NewEventInputs(timeMillis int64, longitudeDeg, latitudeDeg, deltaT, h0Prime float64) (EventInputs, error) {
	if longitudeDeg < -180 || longitudeDeg > 180 {
		return EventInputs{}, fmt.Errorf("longitude %v out of range [-180, 180]", longitudeDeg)
	}
	if latitudeDeg < -90 || latitudeDeg > 90 {
		return EventInputs{}, fmt.Errorf("latitude %v out of range [-90, 90]", latitudeDeg)
	}
	return EventInputs{
		TimeMillis:   timeMillis,
		LongitudeDeg: longitudeDeg,
		LatitudeDeg:  latitudeDeg,
		DeltaT:       deltaT,
		H0Prime:      h0Prime,
	}, nil
}

// PositionInputs extends EventInputs with the atmosphere and surface
// parameters needed for a full position snapshot.
type PositionInputs struct {
	EventInputs
	PressureMb        float64
	TemperatureC      float64
	ElevationM        float64
	SurfaceSlopeDeg   float64 // slope from horizontal, -90 to 90
	SurfaceAzimuthDeg float64 // surface normal rotation from south, -180 to 180
}

// NewPositionInputs validates all parameter ranges and builds a
// PositionInputs.
func NewPositionInputs(timeMillis int64, longitudeDeg, latitudeDeg, pressureMb, elevationM, temperatureC, surfaceSlopeDeg, surfaceAzimuthDeg, deltaT, h0Prime float64) (PositionInputs, error) {
	ev, err := NewEventInputs(timeMillis, longitudeDeg, latitudeDeg, deltaT, h0Prime)
	if err != nil {
		return PositionInputs{}, err
	}
	if surfaceSlopeDeg < -90 || surfaceSlopeDeg > 90 {
		return PositionInputs{}, fmt.Errorf("surface slope %v out of range [-90, 90]", surfaceSlopeDeg)
	}
	if surfaceAzimuthDeg < -180 || surfaceAzimuthDeg > 180 {
		return PositionInputs{}, fmt.Errorf("surface azimuth rotation %v out of range [-180, 180]", surfaceAzimuthDeg)
	}
	return PositionInputs{
		EventInputs:       ev,
		PressureMb:        pressureMb,
		TemperatureC:      temperatureC,
		ElevationM:        elevationM,
		SurfaceSlopeDeg:   surfaceSlopeDeg,
		SurfaceAzimuthDeg: surfaceAzimuthDeg,
	}, nil
}
