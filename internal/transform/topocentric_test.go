package transform

import (
	"math"
	"testing"
)

// Geocentric sun coordinates for the Reda & Andreas worked example
// (2003-10-17 19:30:30 UTC, observer near Denver): right ascension and
// declination of the sun, apparent Greenwich sidereal time, observer
// longitude (positive east), latitude, elevation in meters and the
// Earth-Sun distance in AU.
const (
	refAlpha  = 202.22741
	refDelta  = -9.31434
	refNu     = 318.5119
	refLon    = -105.1786
	refLat    = 39.742476
	refElev   = 1830.14
	refRadius = 0.9965422974
)

func TestHorizontalParallax(t *testing.T) {
	xi := HorizontalParallax(refRadius)
	if math.Abs(xi-0.0024512) > 1e-6 {
		t.Errorf("HorizontalParallax = %.7f, want 0.0024512", xi)
	}
}

func TestLocalHourAngle(t *testing.T) {
	h := LocalHourAngle(refNu, refLon, refAlpha)
	if math.Abs(h-11.105900) > 1e-4 {
		t.Errorf("LocalHourAngle = %.6f, want 11.105900", h)
	}
}

func TestTopocentric(t *testing.T) {
	obs := NewObserver(refLat, refElev)
	xi := HorizontalParallax(refRadius)
	h := LocalHourAngle(refNu, refLon, refAlpha)

	pos := Topocentric(obs, refAlpha, refDelta, xi, h)

	if math.Abs(pos.RightAscensionDeg-202.22704) > 1e-4 {
		t.Errorf("topocentric right ascension = %.6f, want 202.22704", pos.RightAscensionDeg)
	}
	if math.Abs(pos.DeclinationDeg-(-9.316179)) > 1e-4 {
		t.Errorf("topocentric declination = %.6f, want -9.316179", pos.DeclinationDeg)
	}
	if math.Abs(pos.HourAngleDeg-11.10629) > 1e-4 {
		t.Errorf("topocentric hour angle = %.6f, want 11.10629", pos.HourAngleDeg)
	}
}

func TestElevationAngle(t *testing.T) {
	obs := NewObserver(refLat, refElev)
	xi := HorizontalParallax(refRadius)
	h := LocalHourAngle(refNu, refLon, refAlpha)
	pos := Topocentric(obs, refAlpha, refDelta, xi, h)

	e0 := ElevationAngle(refLat, pos.DeclinationDeg, pos.HourAngleDeg)
	if math.Abs(e0-39.872046) > 1e-3 {
		t.Errorf("ElevationAngle = %.6f, want 39.872046", e0)
	}
}

func TestNewObserverEquatorPole(t *testing.T) {
	// On the equator the flattened-Earth term x is ~1 and y is ~0; at the
	// pole x is ~0 and y is ~flattening.
	eq := NewObserver(0, 0)
	if math.Abs(eq.X-1) > 1e-9 || math.Abs(eq.Y) > 1e-9 {
		t.Errorf("equator observer x=%.9f y=%.9f, want 1 and 0", eq.X, eq.Y)
	}

	pole := NewObserver(90, 0)
	if math.Abs(pole.X) > 1e-9 || math.Abs(pole.Y-flattening) > 1e-9 {
		t.Errorf("pole observer x=%.9f y=%.9f, want 0 and %v", pole.X, pole.Y, flattening)
	}
}

func TestZeroParallaxLeavesCoordinates(t *testing.T) {
	// With zero parallax the topocentric coordinates collapse back to the
	// geocentric ones.
	obs := NewObserver(refLat, refElev)
	pos := Topocentric(obs, refAlpha, refDelta, 0, 30)

	if math.Abs(pos.RightAscensionDeg-refAlpha) > 1e-9 {
		t.Errorf("right ascension shifted to %.9f with zero parallax", pos.RightAscensionDeg)
	}
	if math.Abs(pos.DeclinationDeg-refDelta) > 1e-9 {
		t.Errorf("declination shifted to %.9f with zero parallax", pos.DeclinationDeg)
	}
	if math.Abs(pos.HourAngleDeg-30) > 1e-9 {
		t.Errorf("hour angle shifted to %.9f with zero parallax", pos.HourAngleDeg)
	}
}
