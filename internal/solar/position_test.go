package solar

import (
	"math"
	"strings"
	"testing"
	"time"
)

func denverInputs(t *testing.T) PositionInputs {
	t.Helper()
	ms := time.Date(2003, 10, 17, 19, 30, 30, 0, time.UTC).UnixMilli()
	in, err := NewPositionInputs(ms, -105.1786, 39.742476, 820, 1830.14, 11, 30, -10, 67, -0.8333)
	if err != nil {
		t.Fatalf("NewPositionInputs: %v", err)
	}
	return in
}

// The full chain against the worked example in Reda & Andreas (NREL, 2004).
func TestComputePositionWorkedExample(t *testing.T) {
	p := ComputePosition(denverInputs(t))

	tests := []struct {
		name string
		got  float64
		want float64
		tol  float64
	}{
		{"julian day", p.JulianDay, 2452930.312847, 1e-6},
		{"heliocentric longitude", p.HeliocentricLongitude, 24.0182616917, 1e-8},
		{"heliocentric latitude", p.HeliocentricLatitude, -0.0001011219, 1e-8},
		{"radius vector", p.RadiusVector, 0.9965422974, 1e-8},
		{"geocentric longitude", p.GeocentricLongitude, 204.0182616917, 1e-8},
		{"geocentric latitude", p.GeocentricLatitude, 0.0001011219, 1e-8},
		{"nutation longitude", p.NutationLongitude, -0.00399840, 1e-6},
		{"nutation obliquity", p.NutationObliquity, 0.00166657, 1e-6},
		{"true obliquity", p.TrueObliquity, 23.440465, 1e-6},
		{"apparent longitude", p.ApparentLongitude, 204.0085519281, 1e-6},
		{"right ascension", p.RightAscension, 202.22741, 1e-5},
		{"declination", p.Declination, -9.31434, 1e-5},
		{"local hour angle", p.LocalHourAngle, 11.105900, 1e-4},
		{"topocentric right ascension", p.TopocentricRightAscension, 202.22704, 1e-4},
		{"topocentric declination", p.TopocentricDeclination, -9.316179, 1e-4},
		{"topocentric hour angle", p.TopocentricHourAngle, 11.10629, 1e-4},
		{"zenith angle", p.ZenithAngle, 50.11162, 1e-3},
		{"azimuth", p.Azimuth, 194.34024, 1e-3},
		{"surface incidence", p.SurfaceIncidence, 25.18700, 1e-3},
	}

	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > tt.tol {
			t.Errorf("%s = %.8f, want %.8f (tolerance %g)", tt.name, tt.got, tt.want, tt.tol)
		}
	}
}

func TestComputePositionDeterministic(t *testing.T) {
	in := denverInputs(t)
	a := ComputePosition(in)
	b := ComputePosition(in)
	if a != b {
		t.Errorf("repeated computation differs:\n%+v\n%+v", a, b)
	}
}

func TestComputePositionRanges(t *testing.T) {
	// Sweep a year of daily samples at mid latitude and check the angular
	// outputs stay within their documented ranges.
	base := time.Date(2021, 1, 1, 9, 0, 0, 0, time.UTC)
	for day := 0; day < 365; day += 7 {
		ms := base.AddDate(0, 0, day).UnixMilli()
		in, err := NewPositionInputs(ms, 13.405, 52.52, 1013.25, 34, 10, 0, 0, 69, -0.8333)
		if err != nil {
			t.Fatalf("day %d: %v", day, err)
		}
		p := ComputePosition(in)

		if p.Azimuth < 0 || p.Azimuth >= 360 {
			t.Errorf("day %d: azimuth %v outside [0, 360)", day, p.Azimuth)
		}
		if p.ZenithAngle < 0 || p.ZenithAngle > 180 {
			t.Errorf("day %d: zenith %v outside [0, 180]", day, p.ZenithAngle)
		}
		if p.Declination < -23.6 || p.Declination > 23.6 {
			t.Errorf("day %d: declination %v outside solar band", day, p.Declination)
		}
		if math.Abs(p.Elevation+p.ZenithAngle-90) > 1e-9 {
			t.Errorf("day %d: elevation %v and zenith %v do not sum to 90", day, p.Elevation, p.ZenithAngle)
		}
		if p.Elevation < p.UncorrectedElevation {
			t.Errorf("day %d: refraction lowered elevation (%v < %v)", day, p.Elevation, p.UncorrectedElevation)
		}
	}
}

func TestDeclinationNearZeroAtEquinox(t *testing.T) {
	// March equinox 2021 was at roughly 09:37 UTC on the 20th.
	ms := time.Date(2021, 3, 20, 9, 37, 0, 0, time.UTC).UnixMilli()
	in, err := NewPositionInputs(ms, 0, 0, 1013.25, 0, 15, 0, 0, 69, -0.8333)
	if err != nil {
		t.Fatal(err)
	}
	p := ComputePosition(in)
	if math.Abs(p.Declination) > 0.05 {
		t.Errorf("declination at equinox = %v, want near 0", p.Declination)
	}
}

func TestZenithSymmetryAcrossEquinoxes(t *testing.T) {
	// Mirrored latitudes near opposite equinoxes see the sun at nearly the
	// same zenith angle: the declination is close to zero at both instants,
	// so the geometry is symmetric up to the equinoxes' exact timing and
	// the Earth-Sun distance difference.
	atNorth := time.Date(2021, 3, 20, 12, 0, 0, 0, time.UTC).UnixMilli()
	atSouth := time.Date(2021, 9, 22, 12, 0, 0, 0, time.UTC).UnixMilli()

	north, err := NewPositionInputs(atNorth, 0, 45, 1013.25, 0, 15, 0, 0, 69, -0.8333)
	if err != nil {
		t.Fatal(err)
	}
	south, err := NewPositionInputs(atSouth, 0, -45, 1013.25, 0, 15, 0, 0, 69, -0.8333)
	if err != nil {
		t.Fatal(err)
	}

	za := ComputePosition(north).ZenithAngle
	zb := ComputePosition(south).ZenithAngle
	if math.Abs(za-zb) > 0.2 {
		t.Errorf("zenith at +45 in March = %.5f, at -45 in September = %.5f, want within 0.2", za, zb)
	}
}

func TestEquationOfTimeWorkedExample(t *testing.T) {
	p := ComputePosition(denverInputs(t))
	eot := ComputeEquationOfTime(p)

	if math.Abs(eot.SunMeanLongitude-205.8971722516) > 1e-8 {
		t.Errorf("SunMeanLongitude = %.10f, want 205.8971722516", eot.SunMeanLongitude)
	}
	if math.Abs(eot.Minutes-14.641503) > 1e-4 {
		t.Errorf("equation of time = %.6f min, want 14.641503", eot.Minutes)
	}
}

func TestEquationOfTimeBounded(t *testing.T) {
	// The equation of time stays within roughly +/-17 minutes all year.
	base := time.Date(2022, 1, 1, 12, 0, 0, 0, time.UTC)
	for day := 0; day < 365; day += 5 {
		ms := base.AddDate(0, 0, day).UnixMilli()
		in, err := NewPositionInputs(ms, 0, 0, 1013.25, 0, 15, 0, 0, 69, -0.8333)
		if err != nil {
			t.Fatal(err)
		}
		eot := ComputeEquationOfTime(ComputePosition(in))
		if eot.Minutes < -17 || eot.Minutes > 17 {
			t.Errorf("day %d: equation of time %v min outside [-17, 17]", day, eot.Minutes)
		}
	}
}

func TestNewEventInputsValidation(t *testing.T) {
	tests := []struct {
		name    string
		lon     float64
		lat     float64
		errPart string
	}{
		{"valid", -105.1786, 39.742476, ""},
		{"longitude too low", -180.01, 0, "longitude"},
		{"longitude too high", 180.01, 0, "longitude"},
		{"latitude too low", 0, -90.01, "latitude"},
		{"latitude too high", 0, 90.01, "latitude"},
		{"boundary longitude", 180, 0, ""},
		{"boundary latitude", 0, 90, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventInputs(0, tt.lon, tt.lat, 69, -0.8333)
			if tt.errPart == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("error %q does not name %q", err, tt.errPart)
			}
		})
	}
}

func TestNewPositionInputsValidation(t *testing.T) {
	tests := []struct {
		name     string
		slope    float64
		rotation float64
		errPart  string
	}{
		{"valid", 30, -10, ""},
		{"slope too steep", 90.5, 0, "slope"},
		{"slope too negative", -90.5, 0, "slope"},
		{"rotation too low", 0, -180.5, "azimuth"},
		{"rotation too high", 0, 180.5, "azimuth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPositionInputs(0, 0, 0, 1013.25, 0, 15, tt.slope, tt.rotation, 69, -0.8333)
			if tt.errPart == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("error %q does not name %q", err, tt.errPart)
			}
		})
	}
}
