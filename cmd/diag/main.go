package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sun/sungo/internal/events"
	"github.com/sun/sungo/internal/solar"
)

// Prints the full computation chain for the NREL SPA worked example
// (Denver, 2003-10-17 19:30:30 UTC) so intermediate values can be compared
// against the published report by eye.
func main() {
	t := time.Date(2003, 10, 17, 19, 30, 30, 0, time.UTC)

	// Observer: Denver, 1830.14 m elevation, 820 mb, 11 C, surface slope 30
	// with azimuth rotation -10, delta T 67 s, standard -0.8333 threshold.
	in, err := solar.NewPositionInputs(t.UnixMilli(), -105.1786, 39.742476, 820, 1830.14, 11, 30, -10, 67, -0.8333)
	if err != nil {
		fmt.Println("ERROR:", err)
		os.Exit(1)
	}

	p := solar.ComputePosition(in)

	fmt.Printf("Time (UTC):                 %v\n", t)
	fmt.Printf("Julian day:                 %.6f\n", p.JulianDay)
	fmt.Printf("Heliocentric longitude L:   %.9f\n", p.HeliocentricLongitude)
	fmt.Printf("Heliocentric latitude B:    %.9f\n", p.HeliocentricLatitude)
	fmt.Printf("Radius vector R:            %.9f\n", p.RadiusVector)
	fmt.Printf("Geocentric longitude:       %.9f\n", p.GeocentricLongitude)
	fmt.Printf("Nutation in longitude:      %.8f\n", p.NutationLongitude)
	fmt.Printf("Nutation in obliquity:      %.8f\n", p.NutationObliquity)
	fmt.Printf("True obliquity:             %.6f\n", p.TrueObliquity)
	fmt.Printf("Apparent sun longitude:     %.9f\n", p.ApparentLongitude)
	fmt.Printf("Geocentric right ascension: %.5f\n", p.RightAscension)
	fmt.Printf("Geocentric declination:     %.5f\n", p.Declination)
	fmt.Printf("Observer hour angle:        %.6f\n", p.LocalHourAngle)
	fmt.Printf("Topocentric right asc.:     %.5f\n", p.TopocentricRightAscension)
	fmt.Printf("Topocentric declination:    %.6f\n", p.TopocentricDeclination)
	fmt.Printf("Topocentric hour angle:     %.5f\n", p.TopocentricHourAngle)
	fmt.Printf("Topocentric zenith angle:   %.5f\n", p.ZenithAngle)
	fmt.Printf("Topocentric azimuth:        %.5f\n", p.Azimuth)
	fmt.Printf("Surface incidence angle:    %.5f\n", p.SurfaceIncidence)

	eot := solar.ComputeEquationOfTime(p)
	fmt.Printf("Sun mean longitude:         %.9f\n", eot.SunMeanLongitude)
	fmt.Printf("Equation of time (min):     %.6f\n", eot.Minutes)

	times, ok := events.Compute(in.EventInputs)
	if !ok {
		fmt.Println("No sunrise/sunset on this day")
		return
	}
	fmt.Printf("Sunrise:                    %v\n", time.UnixMilli(times.SunriseMillis).UTC())
	fmt.Printf("Transit:                    %v\n", time.UnixMilli(times.TransitMillis).UTC())
	fmt.Printf("Sunset:                     %v\n", time.UnixMilli(times.SunsetMillis).UTC())
}
