package kernel

import (
	"errors"
	"fmt"
	"math"

	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/guard"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the Earth radius used by the haversine distance
// calculation, in kilometers.
const EarthRadiusKm = 6371.0

// ErrGeoPointIsNotConstructed is returned when attempting to use an
// improperly initialized GeoPoint. GeoPoints must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint is an immutable value object holding a geographic position as a
// latitude/longitude pair in decimal degrees (IEEE-754 doubles).
//
// Coordinates are deliberately not range-checked: out-of-range degree values
// propagate through the trigonometric functions of the distance calculation
// without special-casing. The zero value of GeoPoint is invalid and fails
// validation; use the constructor.
//
// Example:
//
//	p := kernel.NewGeoPoint(40.7128, -74.0060) // New York
//	q := kernel.NewGeoPoint(39.9526, -75.1652) // Philadelphia
//	km, err := p.DistanceTo(q)                 // ≈ 130 km
type GeoPoint struct {
	point orb.Point
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from latitude and longitude in decimal
// degrees. The constructor never fails: there is no range validation on the
// inputs.
func NewGeoPoint(lat float64, lng float64) GeoPoint {
	return GeoPoint{
		point: orb.Point{lng, lat},
		guard: guard.NewConstructorGuard(),
	}
}

// Validate checks if the GeoPoint was properly constructed.
// Returns ErrGeoPointIsNotConstructed for a zero-value point.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in decimal degrees.
func (p GeoPoint) Lat() float64 {
	return p.point.Lat()
}

// Lng returns the longitude in decimal degrees.
func (p GeoPoint) Lng() float64 {
	return p.point.Lon()
}

// String returns a human-readable "GeoPoint(lat,lng)" representation.
// Implements the fmt.Stringer interface.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%g,%g)", p.Lat(), p.Lng())
}

// IsEqual compares two geo points for exact coordinate equality.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.point == other.point, nil
}

// DistanceTo calculates the great-circle distance to another point in
// kilometers using the haversine formula with EarthRadiusKm.
//
// The calculation is symmetric (p.DistanceTo(q) == q.DistanceTo(p)) and
// yields exactly 0 for identical points. Both points must be properly
// constructed for the calculation to succeed.
func (p GeoPoint) DistanceTo(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	return HaversineKm(p.Lat(), p.Lng(), other.Lat(), other.Lng()), nil
}

// HaversineKm calculates the great-circle distance between two coordinate
// pairs on Earth in kilometers:
//
//	a = sin²(Δφ/2) + cos φ1 ⋅ cos φ2 ⋅ sin²(Δλ/2)
//	c = 2 ⋅ atan2(√a, √(1−a))
//	d = R ⋅ c
//
// where φ is latitude, λ is longitude and R is EarthRadiusKm. Inputs are
// decimal degrees; the function is pure and has no failure modes.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const degToRad = math.Pi / 180

	lat1Rad := lat1 * degToRad
	lat2Rad := lat2 * degToRad
	dLat := (lat2 - lat1) * degToRad
	dLng := (lng2 - lng1) * degToRad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}
