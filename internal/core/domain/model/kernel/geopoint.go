package kernel

import (
	"errors"
	"fmt"
	"math"

	"medmarket/internal/pkg/errs"
	"medmarket/internal/pkg/guard"
)

const (
	// MinLongitude is the minimum valid longitude in degrees.
	MinLongitude = -180.0
	// MaxLongitude is the maximum valid longitude in degrees.
	MaxLongitude = 180.0
	// MinLatitude is the minimum valid latitude in degrees.
	MinLatitude = -90.0
	// MaxLatitude is the maximum valid latitude in degrees.
	MaxLatitude = 90.0

	// earthRadiusMeters is the mean radius of the Earth used by the
	// great-circle distance calculation.
	earthRadiusMeters = 6371000.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created via the NewGeoPoint constructor
// to ensure coordinate validity.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a WGS84 coordinate pair with validated bounds.
// GeoPoint is an immutable value object: longitude must lie within
// [MinLongitude..MaxLongitude] and latitude within [MinLatitude..MaxLatitude].
// The zero value of GeoPoint is invalid and will fail validation - use the
// constructor to create instances.
//
// A GeoPoint identifies where an order originates and where a seller's store
// is located; the proximity search in the assignment flow is defined entirely
// in terms of the great-circle distance between two GeoPoints.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(77.10, 28.70)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Origin: %s", point) // Output: GeoPoint(77.100000,28.700000)
type GeoPoint struct { //nolint:recvcheck //using for validation
	longitude float64
	latitude  float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a new GeoPoint with the specified coordinates.
// Longitude is given first, matching the GeoJSON coordinate order used in
// the API and in the database.
//
// Parameters:
//   - longitude: degrees east of the prime meridian, in [MinLongitude..MaxLongitude]
//   - latitude: degrees north of the equator, in [MinLatitude..MaxLatitude]
//
// Returns:
//   - GeoPoint: a valid point
//   - error: out-of-range error if either coordinate is outside its bounds
func NewGeoPoint(longitude, latitude float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLongitude(longitude), point.setLatitude(latitude)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks if the GeoPoint was properly constructed using the constructor.
// The zero value of GeoPoint is invalid and will fail this validation.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Longitude returns the longitude in degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// Latitude returns the latitude in degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// String returns a human-readable representation in the format
// "GeoPoint(longitude,latitude)". This method implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.longitude, p.latitude)
}

// IsEqual compares two points for coordinate equality.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.longitude == other.longitude && p.latitude == other.latitude, nil
}

// DistanceTo calculates the great-circle distance to another point in meters,
// using the haversine formula on a spherical Earth model. This is the distance
// metric the proximity search is defined on.
//
// Both points must be properly constructed (pass validation) for the
// calculation to succeed.
//
// Example:
//
//	store, _ := kernel.NewGeoPoint(77.10, 28.70)
//	origin, _ := kernel.NewGeoPoint(77.101, 28.701)
//
//	meters, err := origin.DistanceTo(store)
//	// meters ≈ 150, err = nil
func (p GeoPoint) DistanceTo(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := p.latitude * math.Pi / 180
	lat2 := other.latitude * math.Pi / 180
	dLat := (other.latitude - p.latitude) * math.Pi / 180
	dLon := (other.longitude - p.longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c, nil
}

// setLongitude sets the longitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers. The private setters enable self-encapsulated validation of
// business requirements during object construction.
func (p *GeoPoint) setLongitude(longitude float64) error {
	if longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}

	p.longitude = longitude
	return nil
}

// setLatitude sets the latitude with validation.
func (p *GeoPoint) setLatitude(latitude float64) error {
	if latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}

	p.latitude = latitude
	return nil
}
