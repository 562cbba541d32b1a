package kernel

import (
	"fmt"
	"math"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

const (
	// MinLatitude is the minimum valid latitude in degrees.
	MinLatitude = -90.0
	// MaxLatitude is the maximum valid latitude in degrees.
	MaxLatitude = 90.0
	// MinLongitude is the minimum valid longitude in degrees.
	MinLongitude = -180.0
	// MaxLongitude is the maximum valid longitude in degrees.
	MaxLongitude = 180.0

	// KmPerDegree converts degrees to kilometers on the planar distance
	// approximation used for courier tracking. This is a flat-earth
	// placeholder metric, not Haversine; it is accurate enough for the
	// short hops between consecutive location updates.
	KmPerDegree = 111.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. Points must be created via NewGeoPoint to ensure
// coordinates are within valid bounds.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"GeoPoint must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic position with validated coordinates.
// GeoPoint is an immutable value object; the zero value is invalid and
// fails Validate.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(55.75, 37.62)
//	if err != nil {
//	    // handle invalid coordinates
//	}
//	km := point.DistanceKm(other)
type GeoPoint struct {
	lat float64
	lng float64

	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint after validating that latitude is within
// [-90, 90] and longitude within [-180, 180] degrees.
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	if lat < MinLatitude || lat > MaxLatitude || math.IsNaN(lat) {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("latitude",
			fmt.Errorf("%f is not within [%f, %f]", lat, MinLatitude, MaxLatitude))
	}
	if lng < MinLongitude || lng > MaxLongitude || math.IsNaN(lng) {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("longitude",
			fmt.Errorf("%f is not within [%f, %f]", lng, MinLongitude, MaxLongitude))
	}

	return GeoPoint{
		lat:   lat,
		lng:   lng,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// IsEqual compares two points by exact coordinate equality.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.lng == other.lng
}

// DistanceKm returns the planar distance to other in kilometers:
// KmPerDegree * sqrt(dLat^2 + dLng^2).
func (p GeoPoint) DistanceKm(other GeoPoint) float64 {
	dLat := p.lat - other.lat
	dLng := p.lng - other.lng
	return KmPerDegree * math.Sqrt(dLat*dLat+dLng*dLng)
}

// Validate checks that the point was created via NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}
