// Package geofence decides whether a reported position is close enough to an
// organization's center to allow a clock-in.
package geofence

import (
	"math"

	geofenceerrors "shift-tracker/internal/geofence/errors"
	"shift-tracker/internal/shared/numeric"
)

const EarthRadiusKm = 6371.0

type Point struct {
	Latitude  float64
	Longitude float64
}

type Fence struct {
	Center   Point
	RadiusKm float64
}

// Distance is the great-circle distance in kilometers (haversine).
func Distance(a, b Point) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Validate checks a clock-in position against the fence and returns the
// computed distance. Missing or partial coordinates are ErrLocationRequired.
func Validate(lat, lon *float64, fence Fence) (float64, error) {
	if lat == nil || lon == nil {
		return 0, geofenceerrors.ErrLocationRequired
	}
	pos := Point{Latitude: *lat, Longitude: *lon}
	if err := ValidatePoint(pos); err != nil {
		return 0, err
	}
	if err := ValidateFence(fence); err != nil {
		return 0, err
	}

	distance := Distance(pos, fence.Center)
	if distance > fence.RadiusKm {
		return distance, geofenceerrors.NewOutOfRange(numeric.Round2(distance), fence.RadiusKm)
	}
	return distance, nil
}

func ValidatePoint(p Point) error {
	if math.IsNaN(p.Latitude) || math.IsNaN(p.Longitude) ||
		p.Latitude < -90 || p.Latitude > 90 ||
		p.Longitude < -180 || p.Longitude > 180 {
		return geofenceerrors.ErrInvalidCoordinates
	}
	return nil
}

func ValidateFence(f Fence) error {
	if err := ValidatePoint(f.Center); err != nil {
		return err
	}
	if math.IsNaN(f.RadiusKm) || math.IsInf(f.RadiusKm, 0) || f.RadiusKm <= 0 {
		return geofenceerrors.ErrInvalidRadius
	}
	return nil
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
