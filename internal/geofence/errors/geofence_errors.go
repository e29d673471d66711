package geofenceerrors

import (
	"fmt"
	"net/http"

	"shift-tracker/internal/shared/apperror"
)

var (
	ErrLocationRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Location permission is required to clock in.",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = apperror.New(
		apperror.CodeInvalidInput,
		"latitude must be within [-90, 90] and longitude within [-180, 180]",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = apperror.New(
		apperror.CodeInvalidInput,
		"perimeter radius must be a positive number of kilometers",
		http.StatusBadRequest,
	)
)

// OutOfRangeError carries the measured distance of a rejected clock-in.
type OutOfRangeError struct {
	DistanceKm float64 `json:"distance_km"`
	RadiusKm   float64 `json:"radius_km"`
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%.2fkm from center, allowed %gkm", e.DistanceKm, e.RadiusKm)
}

// NewOutOfRange builds the client-facing error. distanceKm should already be
// rounded for display.
func NewOutOfRange(distanceKm, radiusKm float64) *apperror.AppError {
	cause := &OutOfRangeError{DistanceKm: distanceKm, RadiusKm: radiusKm}
	appErr := apperror.Wrap(
		cause,
		apperror.CodeOutOfRange,
		fmt.Sprintf(
			"You are too far from the location. You are %.2fkm away, but need to be within %gkm.",
			distanceKm, radiusKm,
		),
		http.StatusUnprocessableEntity,
	)
	appErr.Details = cause
	return appErr
}
