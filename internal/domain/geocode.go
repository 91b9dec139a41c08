package domain

import (
	"context"
	"errors"
)

// ErrNoGeocodeResult is returned when the provider knows no match for an address.
var ErrNoGeocodeResult = errors.New("no geocode result")

// GeocodeResult is a normalized address with coordinates.
type GeocodeResult struct {
	FormattedAddress string  `json:"formatted_address"`
	Lat              float64 `json:"lat"`
	Long             float64 `json:"long"`
}

// Geocoder resolves a free-form address.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (*GeocodeResult, error)
}
