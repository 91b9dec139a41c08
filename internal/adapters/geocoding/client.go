package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"attendancehub/internal/domain"
)

// DefaultBaseURL is the Google Geocoding API JSON endpoint.
const DefaultBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

type client struct {
	http    *http.Client
	apiKey  string
	baseURL string
}

// NewClient returns a Geocoder backed by the Google Geocoding API.
func NewClient(httpClient *http.Client, apiKey, baseURL string) domain.Geocoder {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &client{http: httpClient, apiKey: apiKey, baseURL: baseURL}
}

func (c *client) Resolve(ctx context.Context, address string) (*domain.GeocodeResult, error) {
	q := url.Values{"address": {address}, "key": {c.apiKey}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call geocoding api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding api returned status: %d", resp.StatusCode)
	}

	var data geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}
	switch data.Status {
	case "OK":
	case "ZERO_RESULTS":
		return nil, domain.ErrNoGeocodeResult
	default:
		return nil, fmt.Errorf("geocoding api status %s: %s", data.Status, data.ErrorMessage)
	}
	if len(data.Results) == 0 {
		return nil, domain.ErrNoGeocodeResult
	}
	first := data.Results[0]
	return &domain.GeocodeResult{
		FormattedAddress: first.FormattedAddress,
		Lat:              first.Geometry.Location.Lat,
		Long:             first.Geometry.Location.Lng,
	}, nil
}
