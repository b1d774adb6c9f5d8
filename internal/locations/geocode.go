package locations

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"driveflex_backend/platform/config"

	"golang.org/x/time/rate"
)

// Geocoder is the provider contract the resolution pipeline depends on.
// Implementations degrade failures to errors; the service maps every error
// to an empty suggestion list.
type Geocoder interface {
	Search(ctx context.Context, query string) ([]RawCandidate, error)
	Reverse(ctx context.Context, lat, lon string) (*ProviderAddress, error)
}

// rawSearchLimit is deliberately generous: post-filtering discards most
// provider rows, so the request asks for far more than the result limit.
const rawSearchLimit = 25

// GeocodeClient talks to a Nominatim-compatible provider. Calls are
// rate-limited client-side to respect the provider's usage policy.
type GeocodeClient struct {
	baseURL      string
	userAgent    string
	countryCodes string
	client       *http.Client
	limiter      *rate.Limiter
}

// NewGeocodeClient builds a client from the geocoder configuration.
func NewGeocodeClient(cfg config.GeocoderConfig) *GeocodeClient {
	timeout := cfg.GetGeocoderTimeout()
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	rps := cfg.GetGeocoderRatePerSecond()
	if rps <= 0 {
		rps = 1
	}

	return &GeocodeClient{
		baseURL:      cfg.GetGeocoderBaseURL(),
		userAgent:    cfg.GetGeocoderUserAgent(),
		countryCodes: cfg.GetGeocoderCountryCodes(),
		client:       &http.Client{Timeout: timeout},
		limiter:      rate.NewLimiter(rate.Limit(rps), 2),
	}
}

// nominatimPlace mirrors the relevant parts of the jsonv2 search payload.
// Older payloads report "class" where jsonv2 reports "category", so both are
// decoded and merged.
type nominatimPlace struct {
	PlaceID     json.Number     `json:"place_id"`
	Category    string          `json:"category"`
	Class       string          `json:"class"`
	Type        string          `json:"type"`
	DisplayName string          `json:"display_name"`
	Lat         string          `json:"lat"`
	Lon         string          `json:"lon"`
	Address     ProviderAddress `json:"address"`
}

func (p nominatimPlace) category() string {
	if p.Category != "" {
		return p.Category
	}
	return p.Class
}

// Search issues a place search scoped to the configured countries, with
// address details and a generous raw limit for post-filtering.
func (c *GeocodeClient) Search(ctx context.Context, query string) ([]RawCandidate, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("addressdetails", "1")
	params.Set("countrycodes", c.countryCodes)
	params.Set("limit", fmt.Sprintf("%d", rawSearchLimit))

	var places []nominatimPlace
	if err := c.get(ctx, "/search", params, &places); err != nil {
		return nil, err
	}

	candidates := make([]RawCandidate, 0, len(places))
	for _, p := range places {
		candidates = append(candidates, RawCandidate{
			PlaceID:     p.PlaceID.String(),
			Category:    p.category(),
			Type:        p.Type,
			DisplayName: p.DisplayName,
			Lat:         p.Lat,
			Lon:         p.Lon,
			Address:     p.Address,
		})
	}
	return candidates, nil
}

// reversePayload wraps the single-result reverse geocode response.
type reversePayload struct {
	Address *ProviderAddress `json:"address"`
}

// Reverse resolves coordinates back to a structured address. A nil result
// with nil error means the provider had nothing for that point.
func (c *GeocodeClient) Reverse(ctx context.Context, lat, lon string) (*ProviderAddress, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("format", "jsonv2")
	params.Set("addressdetails", "1")
	params.Set("lat", lat)
	params.Set("lon", lon)

	var payload reversePayload
	if err := c.get(ctx, "/reverse", params, &payload); err != nil {
		return nil, err
	}
	return payload.Address, nil
}

func (c *GeocodeClient) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocoder upstream error: %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

var _ Geocoder = (*GeocodeClient)(nil)
