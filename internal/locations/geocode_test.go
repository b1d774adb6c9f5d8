package locations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

// testGeocoderConfig satisfies config.GeocoderConfig for client tests.
type testGeocoderConfig struct {
	baseURL string
}

func (c testGeocoderConfig) GetGeocoderBaseURL() string        { return c.baseURL }
func (c testGeocoderConfig) GetGeocoderUserAgent() string      { return "driveflex-test/1.0" }
func (c testGeocoderConfig) GetGeocoderCountryCodes() string   { return "us" }
func (c testGeocoderConfig) GetGeocoderTimeout() time.Duration { return 2 * time.Second }
func (c testGeocoderConfig) GetGeocoderRatePerSecond() float64 { return 100 }
func (c testGeocoderConfig) IsGeocoderEnabled() bool           { return true }

func TestSearchSendsJSONV2QueryWithCountryScopeAndRawLimit(t *testing.T) {
	var gotQuery url.Values
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		gotQuery = r.URL.Query()
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"place_id": 101, "category": "place", "type": "city",
			 "display_name": "Houston, Harris County, Texas, United States",
			 "lat": "29.76", "lon": "-95.36",
			 "address": {"city": "Houston", "state": "Texas", "postcode": "77002"}}
		]`))
	}))
	defer server.Close()

	client := NewGeocodeClient(testGeocoderConfig{baseURL: server.URL})

	candidates, err := client.Search(context.Background(), "Houston")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if gotQuery.Get("q") != "Houston" {
		t.Fatalf("q = %q", gotQuery.Get("q"))
	}
	if gotQuery.Get("format") != "jsonv2" {
		t.Fatalf("format = %q", gotQuery.Get("format"))
	}
	if gotQuery.Get("addressdetails") != "1" {
		t.Fatalf("addressdetails = %q", gotQuery.Get("addressdetails"))
	}
	if gotQuery.Get("countrycodes") != "us" {
		t.Fatalf("countrycodes = %q", gotQuery.Get("countrycodes"))
	}
	if gotQuery.Get("limit") != "25" {
		t.Fatalf("limit = %q", gotQuery.Get("limit"))
	}
	if gotUA != "driveflex-test/1.0" {
		t.Fatalf("user agent = %q", gotUA)
	}

	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
	c := candidates[0]
	if c.PlaceID != "101" || c.Category != "place" || c.Type != "city" {
		t.Fatalf("unexpected candidate: %+v", c)
	}
	if c.Address.City != "Houston" || c.Address.Postcode != "77002" {
		t.Fatalf("address not decoded: %+v", c.Address)
	}
}

func TestSearchMergesLegacyClassIntoCategory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"place_id": "7", "class": "boundary", "type": "administrative", "display_name": "Harris County"}
		]`))
	}))
	defer server.Close()

	client := NewGeocodeClient(testGeocoderConfig{baseURL: server.URL})

	candidates, err := client.Search(context.Background(), "Harris")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if candidates[0].Category != "boundary" {
		t.Fatalf("class fallback not applied: %q", candidates[0].Category)
	}
}

func TestSearchReturnsErrorOnUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewGeocodeClient(testGeocoderConfig{baseURL: server.URL})

	if _, err := client.Search(context.Background(), "Houston"); err == nil {
		t.Fatal("expected error on 503 response")
	}
}

func TestSearchReturnsErrorOnMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not": "a list"`))
	}))
	defer server.Close()

	client := NewGeocodeClient(testGeocoderConfig{baseURL: server.URL})

	if _, err := client.Search(context.Background(), "Houston"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestReverseDecodesAddressPayload(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reverse" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"address": {"city": "Houston", "state": "Texas", "postcode": "77001"}}`))
	}))
	defer server.Close()

	client := NewGeocodeClient(testGeocoderConfig{baseURL: server.URL})

	addr, err := client.Reverse(context.Background(), "29.76", "-95.36")
	if err != nil {
		t.Fatalf("reverse failed: %v", err)
	}

	if gotQuery.Get("lat") != "29.76" || gotQuery.Get("lon") != "-95.36" {
		t.Fatalf("coordinates not forwarded: %v", gotQuery)
	}
	if addr == nil || addr.City != "Houston" || addr.Postcode != "77001" {
		t.Fatalf("unexpected address: %+v", addr)
	}
}

func TestReverseMissingAddressReturnsNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error": "Unable to geocode"}`))
	}))
	defer server.Close()

	client := NewGeocodeClient(testGeocoderConfig{baseURL: server.URL})

	addr, err := client.Reverse(context.Background(), "0", "0")
	if err != nil {
		t.Fatalf("reverse failed: %v", err)
	}
	if addr != nil {
		t.Fatalf("expected nil address, got %+v", addr)
	}
}
