package locations

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestSuggestBelowMinimumLengthSkipsProvider(t *testing.T) {
	geo := &fakeGeocoder{}
	svc := NewService(geo, nil, defaultSuggestConfig(), nil)

	options, err := svc.Suggest(context.Background(), "H")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if options != nil {
		t.Fatalf("expected nil options, got %v", options)
	}
	if geo.searchCalls != 0 {
		t.Fatalf("provider called %d times for short query", geo.searchCalls)
	}
}

func TestSuggestTrimsQueryBeforeLengthGate(t *testing.T) {
	geo := &fakeGeocoder{}
	svc := NewService(geo, nil, defaultSuggestConfig(), nil)

	if _, err := svc.Suggest(context.Background(), "   H   "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if geo.searchCalls != 0 {
		t.Fatal("whitespace padding must not defeat the length gate")
	}
}

func TestSuggestRunsFullPipeline(t *testing.T) {
	geo := &fakeGeocoder{
		searchResults: []RawCandidate{
			{PlaceID: "shop", Category: "shop", Type: "car_rental", Address: ProviderAddress{City: "Houston"}},
			{PlaceID: "admin", Category: "boundary", Type: "administrative", Address: ProviderAddress{City: "Houston", State: "Texas"}},
			{PlaceID: "city", Category: "place", Type: "city", Address: ProviderAddress{City: "Houston", State: "Texas"}},
		},
	}
	svc := NewService(geo, nil, defaultSuggestConfig(), nil)

	options, err := svc.Suggest(context.Background(), "Houston")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The shop is classified out; the city outranks the boundary; both map to
	// the same (city, state, zip) triple so dedup keeps only the city.
	if len(options) != 1 {
		t.Fatalf("expected 1 option, got %d: %v", len(options), options)
	}
	if options[0].ID != "city" {
		t.Fatalf("expected city result to survive, got %s", options[0].ID)
	}
	if options[0].Primary != "Houston, Texas" {
		t.Fatalf("primary = %q", options[0].Primary)
	}
	if geo.searchQueries[0] != "Houston" {
		t.Fatalf("provider query = %q", geo.searchQueries[0])
	}
}

func TestSuggestDegradesProviderFailureToEmptyList(t *testing.T) {
	geo := &fakeGeocoder{searchErr: errors.New("connection refused")}
	svc := NewService(geo, nil, defaultSuggestConfig(), nil)

	options, err := svc.Suggest(context.Background(), "Houston")
	if err != nil {
		t.Fatalf("provider failure must not surface as error, got %v", err)
	}
	if options == nil || len(options) != 0 {
		t.Fatalf("expected empty list, got %v", options)
	}
}

func TestSuggestZipQueryFiltersAndEnriches(t *testing.T) {
	geo := &fakeGeocoder{
		searchResults: []RawCandidate{
			{
				PlaceID: "pc",
				Type:    "postcode",
				Lat:     "29.76",
				Lon:     "-95.36",
				Address: ProviderAddress{Postcode: "77001"},
			},
			{
				PlaceID:  "far",
				Category: "place",
				Type:     "city",
				Address:  ProviderAddress{City: "Dallas", State: "Texas", Postcode: "75201"},
			},
		},
		reverseAddr: &ProviderAddress{City: "Houston", State: "Texas"},
	}
	svc := NewService(geo, nil, defaultSuggestConfig(), nil)

	options, err := svc.Suggest(context.Background(), "77001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(options) != 1 {
		t.Fatalf("expected 1 option, got %d: %v", len(options), options)
	}
	if options[0].Primary != "Houston, Texas 77001" {
		t.Fatalf("primary = %q", options[0].Primary)
	}
	if geo.reverseCalls != 1 {
		t.Fatalf("expected 1 enrichment lookup, got %d", geo.reverseCalls)
	}
}

func TestSuggestCancellationStaysSilent(t *testing.T) {
	geo := &fakeGeocoder{searchErr: context.Canceled}
	svc := NewService(geo, nil, defaultSuggestConfig(), nil)

	options, err := svc.Suggest(context.Background(), "Houston")
	if err != nil {
		t.Fatalf("cancellation must not surface as error, got %v", err)
	}
	if len(options) != 0 {
		t.Fatalf("expected empty list, got %v", options)
	}
}

func TestCollapsedQuerySurvivesFirstCallerCancellation(t *testing.T) {
	geo := &fakeGeocoder{
		searchDelay: 50 * time.Millisecond,
		searchResults: []RawCandidate{
			{PlaceID: "city", Category: "place", Type: "city",
				Address: ProviderAddress{City: "Houston", State: "Texas"}},
		},
	}
	svc := NewService(geo, nil, defaultSuggestConfig(), nil)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		_, _ = svc.Suggest(firstCtx, "Houston")
	}()

	secondResult := make(chan []Option, 1)
	go func() {
		options, err := svc.Suggest(context.Background(), "Houston")
		if err != nil {
			options = nil
		}
		secondResult <- options
	}()

	// Abandon the first caller while the shared provider call is in flight.
	time.Sleep(10 * time.Millisecond)
	cancelFirst()

	options := <-secondResult
	<-firstDone

	if len(options) != 1 || options[0].Primary != "Houston, Texas" {
		t.Fatalf("collapsed caller got %v instead of the provider result", options)
	}
	if geo.searchCount() != 1 {
		t.Fatalf("expected a single collapsed provider call, got %d", geo.searchCount())
	}
}

func TestOfflineResolverMatchesGazetteer(t *testing.T) {
	resolver := NewOfflineResolver(NewGazetteer(), defaultSuggestConfig())

	options, err := resolver.Suggest(context.Background(), "77")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(options) == 0 {
		t.Fatal("expected offline matches for 77")
	}
	for _, opt := range options {
		if opt.Zip[:2] != "77" {
			t.Fatalf("option %+v does not match zip prefix", opt)
		}
	}
}

func TestOfflineResolverHonorsMinimumLength(t *testing.T) {
	resolver := NewOfflineResolver(NewGazetteer(), defaultSuggestConfig())

	options, err := resolver.Suggest(context.Background(), "7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if options != nil {
		t.Fatalf("expected nil for short query, got %v", options)
	}
}

// stubResolver scripts per-query results and latency for session tests.
type stubResolver struct {
	mu       sync.Mutex
	results  map[string][]Option
	delays   map[string]time.Duration
	queries  []string
	minChars int
}

func (r *stubResolver) Suggest(ctx context.Context, query string) ([]Option, error) {
	r.mu.Lock()
	r.queries = append(r.queries, query)
	delay := r.delays[query]
	result := r.results[query]
	r.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return result, nil
}

func (r *stubResolver) MinChars() int {
	return r.minChars
}

// applyRecorder captures session apply callbacks.
type applyRecorder struct {
	mu      sync.Mutex
	queries []string
	results [][]Option
}

func (a *applyRecorder) apply(query string, options []Option) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.queries = append(a.queries, query)
	a.results = append(a.results, options)
}

func (a *applyRecorder) snapshot() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.queries))
	copy(out, a.queries)
	return out
}

func TestSessionSlowEarlyResponseNeverClobbersLaterQuery(t *testing.T) {
	resolver := &stubResolver{
		minChars: 2,
		results: map[string][]Option{
			"Houston": {{ID: "hou", Primary: "Houston, Texas"}},
			"Dallas":  {{ID: "dal", Primary: "Dallas, Texas"}},
		},
		delays: map[string]time.Duration{
			"Houston": 150 * time.Millisecond,
		},
	}
	rec := &applyRecorder{}
	session := NewSession(resolver, 10*time.Millisecond, rec.apply)
	defer session.Close()

	session.Input("Houston")
	time.Sleep(40 * time.Millisecond)
	session.Input("Dallas")

	time.Sleep(300 * time.Millisecond)

	applied := rec.snapshot()
	if len(applied) != 1 {
		t.Fatalf("expected exactly 1 apply, got %d: %v", len(applied), applied)
	}
	if applied[0] != "Dallas" {
		t.Fatalf("stale Houston result surfaced; applied %v", applied)
	}
}

func TestSessionDebouncesKeystrokesToOneSearch(t *testing.T) {
	resolver := &stubResolver{
		minChars: 2,
		results: map[string][]Option{
			"Hous": {{ID: "hou", Primary: "Houston, Texas"}},
		},
	}
	rec := &applyRecorder{}
	session := NewSession(resolver, 30*time.Millisecond, rec.apply)
	defer session.Close()

	for _, v := range []string{"H", "Ho", "Hou", "Hous"} {
		session.Input(v)
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)

	resolver.mu.Lock()
	searches := len(resolver.queries)
	resolver.mu.Unlock()
	if searches != 1 {
		t.Fatalf("expected 1 search for the burst, got %d", searches)
	}
	if applied := rec.snapshot(); len(applied) != 1 || applied[0] != "Hous" {
		t.Fatalf("expected one apply for latest value, got %v", applied)
	}
}

func TestSessionClearedInputAppliesEmptyWithoutSearching(t *testing.T) {
	resolver := &stubResolver{minChars: 2}
	rec := &applyRecorder{}
	session := NewSession(resolver, 10*time.Millisecond, rec.apply)
	defer session.Close()

	session.Input("")
	time.Sleep(60 * time.Millisecond)

	resolver.mu.Lock()
	searches := len(resolver.queries)
	resolver.mu.Unlock()
	if searches != 0 {
		t.Fatalf("expected no search for cleared input, got %d", searches)
	}
	if applied := rec.snapshot(); len(applied) != 1 || applied[0] != "" {
		t.Fatalf("expected one empty apply, got %v", applied)
	}
}

func TestSessionCloseDropsPendingWork(t *testing.T) {
	resolver := &stubResolver{
		minChars: 2,
		delays:   map[string]time.Duration{"Houston": 50 * time.Millisecond},
		results:  map[string][]Option{"Houston": {{ID: "hou"}}},
	}
	rec := &applyRecorder{}
	session := NewSession(resolver, 10*time.Millisecond, rec.apply)

	session.Input("Houston")
	time.Sleep(25 * time.Millisecond)
	session.Close()

	time.Sleep(150 * time.Millisecond)

	if applied := rec.snapshot(); len(applied) != 0 {
		t.Fatalf("expected no applies after Close, got %v", applied)
	}
}
