package locations

import (
	"context"
	"sync"
	"time"
)

// testSuggestConfig satisfies config.SuggestConfig for pipeline tests.
type testSuggestConfig struct {
	limit    int
	minChars int
	cacheTTL time.Duration
}

func (c testSuggestConfig) GetSuggestLimit() int              { return c.limit }
func (c testSuggestConfig) GetSuggestMinChars() int           { return c.minChars }
func (c testSuggestConfig) GetSuggestCacheTTL() time.Duration { return c.cacheTTL }

func defaultSuggestConfig() testSuggestConfig {
	return testSuggestConfig{limit: 10, minChars: 2, cacheTTL: time.Minute}
}

// fakeGeocoder is a scriptable provider double. Search and Reverse record
// their calls so tests can assert on call counts and arguments.
type fakeGeocoder struct {
	mu sync.Mutex

	searchResults []RawCandidate
	searchErr     error
	searchCalls   int
	searchQueries []string
	searchDelay   time.Duration

	reverseAddr    *ProviderAddress
	reverseErr     error
	reverseCalls   int
	reverseCoords  [][2]string
	reverseByCoord map[[2]string]*ProviderAddress
}

func (f *fakeGeocoder) Search(ctx context.Context, query string) ([]RawCandidate, error) {
	f.mu.Lock()
	f.searchCalls++
	f.searchQueries = append(f.searchQueries, query)
	delay := f.searchDelay
	searchErr := f.searchErr
	results := make([]RawCandidate, len(f.searchResults))
	copy(results, f.searchResults)
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if searchErr != nil {
		return nil, searchErr
	}
	return results, nil
}

func (f *fakeGeocoder) setSearchErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchErr = err
}

func (f *fakeGeocoder) setSearchResults(results []RawCandidate) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchResults = results
}

func (f *fakeGeocoder) searchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.searchCalls
}

func (f *fakeGeocoder) Reverse(_ context.Context, lat, lon string) (*ProviderAddress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.reverseCalls++
	f.reverseCoords = append(f.reverseCoords, [2]string{lat, lon})

	if f.reverseErr != nil {
		return nil, f.reverseErr
	}
	if f.reverseByCoord != nil {
		return f.reverseByCoord[[2]string{lat, lon}], nil
	}
	return f.reverseAddr, nil
}

var _ Geocoder = (*fakeGeocoder)(nil)
