package locations

import (
	"context"
	"errors"
	"strings"
	"time"

	"driveflex_backend/platform/config"
	"driveflex_backend/platform/logger"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// Resolver turns free-text user input into canonical location Options. Both
// strategies sit behind this interface: the online pipeline backed by the
// geocoding provider, and the offline gazetteer matcher.
type Resolver interface {
	Suggest(ctx context.Context, query string) ([]Option, error)
	MinChars() int
}

// Service is the online resolver: the full classification, enrichment,
// ranking, deduplication pipeline over provider search results. Provider
// failures are never fatal; they degrade to an empty Option list.
type Service struct {
	geo      Geocoder
	cache    *suggestionCache
	group    singleflight.Group
	log      *logger.Logger
	minChars int
	limit    int
}

// NewService builds the online resolver. redisClient may be nil, which
// disables the suggestion cache.
func NewService(geo Geocoder, redisClient *redis.Client, cfg config.SuggestConfig, log *logger.Logger) *Service {
	minChars := cfg.GetSuggestMinChars()
	if minChars < 1 {
		minChars = 2
	}
	limit := cfg.GetSuggestLimit()
	if limit < 1 {
		limit = 10
	}

	return &Service{
		geo:      geo,
		cache:    newSuggestionCache(redisClient, cfg.GetSuggestCacheTTL()),
		log:      log,
		minChars: minChars,
		limit:    limit,
	}
}

// MinChars returns the minimum query length attempted.
func (s *Service) MinChars() int {
	return s.minChars
}

// Suggest resolves free text into at most limit Options. Queries below the
// minimum length are not attempted at all. Identical concurrent queries are
// collapsed into one provider round trip.
func (s *Service) Suggest(ctx context.Context, query string) ([]Option, error) {
	q := normalizeQuery(query)
	if len(q) < s.minChars {
		return nil, nil
	}

	if cached, ok := s.cache.get(ctx, q); ok {
		return cached, nil
	}

	result, err, _ := s.group.Do(cacheKey(q), func() (interface{}, error) {
		// The flight outlives the first caller: collapsed concurrent queries
		// from other sessions must not inherit its cancellation.
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flightTimeout)
		defer cancel()

		options, resolved := s.resolve(flightCtx, q)
		if resolved {
			s.cache.set(flightCtx, q, options)
		}
		return options, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]Option), nil
}

// flightTimeout bounds one collapsed provider round trip, including the
// enrichment lookups of a ZIP query.
const flightTimeout = 10 * time.Second

// resolve runs the full online pipeline for one query. The bool reports
// whether the provider call succeeded; degraded empty results are not worth
// caching, or a transient outage would be served for the full cache TTL.
func (s *Service) resolve(ctx context.Context, query string) ([]Option, bool) {
	zipQuery := IsZipQuery(query)

	raw, err := s.geo.Search(ctx, query)
	if err != nil {
		// Cancellation is a normal race outcome, not a provider failure.
		if !errors.Is(err, context.Canceled) && s.log != nil {
			s.log.UpstreamError("geocoder", "search", err)
		}
		return []Option{}, false
	}

	candidates := classify(raw)

	if zipQuery {
		candidates = filterZipMatches(candidates, query)
		enrichZipCandidates(ctx, s.geo, candidates)
	}

	ranked := rank(candidates, s.limit)

	options := make([]Option, 0, len(ranked))
	for _, c := range ranked {
		options = append(options, mapCandidate(c, zipQuery))
	}
	return dedupOptions(options), true
}

// OfflineResolver matches queries against the static gazetteer. It needs no
// network, no cancellation, and is the default experience when the provider
// is disabled.
type OfflineResolver struct {
	gazetteer *Gazetteer
	minChars  int
	limit     int
}

// NewOfflineResolver builds the gazetteer-backed resolver.
func NewOfflineResolver(gazetteer *Gazetteer, cfg config.SuggestConfig) *OfflineResolver {
	minChars := cfg.GetSuggestMinChars()
	if minChars < 1 {
		minChars = 2
	}
	limit := cfg.GetSuggestLimit()
	if limit < 1 {
		limit = 10
	}

	return &OfflineResolver{gazetteer: gazetteer, minChars: minChars, limit: limit}
}

// MinChars returns the minimum query length attempted.
func (r *OfflineResolver) MinChars() int {
	return r.minChars
}

// Suggest matches the query against the gazetteer synchronously.
func (r *OfflineResolver) Suggest(_ context.Context, query string) ([]Option, error) {
	q := normalizeQuery(query)
	if len(q) < r.minChars {
		return nil, nil
	}

	rows := r.gazetteer.Match(q, r.limit)
	options := make([]Option, 0, len(rows))
	for _, row := range rows {
		options = append(options, mapRow(row))
	}
	return options, nil
}

func normalizeQuery(query string) string {
	return strings.TrimSpace(query)
}

var (
	_ Resolver = (*Service)(nil)
	_ Resolver = (*OfflineResolver)(nil)
)

// Session drives a Resolver from a raw keystroke stream. It debounces input,
// enforces the minimum-length gate before any search, and applies
// last-query-wins through a TokenSource so a slow early response can never
// clobber a later one. Results are delivered via the apply callback;
// superseded results are dropped silently.
type Session struct {
	resolver Resolver
	tokens   *TokenSource
	debounce *Debouncer
	apply    func(query string, options []Option)
}

// NewSession wires a debounced typeahead session over the given resolver.
func NewSession(resolver Resolver, delay time.Duration, apply func(query string, options []Option)) *Session {
	s := &Session{
		resolver: resolver,
		tokens:   NewTokenSource(),
		apply:    apply,
	}
	s.debounce = NewDebouncer(delay, s.dispatch)
	return s
}

// Input feeds one keystroke's worth of text into the session.
func (s *Session) Input(text string) {
	s.debounce.Send(text)
}

// Close tears the session down; pending work is cancelled and dropped.
func (s *Session) Close() {
	s.debounce.Stop()
	s.tokens.CancelActive()
}

// dispatch runs once per quiescent query.
func (s *Session) dispatch(query string) {
	q := normalizeQuery(query)
	if len(q) < s.resolver.MinChars() {
		s.tokens.CancelActive()
		s.apply(q, nil)
		return
	}

	token := s.tokens.Begin(context.Background())
	go func() {
		options, err := s.resolver.Suggest(token.Context(), q)
		if err != nil {
			options = nil
		}
		s.tokens.ApplyIfCurrent(token, func() {
			s.apply(q, options)
		})
	}()
}
