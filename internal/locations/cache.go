package locations

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// suggestionCache is a read-through Redis cache over resolved Option lists.
// The cache is advisory: every failure (including a nil client) is treated
// as a miss, and writes are fire-and-forget.
type suggestionCache struct {
	client *redis.Client
	ttl    time.Duration
}

func newSuggestionCache(client *redis.Client, ttl time.Duration) *suggestionCache {
	return &suggestionCache{client: client, ttl: ttl}
}

// cacheKey normalizes the query so "Houston " and "houston" share an entry.
func cacheKey(query string) string {
	return "locations:suggest:" + strings.ToLower(strings.TrimSpace(query))
}

func (c *suggestionCache) get(ctx context.Context, query string) ([]Option, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, cacheKey(query)).Bytes()
	if err != nil {
		return nil, false
	}

	var options []Option
	if err := json.Unmarshal(payload, &options); err != nil {
		return nil, false
	}
	return options, true
}

func (c *suggestionCache) set(ctx context.Context, query string, options []Option) {
	if c == nil || c.client == nil {
		return
	}

	payload, err := json.Marshal(options)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, cacheKey(query), payload, c.ttl).Err()
}
