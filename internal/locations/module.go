// Package locations is the location resolution engine: it turns free-text
// user input ("Hou", "77001", "Texas") into canonical geographic Options used
// to filter car inventory and reservation lookups. An online strategy runs
// provider results through classification, ZIP enrichment, ranking and
// deduplication; an offline strategy matches a bounded built-in gazetteer.
package locations

import (
	apphttp "driveflex_backend/internal/http"
	"driveflex_backend/platform/config"
	"driveflex_backend/platform/logger"

	"github.com/redis/go-redis/v9"
)

// ModuleConfig combines the config interfaces the locations module needs.
type ModuleConfig interface {
	config.GeocoderConfig
	config.SuggestConfig
}

// Module wires the location suggestion HTTP routes.
type Module struct {
	handler *Handler
	online  Resolver
	offline Resolver
}

// NewModule creates the locations module. When the geocoder is disabled, the
// offline gazetteer serves both routes so the search experience keeps working
// without a provider.
func NewModule(cfg ModuleConfig, redisClient *redis.Client, log *logger.Logger) *Module {
	offline := NewOfflineResolver(NewGazetteer(), cfg)

	var online Resolver = offline
	if cfg.IsGeocoderEnabled() {
		online = NewService(NewGeocodeClient(cfg), redisClient, cfg, log)
	}

	return &Module{
		handler: NewHandler(online, offline),
		online:  online,
		offline: offline,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "locations"
}

// Resolver returns the online resolution strategy for other modules.
func (m *Module) Resolver() Resolver {
	return m.online
}

// RegisterRoutes mounts the suggestion routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/locations")
	group.Use(ctx.SuggestRateLimiter.RateLimit())
	group.GET("/suggest", m.handler.Suggest)
	group.GET("/offline-suggest", m.handler.OfflineSuggest)
}

var _ apphttp.Module = (*Module)(nil)
