// Package fleet provides the car inventory bounded context module.
package fleet

import (
	apphttp "driveflex_backend/internal/http"
	"driveflex_backend/internal/fleet/handler"
	"driveflex_backend/internal/fleet/repository"
	"driveflex_backend/internal/fleet/service"
	"driveflex_backend/platform/logger"
	"driveflex_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the fleet bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the fleet module with all its dependencies.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "fleet"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts fleet routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/cars")
	group.GET("", m.handler.Search)
	group.GET("/:id", m.handler.GetByID)
	group.POST("", m.handler.Create)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
