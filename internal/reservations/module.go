// Package reservations provides the reservation lookup bounded context module.
package reservations

import (
	apphttp "driveflex_backend/internal/http"
	"driveflex_backend/internal/reservations/handler"
	"driveflex_backend/internal/reservations/repository"
	"driveflex_backend/internal/reservations/service"
	"driveflex_backend/platform/logger"
	"driveflex_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the reservations bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the reservations module.
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
	return "reservations"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts reservation routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/reservations")
	group.POST("/lookup", m.handler.Lookup)
	group.GET("", m.handler.ListByArea)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
