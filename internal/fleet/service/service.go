// Package service contains the fleet business logic.
package service

import (
	"context"
	"strings"

	"driveflex_backend/internal/fleet/repository"
	"driveflex_backend/platform/apperr"
	"driveflex_backend/platform/logger"

	"github.com/google/uuid"
)

// knownTypes are the vehicle categories the marketplace advertises.
var knownTypes = map[string]bool{
	"suv":    true,
	"sedan":  true,
	"ev":     true,
	"luxury": true,
}

// Service implements fleet use cases.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a fleet service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// SearchParams narrows a fleet search. Zip and City typically come from a
// location Option the user picked in the search form.
type SearchParams struct {
	Type string
	Zip  string
	City string
}

// Search lists available cars for the given vehicle type and area.
// Type "all" (or empty) means every type.
func (s *Service) Search(ctx context.Context, params SearchParams) ([]repository.Car, error) {
	carType := strings.ToLower(strings.TrimSpace(params.Type))
	if carType == "all" {
		carType = ""
	}
	if carType != "" && !knownTypes[carType] {
		return nil, apperr.Validation("unknown vehicle type")
	}

	cars, err := s.repo.List(ctx, repository.ListFilter{
		Type: carType,
		Zip:  strings.TrimSpace(params.Zip),
		City: strings.TrimSpace(params.City),
	})
	if err != nil {
		s.log.DatabaseError("fleet search", err)
		return nil, apperr.Internal("could not search the fleet")
	}
	return cars, nil
}

// GetByID fetches one car.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (repository.Car, error) {
	return s.repo.GetByID(ctx, id)
}

// Add inserts a new car into the fleet.
func (s *Service) Add(ctx context.Context, params repository.CreateParams) (repository.Car, error) {
	carType := strings.ToLower(strings.TrimSpace(params.Type))
	if !knownTypes[carType] {
		return repository.Car{}, apperr.Validation("unknown vehicle type")
	}
	params.Type = carType

	car, err := s.repo.Create(ctx, params)
	if err != nil {
		s.log.DatabaseError("fleet add", err)
		return repository.Car{}, apperr.Internal("could not add the car")
	}
	return car, nil
}

// SetAvailable toggles a car's availability.
func (s *Service) SetAvailable(ctx context.Context, id uuid.UUID, available bool) error {
	return s.repo.SetAvailable(ctx, id, available)
}
