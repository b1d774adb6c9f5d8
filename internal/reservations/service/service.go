// Package service contains the reservation lookup business logic.
package service

import (
	"context"
	"strings"

	"driveflex_backend/internal/locations"
	"driveflex_backend/internal/reservations/repository"
	"driveflex_backend/platform/apperr"
	"driveflex_backend/platform/logger"
)

// Service implements reservation lookup use cases.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a reservations service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// LookupParams identifies a reservation. Zip normally comes from a resolved
// location Option; free text is accepted as a fallback and the ZIP is
// extracted from it.
type LookupParams struct {
	LastName          string
	ReservationNumber string
	Zip               string
}

// Lookup finds reservations by renter last name, confirmation number and
// area ZIP. No match is not an error; it returns an empty list.
func (s *Service) Lookup(ctx context.Context, params LookupParams) ([]repository.Reservation, error) {
	lastName := strings.TrimSpace(params.LastName)
	number := strings.ToUpper(strings.TrimSpace(params.ReservationNumber))
	zip := locations.ExtractZip(params.Zip)

	if len(lastName) < 2 {
		return nil, apperr.Validation("last name must be at least 2 characters")
	}
	if len(number) < 4 {
		return nil, apperr.Validation("reservation number must be at least 4 characters")
	}
	if zip == "" {
		return nil, apperr.Validation("a 5-digit area ZIP is required; pick a City/State/ZIP suggestion")
	}

	results, err := s.repo.Find(ctx, repository.FindParams{
		LastName:          lastName,
		ReservationNumber: number,
		Zip:               zip,
	})
	if err != nil {
		s.log.DatabaseError("reservation lookup", err)
		return nil, apperr.Internal("could not look up the reservation")
	}
	return results, nil
}

// ListByArea retrieves reservations with a pickup in the resolved area.
func (s *Service) ListByArea(ctx context.Context, zip string) ([]repository.Reservation, error) {
	extracted := locations.ExtractZip(zip)
	if extracted == "" {
		return nil, apperr.Validation("a 5-digit area ZIP is required")
	}

	results, err := s.repo.ListByArea(ctx, extracted)
	if err != nil {
		s.log.DatabaseError("reservation area list", err)
		return nil, apperr.Internal("could not list reservations")
	}
	return results, nil
}
