package service

import (
	"context"
	"errors"
	"testing"

	"driveflex_backend/internal/fleet/repository"
	"driveflex_backend/platform/apperr"
	"driveflex_backend/platform/logger"

	"github.com/google/uuid"
)

// fakeRepo is an in-memory repository double recording its inputs.
type fakeRepo struct {
	cars       []repository.Car
	listFilter repository.ListFilter
	listErr    error
	created    *repository.CreateParams
	createErr  error
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Car, error) {
	for _, car := range f.cars {
		if car.ID == id {
			return car, nil
		}
	}
	return repository.Car{}, apperr.NotFound("car not found")
}

func (f *fakeRepo) List(_ context.Context, filter repository.ListFilter) ([]repository.Car, error) {
	f.listFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.cars, nil
}

func (f *fakeRepo) Create(_ context.Context, params repository.CreateParams) (repository.Car, error) {
	f.created = &params
	if f.createErr != nil {
		return repository.Car{}, f.createErr
	}
	return repository.Car{ID: uuid.New(), Make: params.Make, Model: params.Model, Type: params.Type}, nil
}

func (f *fakeRepo) SetAvailable(_ context.Context, _ uuid.UUID, _ bool) error {
	return nil
}

func testService(repo repository.Repository) *Service {
	return New(repo, logger.New("test"))
}

func TestSearchTreatsAllAsNoTypeFilter(t *testing.T) {
	repo := &fakeRepo{}
	svc := testService(repo)

	if _, err := svc.Search(context.Background(), SearchParams{Type: "All"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.listFilter.Type != "" {
		t.Fatalf("expected empty type filter, got %q", repo.listFilter.Type)
	}
}

func TestSearchNormalizesTypeCase(t *testing.T) {
	repo := &fakeRepo{}
	svc := testService(repo)

	if _, err := svc.Search(context.Background(), SearchParams{Type: " SUV "}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.listFilter.Type != "suv" {
		t.Fatalf("expected lowercased type, got %q", repo.listFilter.Type)
	}
}

func TestSearchRejectsUnknownVehicleType(t *testing.T) {
	svc := testService(&fakeRepo{})

	_, err := svc.Search(context.Background(), SearchParams{Type: "hovercraft"})
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSearchForwardsAreaFilters(t *testing.T) {
	repo := &fakeRepo{}
	svc := testService(repo)

	_, err := svc.Search(context.Background(), SearchParams{Type: "ev", Zip: " 77001 ", City: " Houston "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.listFilter.Zip != "77001" || repo.listFilter.City != "Houston" {
		t.Fatalf("filters not trimmed and forwarded: %+v", repo.listFilter)
	}
}

func TestSearchWrapsRepositoryFailure(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("connection reset")}
	svc := testService(repo)

	_, err := svc.Search(context.Background(), SearchParams{Type: "suv"})
	if apperr.GetKind(err) != apperr.KindInternal {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestAddValidatesAndNormalizesType(t *testing.T) {
	repo := &fakeRepo{}
	svc := testService(repo)

	car, err := svc.Add(context.Background(), repository.CreateParams{
		Make: "Tesla", Model: "Model 3", Type: "EV", PricePerDay: 89,
		City: "Houston", State: "TX", Zip: "77001",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if car.Type != "ev" {
		t.Fatalf("expected normalized type, got %q", car.Type)
	}
	if repo.created == nil || repo.created.Type != "ev" {
		t.Fatalf("repository received %+v", repo.created)
	}
}

func TestAddRejectsUnknownType(t *testing.T) {
	svc := testService(&fakeRepo{})

	_, err := svc.Add(context.Background(), repository.CreateParams{Type: "boat"})
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetByIDPassesThroughNotFound(t *testing.T) {
	svc := testService(&fakeRepo{})

	_, err := svc.GetByID(context.Background(), uuid.New())
	if apperr.GetKind(err) != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
