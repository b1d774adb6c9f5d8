package repository

import (
	"context"

	"github.com/google/uuid"
)

// Car represents one rentable vehicle in the fleet.
type Car struct {
	ID          uuid.UUID `db:"id"`
	Make        string    `db:"make"`
	Model       string    `db:"model"`
	Type        string    `db:"type"`
	PricePerDay float64   `db:"price_per_day"`
	City        string    `db:"city"`
	State       string    `db:"state"`
	Zip         string    `db:"zip"`
	ImageURL    string    `db:"image_url"`
	IsAvailable bool      `db:"is_available"`
	CreatedAt   string    `db:"created_at"`
	UpdatedAt   string    `db:"updated_at"`
}

// ListFilter narrows a fleet listing. Empty fields are ignored.
type ListFilter struct {
	Type string
	Zip  string
	City string
}

// CreateParams contains parameters for adding a car to the fleet.
type CreateParams struct {
	Make        string
	Model       string
	Type        string
	PricePerDay float64
	City        string
	State       string
	Zip         string
	ImageURL    string
}

// CarReader provides read operations over the fleet.
type CarReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (Car, error)
	List(ctx context.Context, filter ListFilter) ([]Car, error)
}

// CarWriter provides write operations over the fleet.
type CarWriter interface {
	Create(ctx context.Context, params CreateParams) (Car, error)
	SetAvailable(ctx context.Context, id uuid.UUID, available bool) error
}

// Repository combines all fleet repository operations.
type Repository interface {
	CarReader
	CarWriter
}
