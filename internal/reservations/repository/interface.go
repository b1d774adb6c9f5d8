package repository

import (
	"context"

	"github.com/google/uuid"
)

// Reservation is one rental booking, looked up by renter details and area ZIP.
type Reservation struct {
	ID                uuid.UUID `db:"id"`
	ReservationNumber string    `db:"reservation_number"`
	LastName          string    `db:"last_name"`
	ZipCode           string    `db:"zip_code"`
	PickupLocation    string    `db:"pickup_location"`
	ReturnLocation    string    `db:"return_location"`
	PickupDate        string    `db:"pickup_date"`
	ReturnDate        string    `db:"return_date"`
	Status            string    `db:"status"`
	PaymentStatus     string    `db:"payment_status"`
	PricePerDay       float64   `db:"price_per_day"`
	TotalAmount       float64   `db:"total_amount"`
	CarMakeModel      string    `db:"car_make_model"`
	CarType           string    `db:"car_type"`
	CarImageURL       string    `db:"car_image_url"`
}

// Reservation lifecycle states.
const (
	StatusUpcoming  = "UPCOMING"
	StatusPast      = "PAST"
	StatusCancelled = "CANCELLED"
)

// FindParams identifies a reservation: renter last name, the confirmation
// number, and the area ZIP of the pickup location.
type FindParams struct {
	LastName          string
	ReservationNumber string
	Zip               string
}

// ReservationReader provides read operations for reservations.
type ReservationReader interface {
	Find(ctx context.Context, params FindParams) ([]Reservation, error)
	ListByArea(ctx context.Context, zip string) ([]Reservation, error)
}

// ReservationWriter provides write operations for reservations.
type ReservationWriter interface {
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
}

// Repository combines all reservation repository operations.
type Repository interface {
	ReservationReader
	ReservationWriter
}
