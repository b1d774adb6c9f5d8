package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"driveflex_backend/platform/apperr"
)

const reservationNotFoundMessage = "reservation not found"

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reservations repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

const reservationColumns = `id, reservation_number, last_name, zip_code,
	pickup_location, return_location, pickup_date, return_date,
	status, payment_status, price_per_day, total_amount,
	car_make_model, car_type, car_image_url`

// Find retrieves reservations matching renter last name, confirmation number
// and area ZIP. Matching is case-insensitive on the name and number.
func (r *Repo) Find(ctx context.Context, params FindParams) ([]Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE LOWER(last_name) = LOWER($1)
		  AND UPPER(reservation_number) = UPPER($2)
		  AND zip_code = $3
		ORDER BY pickup_date DESC`

	rows, err := r.pool.Query(ctx, query, params.LastName, params.ReservationNumber, params.Zip)
	if err != nil {
		return nil, fmt.Errorf("find reservations: %w", err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// ListByArea retrieves reservations with a pickup in the given ZIP.
func (r *Repo) ListByArea(ctx context.Context, zip string) ([]Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE zip_code = $1
		ORDER BY pickup_date DESC`

	rows, err := r.pool.Query(ctx, query, zip)
	if err != nil {
		return nil, fmt.Errorf("list reservations by area: %w", err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// SetStatus updates a reservation's lifecycle state.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE reservations SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("set reservation status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(reservationNotFoundMessage)
	}
	return nil
}

type rowIterator interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

func scanReservations(rows rowIterator) ([]Reservation, error) {
	reservations := make([]Reservation, 0)
	for rows.Next() {
		var res Reservation
		var pickupDate, returnDate time.Time

		err := rows.Scan(
			&res.ID, &res.ReservationNumber, &res.LastName, &res.ZipCode,
			&res.PickupLocation, &res.ReturnLocation, &pickupDate, &returnDate,
			&res.Status, &res.PaymentStatus, &res.PricePerDay, &res.TotalAmount,
			&res.CarMakeModel, &res.CarType, &res.CarImageURL,
		)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}

		res.PickupDate = pickupDate.Format(time.RFC3339)
		res.ReturnDate = returnDate.Format(time.RFC3339)
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}
