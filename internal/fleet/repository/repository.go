package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"driveflex_backend/platform/apperr"
)

const carNotFoundMessage = "car not found"

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new fleet repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

const carColumns = "id, make, model, type, price_per_day, city, state, zip, image_url, is_available, created_at, updated_at"

// GetByID retrieves a car by its ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Car, error) {
	query := `
		SELECT ` + carColumns + `
		FROM cars
		WHERE id = $1`

	car, err := scanCar(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Car{}, apperr.NotFound(carNotFoundMessage)
		}
		return Car{}, fmt.Errorf("get car by id: %w", err)
	}
	return car, nil
}

// List retrieves available cars, optionally narrowed by type and area.
func (r *Repo) List(ctx context.Context, filter ListFilter) ([]Car, error) {
	query := `
		SELECT ` + carColumns + `
		FROM cars
		WHERE is_available = TRUE`
	args := make([]interface{}, 0, 3)

	if filter.Type != "" {
		args = append(args, strings.ToLower(filter.Type))
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.Zip != "" {
		args = append(args, filter.Zip)
		query += fmt.Sprintf(" AND zip = $%d", len(args))
	}
	if filter.City != "" {
		args = append(args, filter.City)
		query += fmt.Sprintf(" AND LOWER(city) = LOWER($%d)", len(args))
	}
	query += " ORDER BY price_per_day ASC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	defer rows.Close()

	cars := make([]Car, 0)
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("scan car: %w", err)
		}
		cars = append(cars, car)
	}
	return cars, rows.Err()
}

// Create adds a car to the fleet.
func (r *Repo) Create(ctx context.Context, params CreateParams) (Car, error) {
	query := `
		INSERT INTO cars (make, model, type, price_per_day, city, state, zip, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + carColumns

	car, err := scanCar(r.pool.QueryRow(ctx, query,
		params.Make, params.Model, strings.ToLower(params.Type), params.PricePerDay,
		params.City, params.State, params.Zip, params.ImageURL,
	))
	if err != nil {
		return Car{}, fmt.Errorf("create car: %w", err)
	}
	return car, nil
}

// SetAvailable toggles a car's availability.
func (r *Repo) SetAvailable(ctx context.Context, id uuid.UUID, available bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE cars SET is_available = $1, updated_at = NOW() WHERE id = $2`,
		available, id,
	)
	if err != nil {
		return fmt.Errorf("set car availability: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(carNotFoundMessage)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCar(row rowScanner) (Car, error) {
	var car Car
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&car.ID, &car.Make, &car.Model, &car.Type, &car.PricePerDay,
		&car.City, &car.State, &car.Zip, &car.ImageURL, &car.IsAvailable,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return Car{}, err
	}

	car.CreatedAt = createdAt.Format(time.RFC3339)
	car.UpdatedAt = updatedAt.Format(time.RFC3339)
	return car, nil
}
