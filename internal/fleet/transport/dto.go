package transport

import "github.com/google/uuid"

// SearchCarsRequest contains the fleet search query parameters.
type SearchCarsRequest struct {
	Type string `form:"type"`
	Zip  string `form:"zip" validate:"omitempty,uszip"`
	City string `form:"city" validate:"omitempty,max=100"`
}

// CreateCarRequest contains data for adding a car to the fleet.
type CreateCarRequest struct {
	Make        string  `json:"make" validate:"required,min=1,max=50"`
	Model       string  `json:"model" validate:"required,min=1,max=50"`
	Type        string  `json:"type" validate:"required"`
	PricePerDay float64 `json:"pricePerDay" validate:"required,gt=0"`
	City        string  `json:"city" validate:"required,max=100"`
	State       string  `json:"state" validate:"required,len=2"`
	Zip         string  `json:"zip" validate:"required,uszip"`
	ImageURL    string  `json:"imageUrl" validate:"omitempty,url"`
}

// CarResponse represents a car in API responses.
type CarResponse struct {
	ID          uuid.UUID `json:"id"`
	Make        string    `json:"make"`
	Model       string    `json:"model"`
	Type        string    `json:"type"`
	PricePerDay float64   `json:"pricePerDay"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Zip         string    `json:"zip"`
	ImageURL    string    `json:"imageUrl"`
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   string    `json:"createdAt"`
	UpdatedAt   string    `json:"updatedAt"`
}

// CarListResponse wraps a list of cars.
type CarListResponse struct {
	Items []CarResponse `json:"items"`
	Total int           `json:"total"`
}
