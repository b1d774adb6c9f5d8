package transport

import "github.com/google/uuid"

// LookupRequest identifies a reservation to find.
type LookupRequest struct {
	LastName          string `json:"lastName" validate:"required,min=2,max=100"`
	ReservationNumber string `json:"reservationNumber" validate:"required,min=4,max=20"`
	Zip               string `json:"zip" validate:"required"`
}

// AreaRequest lists reservations for a resolved area.
type AreaRequest struct {
	Zip string `form:"zip" validate:"required"`
}

// ReservationResponse represents a reservation in API responses.
type ReservationResponse struct {
	ID                uuid.UUID `json:"id"`
	ReservationNumber string    `json:"reservationNumber"`
	LastName          string    `json:"lastName"`
	ZipCode           string    `json:"zipCode"`
	PickupLocation    string    `json:"pickupLocation"`
	ReturnLocation    string    `json:"returnLocation"`
	PickupDate        string    `json:"pickupDate"`
	ReturnDate        string    `json:"returnDate"`
	Status            string    `json:"status"`
	PaymentStatus     string    `json:"paymentStatus"`
	PricePerDay       float64   `json:"pricePerDay"`
	TotalAmount       float64   `json:"totalAmount"`
	CarMakeModel      string    `json:"carMakeModel"`
	CarType           string    `json:"carType"`
	CarImageURL       string    `json:"carImageUrl"`
}

// LookupResponse wraps found reservations.
type LookupResponse struct {
	Results []ReservationResponse `json:"results"`
}
