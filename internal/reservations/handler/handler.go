package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"driveflex_backend/internal/reservations/repository"
	"driveflex_backend/internal/reservations/service"
	"driveflex_backend/internal/reservations/transport"
	"driveflex_backend/platform/httpkit"
	"driveflex_backend/platform/validator"
)

// Handler handles HTTP requests for reservation lookups.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// New creates a new reservations handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Lookup finds reservations by last name, confirmation number and area ZIP.
// POST /api/v1/reservations/lookup
func (h *Handler) Lookup(c *gin.Context) {
	var req transport.LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	results, err := h.svc.Lookup(c.Request.Context(), service.LookupParams{
		LastName:          req.LastName,
		ReservationNumber: req.ReservationNumber,
		Zip:               req.Zip,
	})
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toLookupResponse(results))
}

// ListByArea lists reservations with a pickup in the resolved area.
// GET /api/v1/reservations?zip=77001
func (h *Handler) ListByArea(c *gin.Context) {
	var req transport.AreaRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	results, err := h.svc.ListByArea(c.Request.Context(), req.Zip)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toLookupResponse(results))
}

func toLookupResponse(reservations []repository.Reservation) transport.LookupResponse {
	results := make([]transport.ReservationResponse, 0, len(reservations))
	for _, res := range reservations {
		results = append(results, transport.ReservationResponse{
			ID:                res.ID,
			ReservationNumber: res.ReservationNumber,
			LastName:          res.LastName,
			ZipCode:           res.ZipCode,
			PickupLocation:    res.PickupLocation,
			ReturnLocation:    res.ReturnLocation,
			PickupDate:        res.PickupDate,
			ReturnDate:        res.ReturnDate,
			Status:            res.Status,
			PaymentStatus:     res.PaymentStatus,
			PricePerDay:       res.PricePerDay,
			TotalAmount:       res.TotalAmount,
			CarMakeModel:      res.CarMakeModel,
			CarType:           res.CarType,
			CarImageURL:       res.CarImageURL,
		})
	}
	return transport.LookupResponse{Results: results}
}
