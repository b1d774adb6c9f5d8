package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"driveflex_backend/internal/fleet/repository"
	"driveflex_backend/internal/fleet/service"
	"driveflex_backend/internal/fleet/transport"
	"driveflex_backend/platform/httpkit"
	"driveflex_backend/platform/validator"
)

// Handler handles HTTP requests for the fleet.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid car ID"
)

// New creates a new fleet handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Search lists available cars, filtered by type and area.
// GET /api/v1/cars?type=suv&zip=77001&city=Houston
func (h *Handler) Search(c *gin.Context) {
	var req transport.SearchCarsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	cars, err := h.svc.Search(c.Request.Context(), service.SearchParams{
		Type: req.Type,
		Zip:  req.Zip,
		City: req.City,
	})
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toListResponse(cars))
}

// GetByID retrieves a car by ID.
// GET /api/v1/cars/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	car, err := h.svc.GetByID(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toCarResponse(car))
}

// Create adds a car to the fleet.
// POST /api/v1/cars
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	car, err := h.svc.Add(c.Request.Context(), repository.CreateParams{
		Make:        req.Make,
		Model:       req.Model,
		Type:        req.Type,
		PricePerDay: req.PricePerDay,
		City:        req.City,
		State:       req.State,
		Zip:         req.Zip,
		ImageURL:    req.ImageURL,
	})
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, toCarResponse(car))
}

func toCarResponse(car repository.Car) transport.CarResponse {
	return transport.CarResponse{
		ID:          car.ID,
		Make:        car.Make,
		Model:       car.Model,
		Type:        car.Type,
		PricePerDay: car.PricePerDay,
		City:        car.City,
		State:       car.State,
		Zip:         car.Zip,
		ImageURL:    car.ImageURL,
		IsAvailable: car.IsAvailable,
		CreatedAt:   car.CreatedAt,
		UpdatedAt:   car.UpdatedAt,
	}
}

func toListResponse(cars []repository.Car) transport.CarListResponse {
	items := make([]transport.CarResponse, 0, len(cars))
	for _, car := range cars {
		items = append(items, toCarResponse(car))
	}
	return transport.CarListResponse{Items: items, Total: len(items)}
}
