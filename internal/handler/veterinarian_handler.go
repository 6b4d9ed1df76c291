package handler

import (
	"github.com/labstack/echo/v4"

	"vetclinic/internal/service"
)

// VeterinarianHandler handles veterinarian endpoints.
type VeterinarianHandler struct {
	veterinarians service.VeterinarianService
}

// NewVeterinarianHandler creates a new veterinarian handler.
func NewVeterinarianHandler(veterinarians service.VeterinarianService) *VeterinarianHandler {
	return &VeterinarianHandler{veterinarians: veterinarians}
}

// Create godoc
// @Summary Create a veterinarian
// @Tags veterinarians
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateVeterinarianInput true "Veterinarian data"
// @Success 201 {object} model.Veterinarian
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /veterinarians [post]
func (h *VeterinarianHandler) Create(c echo.Context) error {
	return create(c, h.veterinarians.Create)
}

// List godoc
// @Summary List veterinarians
// @Tags veterinarians
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Page size (max 500)" default(100)
// @Success 200 {array} model.Veterinarian
// @Failure 401 {object} errors.ErrorResponse
// @Router /veterinarians [get]
func (h *VeterinarianHandler) List(c echo.Context) error {
	return list(c, h.veterinarians.List)
}

// Get godoc
// @Summary Get a veterinarian by id
// @Tags veterinarians
// @Produce json
// @Security BearerAuth
// @Param id path int true "Veterinarian ID"
// @Success 200 {object} model.Veterinarian
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /veterinarians/{id} [get]
func (h *VeterinarianHandler) Get(c echo.Context) error {
	return get(c, h.veterinarians.Get)
}

// Update godoc
// @Summary Update a veterinarian
// @Description Only the fields present in the body are changed.
// @Tags veterinarians
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Veterinarian ID"
// @Param request body service.UpdateVeterinarianInput true "Fields to change"
// @Success 200 {object} model.Veterinarian
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /veterinarians/{id} [put]
// @Router /veterinarians/{id} [patch]
func (h *VeterinarianHandler) Update(c echo.Context) error {
	return update(c, h.veterinarians.Update)
}

// Delete godoc
// @Summary Delete a veterinarian
// @Tags veterinarians
// @Produce json
// @Security BearerAuth
// @Param id path int true "Veterinarian ID"
// @Success 200 {object} model.Veterinarian
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /veterinarians/{id} [delete]
func (h *VeterinarianHandler) Delete(c echo.Context) error {
	return remove(c, h.veterinarians.Delete)
}
