package handler

import (
	"github.com/labstack/echo/v4"

	"vetclinic/internal/service"
)

// PetHandler handles pet endpoints.
type PetHandler struct {
	pets service.PetService
}

// NewPetHandler creates a new pet handler.
func NewPetHandler(pets service.PetService) *PetHandler {
	return &PetHandler{pets: pets}
}

// Create godoc
// @Summary Create a pet
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreatePetInput true "Pet data"
// @Success 201 {object} model.Pet
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /pets [post]
func (h *PetHandler) Create(c echo.Context) error {
	return create(c, h.pets.Create)
}

// List godoc
// @Summary List pets
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Page size (max 500)" default(100)
// @Success 200 {array} model.Pet
// @Failure 401 {object} errors.ErrorResponse
// @Router /pets [get]
func (h *PetHandler) List(c echo.Context) error {
	return list(c, h.pets.List)
}

// Get godoc
// @Summary Get a pet by id
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pet ID"
// @Success 200 {object} model.Pet
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /pets/{id} [get]
func (h *PetHandler) Get(c echo.Context) error {
	return get(c, h.pets.Get)
}

// Update godoc
// @Summary Update a pet
// @Description Only the fields present in the body are changed.
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pet ID"
// @Param request body service.UpdatePetInput true "Fields to change"
// @Success 200 {object} model.Pet
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /pets/{id} [put]
// @Router /pets/{id} [patch]
func (h *PetHandler) Update(c echo.Context) error {
	return update(c, h.pets.Update)
}

// Delete godoc
// @Summary Delete a pet
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pet ID"
// @Success 200 {object} model.Pet
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /pets/{id} [delete]
func (h *PetHandler) Delete(c echo.Context) error {
	return remove(c, h.pets.Delete)
}
