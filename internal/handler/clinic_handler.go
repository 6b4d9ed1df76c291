package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vetclinic/internal/model"
	"vetclinic/internal/service"
)

// ClinicHandler handles clinic endpoints.
type ClinicHandler struct {
	clinics service.ClinicService
}

// NewClinicHandler creates a new clinic handler.
func NewClinicHandler(clinics service.ClinicService) *ClinicHandler {
	return &ClinicHandler{clinics: clinics}
}

// Create godoc
// @Summary Create a clinic
// @Tags clinics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateClinicInput true "Clinic data"
// @Success 201 {object} model.Clinic
// @Failure 401 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /clinics [post]
func (h *ClinicHandler) Create(c echo.Context) error {
	return create(c, h.clinics.Create)
}

// List godoc
// @Summary List clinics
// @Tags clinics
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Page size (max 500)" default(100)
// @Success 200 {array} model.Clinic
// @Failure 401 {object} errors.ErrorResponse
// @Router /clinics [get]
func (h *ClinicHandler) List(c echo.Context) error {
	return list(c, h.clinics.List)
}

// Get godoc
// @Summary Get a clinic by id
// @Tags clinics
// @Produce json
// @Security BearerAuth
// @Param id path int true "Clinic ID"
// @Success 200 {object} model.Clinic
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /clinics/{id} [get]
func (h *ClinicHandler) Get(c echo.Context) error {
	return get(c, h.clinics.Get)
}

// Update godoc
// @Summary Update a clinic
// @Description Only the fields present in the body are changed.
// @Tags clinics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Clinic ID"
// @Param request body service.UpdateClinicInput true "Fields to change"
// @Success 200 {object} model.Clinic
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /clinics/{id} [put]
// @Router /clinics/{id} [patch]
func (h *ClinicHandler) Update(c echo.Context) error {
	return update(c, h.clinics.Update)
}

// Delete godoc
// @Summary Delete a clinic
// @Tags clinics
// @Produce json
// @Security BearerAuth
// @Param id path int true "Clinic ID"
// @Success 200 {object} model.Clinic
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /clinics/{id} [delete]
func (h *ClinicHandler) Delete(c echo.Context) error {
	return remove(c, h.clinics.Delete)
}

// ListVeterinarians godoc
// @Summary List the veterinarians of a clinic
// @Tags clinics
// @Produce json
// @Security BearerAuth
// @Param id path int true "Clinic ID"
// @Success 200 {array} model.Veterinarian
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /clinics/{id}/veterinarians [get]
func (h *ClinicHandler) ListVeterinarians(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}
	vets, err := h.clinics.ListVeterinarians(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	if vets == nil {
		vets = []model.Veterinarian{}
	}
	return c.JSON(http.StatusOK, vets)
}
