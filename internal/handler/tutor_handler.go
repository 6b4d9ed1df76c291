package handler

import (
	"github.com/labstack/echo/v4"

	"vetclinic/internal/service"
)

// TutorHandler handles tutor endpoints.
type TutorHandler struct {
	tutors service.TutorService
}

// NewTutorHandler creates a new tutor handler.
func NewTutorHandler(tutors service.TutorService) *TutorHandler {
	return &TutorHandler{tutors: tutors}
}

// Create godoc
// @Summary Create a tutor
// @Tags tutors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateTutorInput true "Tutor data"
// @Success 201 {object} model.Tutor
// @Failure 401 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /tutors [post]
func (h *TutorHandler) Create(c echo.Context) error {
	return create(c, h.tutors.Create)
}

// List godoc
// @Summary List tutors
// @Tags tutors
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Page size (max 500)" default(100)
// @Success 200 {array} model.Tutor
// @Failure 401 {object} errors.ErrorResponse
// @Router /tutors [get]
func (h *TutorHandler) List(c echo.Context) error {
	return list(c, h.tutors.List)
}

// Get godoc
// @Summary Get a tutor by id
// @Tags tutors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tutor ID"
// @Success 200 {object} model.Tutor
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tutors/{id} [get]
func (h *TutorHandler) Get(c echo.Context) error {
	return get(c, h.tutors.Get)
}

// Update godoc
// @Summary Update a tutor
// @Description Only the fields present in the body are changed.
// @Tags tutors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tutor ID"
// @Param request body service.UpdateTutorInput true "Fields to change"
// @Success 200 {object} model.Tutor
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /tutors/{id} [put]
// @Router /tutors/{id} [patch]
func (h *TutorHandler) Update(c echo.Context) error {
	return update(c, h.tutors.Update)
}

// Delete godoc
// @Summary Delete a tutor
// @Tags tutors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tutor ID"
// @Success 200 {object} model.Tutor
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /tutors/{id} [delete]
func (h *TutorHandler) Delete(c echo.Context) error {
	return remove(c, h.tutors.Delete)
}
