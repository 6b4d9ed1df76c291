package handler

import (
	"github.com/labstack/echo/v4"

	"vetclinic/internal/service"
)

// VisitHandler handles visit endpoints.
type VisitHandler struct {
	visits service.VisitService
}

// NewVisitHandler creates a new visit handler.
func NewVisitHandler(visits service.VisitService) *VisitHandler {
	return &VisitHandler{visits: visits}
}

// Create godoc
// @Summary Create a visit
// @Tags visits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateVisitInput true "Visit data"
// @Success 201 {object} model.Visit
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /visits [post]
func (h *VisitHandler) Create(c echo.Context) error {
	return create(c, h.visits.Create)
}

// List godoc
// @Summary List visits
// @Tags visits
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Page size (max 500)" default(100)
// @Success 200 {array} model.Visit
// @Failure 401 {object} errors.ErrorResponse
// @Router /visits [get]
func (h *VisitHandler) List(c echo.Context) error {
	return list(c, h.visits.List)
}

// Get godoc
// @Summary Get a visit by id
// @Tags visits
// @Produce json
// @Security BearerAuth
// @Param id path int true "Visit ID"
// @Success 200 {object} model.Visit
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /visits/{id} [get]
func (h *VisitHandler) Get(c echo.Context) error {
	return get(c, h.visits.Get)
}

// Update godoc
// @Summary Update a visit
// @Description Only the fields present in the body are changed.
// @Tags visits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Visit ID"
// @Param request body service.UpdateVisitInput true "Fields to change"
// @Success 200 {object} model.Visit
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /visits/{id} [put]
// @Router /visits/{id} [patch]
func (h *VisitHandler) Update(c echo.Context) error {
	return update(c, h.visits.Update)
}

// Delete godoc
// @Summary Delete a visit
// @Tags visits
// @Produce json
// @Security BearerAuth
// @Param id path int true "Visit ID"
// @Success 200 {object} model.Visit
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /visits/{id} [delete]
func (h *VisitHandler) Delete(c echo.Context) error {
	return remove(c, h.visits.Delete)
}
