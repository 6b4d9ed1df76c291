package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vetclinic/internal/config"
)

// HealthResponse reports liveness and build information.
type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
}

// HealthHandler serves the public informational endpoints.
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Health godoc
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:      "healthy",
		Environment: h.cfg.Environment,
		Version:     h.cfg.AppVersion,
	})
}

// Root returns the welcome message.
func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Bem-vindo à API de Clínicas Veterinárias. Acesse /swagger/index.html para ver a documentação.",
	})
}
