package simulation

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oncotwin/oncotwin/internal/domain/patient"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/simulations/scenarios", h.ListScenarios)
	api.POST("/patients/:id/simulations", h.RunSimulation)
}

// ListScenarios returns the planner's scenario catalog.
func (h *Handler) ListScenarios(c echo.Context) error {
	return c.JSON(http.StatusOK, Catalog())
}

// RunSimulation executes the run synchronously and returns the updated
// patient, whose simulations slice carries the new entry last.
func (h *Handler) RunSimulation(c echo.Context) error {
	var req RunRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := h.svc.Run(c.Request().Context(), c.Param("id"), req, nil)
	switch {
	case err == nil:
		return c.JSON(http.StatusCreated, p)
	case errors.Is(err, patient.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, patient.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
