package patient

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oncotwin/oncotwin/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/patients", h.ListPatients)
	api.POST("/patients", h.CreatePatient)
	api.GET("/patients/:id", h.GetPatient)
	api.PATCH("/patients/:id", h.UpdatePatient)
	api.POST("/patients/:id/lab-results", h.AddLabResult)
	api.POST("/patients/:id/outcomes", h.AddOutcome)
}

func httpError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	case errors.Is(err, ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// ListPatients returns the cohort, optionally sorted by the `sort` and
// `direction` query params.
func (h *Handler) ListPatients(c echo.Context) error {
	patients, err := h.svc.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	if raw := c.QueryParam("sort"); raw != "" {
		key := SortKey(raw)
		if !ValidSortKey(key) {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown sort key")
		}
		dir := Ascending
		if c.QueryParam("direction") == string(Descending) {
			dir = Descending
		}
		patients = Sort(patients, key, dir)
	}

	pg := pagination.FromContext(c)
	lo, hi := pg.Slice(len(patients))
	return c.JSON(http.StatusOK, pagination.NewResponse(patients[lo:hi], len(patients), pg.Limit, pg.Offset))
}

func (h *Handler) CreatePatient(c echo.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) GetPatient(c echo.Context) error {
	p, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) UpdatePatient(c echo.Context) error {
	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := h.svc.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) AddLabResult(c echo.Context) error {
	var result LabResult
	if err := c.Bind(&result); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := h.svc.AddLabResult(c.Request().Context(), c.Param("id"), result)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) AddOutcome(c echo.Context) error {
	var req OutcomeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := h.svc.AddOutcome(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, p)
}
