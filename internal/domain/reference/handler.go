package reference

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/reference/glossary", h.GetGlossary)
	api.GET("/reference/faq", h.GetFAQ)
}

func (h *Handler) GetGlossary(c echo.Context) error {
	return c.JSON(http.StatusOK, Glossary())
}

func (h *Handler) GetFAQ(c echo.Context) error {
	return c.JSON(http.StatusOK, FAQ())
}
