package notification

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	log *Log
}

func NewHandler(log *Log) *Handler {
	return &Handler{log: log}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/notifications", h.ListNotifications)
	api.GET("/notifications/unread-count", h.UnreadCount)
	api.POST("/notifications/:id/read", h.MarkRead)
}

func (h *Handler) ListNotifications(c echo.Context) error {
	return c.JSON(http.StatusOK, h.log.List())
}

func (h *Handler) UnreadCount(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]int{"unread": h.log.UnreadCount()})
}

// MarkRead always succeeds; marking an unknown or already-read id changes
// nothing.
func (h *Handler) MarkRead(c echo.Context) error {
	h.log.MarkRead(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
