package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	sessions *SessionManager
}

func NewHandler(sessions *SessionManager) *Handler {
	return &Handler{sessions: sessions}
}

// RegisterRoutes mounts the login/logout endpoints on an unguarded group.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/auth/login", h.Login)
	api.POST("/auth/logout", h.Logout)
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Secret     string `json:"secret"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	token, err := h.sessions.Login(req.Identifier, req.Secret)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return c.JSON(http.StatusOK, loginResponse{Token: token})
}

// Logout revokes the presented session. It succeeds even when no valid token
// accompanies the request.
func (h *Handler) Logout(c echo.Context) error {
	if token, err := BearerToken(c); err == nil {
		h.sessions.Logout(token)
	}
	return c.NoContent(http.StatusNoContent)
}
