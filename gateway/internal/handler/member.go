package handler

import (
	"net/http"

	"github.com/Astemirdum/library-console/gateway/internal/model"
	"github.com/Astemirdum/library-console/pkg/kafka"
	"github.com/labstack/echo/v4"
)

// ListUsers filters by ?q= on name or email.
func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.memberSvc.ListUsers(c.Request().Context(), session(c), c.QueryParam("q"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *Handler) SearchUsers(c echo.Context) error {
	users, err := h.memberSvc.SearchUsers(c.Request().Context(), session(c), c.QueryParam("name"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *Handler) Me(c echo.Context) error {
	user, err := h.memberSvc.Me(c.Request().Context(), session(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) CreateUser(c echo.Context) error {
	var req model.UserCreateRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	user, err := h.memberSvc.CreateUser(c.Request().Context(), session(c), req)
	if err != nil {
		return httpError(err)
	}
	h.publish(c, kafka.Event{Type: kafka.EventUserCreated, UserID: user.ID})
	return h.userView(c, http.StatusCreated)
}

func (h *Handler) UpdateUser(c echo.Context) error {
	var req model.UserUpdateRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	id := c.Param("id")
	if _, err := h.memberSvc.UpdateUser(c.Request().Context(), session(c), id, req); err != nil {
		return httpError(err)
	}
	h.publish(c, kafka.Event{Type: kafka.EventUserUpdated, UserID: id})
	return h.userView(c, http.StatusOK)
}
