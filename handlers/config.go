package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) PaypalConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"clientId": h.opts.PaypalClientID})
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
