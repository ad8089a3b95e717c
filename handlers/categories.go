package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type categoryRequest struct {
	Name string `json:"name" form:"name" validate:"required"`
}

func (h *Handler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, "Category", http.StatusBadRequest, err)
	}
	if err := validateRequest(req); err != nil {
		return h.fail(c, "Category", http.StatusBadRequest, err)
	}

	category, err := h.categories.Create(c.Request().Context(), req.Name)
	if err != nil {
		return h.fail(c, "Category", http.StatusBadRequest, err)
	}
	return c.JSON(http.StatusOK, category)
}

// UpdateCategory replaces the name unconditionally.
func (h *Handler) UpdateCategory(c echo.Context) error {
	var req categoryRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, "Category", http.StatusBadRequest, err)
	}

	category, err := h.categories.Update(c.Request().Context(), c.Param("categoryId"), req.Name)
	if err != nil {
		return h.fail(c, "Category", http.StatusBadRequest, err)
	}
	return c.JSON(http.StatusOK, category)
}

// RemoveCategory answers 200 with null when the id matched nothing.
func (h *Handler) RemoveCategory(c echo.Context) error {
	removed, err := h.categories.Remove(c.Request().Context(), c.Param("categoryId"))
	if err != nil {
		return h.fail(c, "Category", http.StatusBadRequest, err)
	}
	return c.JSON(http.StatusOK, removed)
}

func (h *Handler) ListCategories(c echo.Context) error {
	categories, err := h.categories.List(c.Request().Context())
	if err != nil {
		return h.fail(c, "Category", http.StatusBadRequest, err)
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *Handler) ReadCategory(c echo.Context) error {
	category, err := h.categories.Read(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, "Category", http.StatusBadRequest, err)
	}
	return c.JSON(http.StatusOK, category)
}
