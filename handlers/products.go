package handlers

import (
	"net/http"

	"github.com/Madhav-Gupta-28/primecart-backend-go/middleware"
	"github.com/Madhav-Gupta-28/primecart-backend-go/models"
	"github.com/Madhav-Gupta-28/primecart-backend-go/store"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// productRequest fields are checked in declaration order; the first missing
// one is the only one reported.
type productRequest struct {
	Name         string  `json:"name" form:"name" validate:"required"`
	Description  string  `json:"description" form:"description" validate:"required"`
	Price        float64 `json:"price" form:"price" validate:"required,gte=0"`
	Quantity     int     `json:"quantity" form:"quantity" validate:"required,gte=0"`
	Category     string  `json:"category" form:"category" validate:"required"`
	Brand        string  `json:"brand" form:"brand" validate:"required"`
	Image        string  `json:"image" form:"image"`
	CountInStock *int    `json:"countInStock" form:"countInStock" validate:"omitempty,gte=0"`
}

func (r productRequest) fields() (store.ProductFields, error) {
	categoryID, err := primitive.ObjectIDFromHex(r.Category)
	if err != nil {
		return store.ProductFields{}, &invalidInput{msg: "Invalid category ID"}
	}
	return store.ProductFields{
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		Quantity:     r.Quantity,
		Category:     categoryID,
		Brand:        r.Brand,
		Image:        r.Image,
		CountInStock: r.CountInStock,
	}, nil
}

func (h *Handler) parseProduct(c echo.Context) (store.ProductFields, error) {
	var req productRequest
	if err := bind(c, &req); err != nil {
		return store.ProductFields{}, err
	}
	if err := validateRequest(req); err != nil {
		return store.ProductFields{}, err
	}
	return req.fields()
}

func (h *Handler) CreateProduct(c echo.Context) error {
	f, err := h.parseProduct(c)
	if err != nil {
		return h.fail(c, "Product", http.StatusBadRequest, err)
	}

	product, err := h.products.Create(c.Request().Context(), f)
	if err != nil {
		return h.fail(c, "Product", http.StatusBadRequest, err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *Handler) UpdateProduct(c echo.Context) error {
	f, err := h.parseProduct(c)
	if err != nil {
		return h.fail(c, "Product", http.StatusBadRequest, err)
	}

	product, err := h.products.Update(c.Request().Context(), c.Param("id"), f)
	if err != nil {
		return h.fail(c, "Product", http.StatusBadRequest, err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *Handler) RemoveProduct(c echo.Context) error {
	removed, err := h.products.Remove(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, "Product", http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, removed)
}

// GetProducts serves the first page of a keyword search.
func (h *Handler) GetProducts(c echo.Context) error {
	page, err := h.products.List(c.Request().Context(), c.QueryParam("keyword"), store.DefaultPageSize)
	if err != nil {
		return h.fail(c, "Product", http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *Handler) GetProduct(c echo.Context) error {
	product, err := h.products.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, "Product", http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *Handler) GetAllProducts(c echo.Context) error {
	products, err := h.products.ListAll(c.Request().Context())
	if err != nil {
		return h.fail(c, "Product", http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *Handler) GetTopProducts(c echo.Context) error {
	products, err := h.products.ListTop(c.Request().Context(), store.DefaultShowcaseSize)
	if err != nil {
		return h.fail(c, "Product", http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *Handler) GetNewProducts(c echo.Context) error {
	products, err := h.products.ListNewest(c.Request().Context(), store.DefaultShowcaseSize)
	if err != nil {
		return h.fail(c, "Product", http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, products)
}

type filterRequest struct {
	Checked []string  `json:"checked"`
	Radio   []float64 `json:"radio"`
}

// FilterProducts narrows by category ids (checked) and an inclusive
// [min, max] price pair (radio). Either may be empty.
func (h *Handler) FilterProducts(c echo.Context) error {
	var req filterRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, "Product", http.StatusInternalServerError, err)
	}

	categoryIDs := make([]primitive.ObjectID, 0, len(req.Checked))
	for _, id := range req.Checked {
		oid, err := store.ParseID(id)
		if err != nil {
			return h.fail(c, "Product", http.StatusInternalServerError, err)
		}
		categoryIDs = append(categoryIDs, oid)
	}

	var price *store.PriceRange
	if len(req.Radio) >= 2 {
		price = &store.PriceRange{Min: req.Radio[0], Max: req.Radio[1]}
	}

	products, err := h.products.Filter(c.Request().Context(), categoryIDs, price)
	if err != nil {
		return h.fail(c, "Product", http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, products)
}

type reviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// AddProductReview requires an authenticated user; the review name is a
// snapshot of their username.
func (h *Handler) AddProductReview(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorBody("Not authorized"))
	}

	var req reviewRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, "Product", http.StatusBadRequest, err)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return h.fail(c, "Product", http.StatusBadRequest, &invalidInput{msg: "Rating must be between 1 and 5"})
	}

	review := models.Review{
		User:    user.ID,
		Name:    user.Username,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if err := h.products.AddReview(c.Request().Context(), c.Param("id"), review); err != nil {
		return h.fail(c, "Product", http.StatusBadRequest, err)
	}

	h.log.Info().
		Str("product_id", c.Param("id")).
		Str("user_id", user.ID.Hex()).
		Int("rating", req.Rating).
		Msg("review added")
	return c.JSON(http.StatusCreated, map[string]string{"message": "Review Added"})
}
