package handlers

import (
	"net/http"

	"github.com/Madhav-Gupta-28/primecart-backend-go/middleware"
	"github.com/Madhav-Gupta-28/primecart-backend-go/models"
	"github.com/Madhav-Gupta-28/primecart-backend-go/store"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type orderItemRequest struct {
	ID      string `json:"_id"`
	Product string `json:"product"`
	Qty     int    `json:"qty"`
}

func (r orderItemRequest) productID() string {
	if r.Product != "" {
		return r.Product
	}
	return r.ID
}

type createOrderRequest struct {
	OrderItems      []orderItemRequest     `json:"orderItems"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
}

type payOrderRequest struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	UpdateTime string `json:"update_time"`
	Payer      struct {
		EmailAddress string `json:"email_address"`
	} `json:"payer"`
}

// CreateOrder prices the order from the catalog; prices sent by the client
// are ignored.
func (h *Handler) CreateOrder(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorBody("Not authorized"))
	}

	var req createOrderRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, "Order", http.StatusInternalServerError, err)
	}
	if len(req.OrderItems) == 0 {
		return c.JSON(http.StatusBadRequest, errorBody("No order items"))
	}

	ids := make([]primitive.ObjectID, 0, len(req.OrderItems))
	for _, it := range req.OrderItems {
		if it.Qty <= 0 {
			return c.JSON(http.StatusBadRequest, errorBody("Item quantity must be positive"))
		}
		oid, err := store.ParseID(it.productID())
		if err != nil {
			return h.fail(c, "Order", http.StatusBadRequest, err)
		}
		ids = append(ids, oid)
	}

	products, err := h.products.FindByIDs(c.Request().Context(), ids)
	if err != nil {
		return h.fail(c, "Order", http.StatusInternalServerError, err)
	}
	byID := make(map[primitive.ObjectID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]models.OrderItem, 0, len(req.OrderItems))
	for i, it := range req.OrderItems {
		p, found := byID[ids[i]]
		if !found {
			return h.fail(c, "Order", http.StatusInternalServerError, &store.MissingProductError{ID: ids[i].Hex()})
		}
		items = append(items, models.OrderItem{
			Name:    p.Name,
			Qty:     it.Qty,
			Image:   p.Image,
			Price:   p.Price,
			Product: p.ID,
		})
	}

	order := &models.Order{
		User:            user.ID,
		OrderItems:      items,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
	}
	order.ApplyPrices(models.CalcPrices(items))

	if err := h.orders.Create(c.Request().Context(), order); err != nil {
		return h.fail(c, "Order", http.StatusInternalServerError, err)
	}

	h.log.Info().
		Str("order_id", order.ID.Hex()).
		Str("user_id", user.ID.Hex()).
		Float64("total", order.TotalPrice).
		Msg("order created")
	return c.JSON(http.StatusCreated, order)
}

func (h *Handler) ListOrders(c echo.Context) error {
	orders, err := h.orders.ListAll(c.Request().Context())
	if err != nil {
		return h.fail(c, "Order", http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *Handler) ListMyOrders(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorBody("Not authorized"))
	}
	orders, err := h.orders.ListByUser(c.Request().Context(), user.ID)
	if err != nil {
		return h.fail(c, "Order", http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *Handler) CountOrders(c echo.Context) error {
	n, err := h.orders.Count(c.Request().Context())
	if err != nil {
		return h.fail(c, "Order", http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"totalOrders": n})
}

func (h *Handler) TotalSales(c echo.Context) error {
	total, err := h.orders.TotalSales(c.Request().Context())
	if err != nil {
		return h.fail(c, "Order", http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, map[string]float64{"totalSales": total})
}

func (h *Handler) TotalSalesByDate(c echo.Context) error {
	rows, err := h.orders.SalesByDate(c.Request().Context())
	if err != nil {
		return h.fail(c, "Order", http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// ownOrder loads the order named by the id param when the acting user placed
// it or is an admin. It writes the error response itself and returns nil
// when access is refused.
func (h *Handler) ownOrder(c echo.Context) (*models.PopulatedOrder, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, c.JSON(http.StatusUnauthorized, errorBody("Not authorized"))
	}

	order, err := h.orders.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return nil, h.fail(c, "Order", http.StatusInternalServerError, err)
	}
	if order.Order.User != user.ID && !user.IsAdmin {
		return nil, c.JSON(http.StatusForbidden, errorBody("Not authorized to access this order"))
	}
	return order, nil
}

// GetOrder is limited to the order's owner and admins.
func (h *Handler) GetOrder(c echo.Context) error {
	order, err := h.ownOrder(c)
	if order == nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// MarkOrderPaid stores the payment result reported by the client's checkout;
// no payment provider is contacted. Only the owner or an admin may pay.
func (h *Handler) MarkOrderPaid(c echo.Context) error {
	if order, err := h.ownOrder(c); order == nil {
		return err
	}

	var req payOrderRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, "Order", http.StatusInternalServerError, err)
	}

	order, err := h.orders.MarkPaid(c.Request().Context(), c.Param("id"), models.PaymentResult{
		ID:           req.ID,
		Status:       req.Status,
		UpdateTime:   req.UpdateTime,
		EmailAddress: req.Payer.EmailAddress,
	})
	if err != nil {
		return h.fail(c, "Order", http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *Handler) MarkOrderDelivered(c echo.Context) error {
	order, err := h.orders.MarkDelivered(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, "Order", http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, order)
}
