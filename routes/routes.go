package routes

import (
	"github.com/Madhav-Gupta-28/primecart-backend-go/handlers"
	customMiddleware "github.com/Madhav-Gupta-28/primecart-backend-go/middleware"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes registers every endpoint. authenticate must place the acting
// user on the context (see middleware.Authenticate).
func SetupRoutes(e *echo.Echo, h *handlers.Handler, authenticate echo.MiddlewareFunc, uploadDir string) {
	admin := []echo.MiddlewareFunc{authenticate, customMiddleware.AdminOnly}

	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.Static("/uploads", uploadDir)

	api := e.Group("/api")

	api.GET("/config/paypal", h.PaypalConfig)

	// User routes
	users := api.Group("/users")
	users.POST("", h.Register)
	users.POST("/auth", h.Login)
	users.POST("/logout", h.Logout)
	users.GET("", h.ListUsers, admin...)
	users.GET("/profile", h.GetUserProfile, authenticate)
	users.PUT("/profile", h.UpdateUserProfile, authenticate)
	users.GET("/:id", h.GetUser, admin...)
	users.PUT("/:id", h.UpdateUser, admin...)
	users.DELETE("/:id", h.DeleteUser, admin...)

	// Category routes
	category := api.Group("/category")
	category.POST("", h.CreateCategory, admin...)
	category.PUT("/:categoryId", h.UpdateCategory, admin...)
	category.DELETE("/:categoryId", h.RemoveCategory, admin...)
	category.GET("", h.ListCategories)
	category.GET("/:id", h.ReadCategory)

	// Product routes
	products := api.Group("/products")
	products.GET("", h.GetProducts)
	products.POST("", h.CreateProduct, admin...)
	products.GET("/all", h.GetAllProducts)
	products.GET("/top", h.GetTopProducts)
	products.GET("/new", h.GetNewProducts)
	products.POST("/filter", h.FilterProducts)
	products.GET("/:id", h.GetProduct)
	products.PUT("/:id", h.UpdateProduct, admin...)
	products.DELETE("/:id", h.RemoveProduct, admin...)
	products.POST("/:id/reviews", h.AddProductReview, authenticate)

	api.POST("/upload", h.UploadImage, admin...)

	// Order routes
	orders := api.Group("/orders")
	orders.POST("", h.CreateOrder, authenticate)
	orders.GET("", h.ListOrders, admin...)
	orders.GET("/mine", h.ListMyOrders, authenticate)
	orders.GET("/total-orders", h.CountOrders)
	orders.GET("/total-sales", h.TotalSales)
	orders.GET("/total-sales-by-date", h.TotalSalesByDate)
	orders.GET("/:id", h.GetOrder, authenticate)
	orders.PUT("/:id/pay", h.MarkOrderPaid, authenticate)
	orders.PUT("/:id/deliver", h.MarkOrderDelivered, admin...)
}
