package handlers

import (
	"context"
	"time"

	"github.com/Madhav-Gupta-28/primecart-backend-go/models"
	"github.com/Madhav-Gupta-28/primecart-backend-go/store"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CategoryStore interface {
	Create(ctx context.Context, name string) (*models.Category, error)
	Update(ctx context.Context, id, name string) (*models.Category, error)
	Remove(ctx context.Context, id string) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Read(ctx context.Context, id string) (*models.Category, error)
}

type ProductStore interface {
	Create(ctx context.Context, f store.ProductFields) (*models.Product, error)
	Update(ctx context.Context, id string, f store.ProductFields) (*models.Product, error)
	Remove(ctx context.Context, id string) (*models.Product, error)
	List(ctx context.Context, keyword string, pageSize int) (*store.ProductPage, error)
	ListAll(ctx context.Context) ([]models.PopulatedProduct, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	ListTop(ctx context.Context, n int) ([]models.Product, error)
	ListNewest(ctx context.Context, n int) ([]models.Product, error)
	Filter(ctx context.Context, categoryIDs []primitive.ObjectID, price *store.PriceRange) ([]models.Product, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error)
	AddReview(ctx context.Context, id string, review models.Review) error
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	ListAll(ctx context.Context) ([]models.PopulatedOrder, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
	GetByID(ctx context.Context, id string) (*models.PopulatedOrder, error)
	Count(ctx context.Context) (int64, error)
	TotalSales(ctx context.Context) (float64, error)
	SalesByDate(ctx context.Context) ([]models.SalesByDate, error)
	MarkPaid(ctx context.Context, id string, result models.PaymentResult) (*models.Order, error)
	MarkDelivered(ctx context.Context, id string) (*models.Order, error)
}

// Options carries the settings handlers need from config.
type Options struct {
	JWTSecret      string
	JWTTTL         time.Duration
	SecureCookies  bool
	UploadDir      string
	PaypalClientID string
}

// Handler serves every API endpoint. Stores are injected so tests can swap
// them for mocks.
type Handler struct {
	categories CategoryStore
	products   ProductStore
	users      UserStore
	orders     OrderStore
	opts       Options
	log        zerolog.Logger
}

func New(categories CategoryStore, products ProductStore, users UserStore, orders OrderStore, opts Options, log zerolog.Logger) *Handler {
	return &Handler{
		categories: categories,
		products:   products,
		users:      users,
		orders:     orders,
		opts:       opts,
		log:        log,
	}
}
