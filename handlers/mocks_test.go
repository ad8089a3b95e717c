package handlers

import (
	"context"
	"io"
	"time"

	"github.com/Madhav-Gupta-28/primecart-backend-go/models"
	"github.com/Madhav-Gupta-28/primecart-backend-go/store"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Mock Category Store ---

type mockCategoryStore struct {
	mock.Mock
}

func (m *mockCategoryStore) Create(ctx context.Context, name string) (*models.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *mockCategoryStore) Update(ctx context.Context, id, name string) (*models.Category, error) {
	args := m.Called(ctx, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *mockCategoryStore) Remove(ctx context.Context, id string) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *mockCategoryStore) List(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *mockCategoryStore) Read(ctx context.Context, id string) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

// --- Mock Product Store ---

type mockProductStore struct {
	mock.Mock
}

func (m *mockProductStore) Create(ctx context.Context, f store.ProductFields) (*models.Product, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *mockProductStore) Update(ctx context.Context, id string, f store.ProductFields) (*models.Product, error) {
	args := m.Called(ctx, id, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *mockProductStore) Remove(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *mockProductStore) List(ctx context.Context, keyword string, pageSize int) (*store.ProductPage, error) {
	args := m.Called(ctx, keyword, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.ProductPage), args.Error(1)
}

func (m *mockProductStore) ListAll(ctx context.Context) ([]models.PopulatedProduct, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.PopulatedProduct), args.Error(1)
}

func (m *mockProductStore) GetByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *mockProductStore) ListTop(ctx context.Context, n int) ([]models.Product, error) {
	args := m.Called(ctx, n)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *mockProductStore) ListNewest(ctx context.Context, n int) ([]models.Product, error) {
	args := m.Called(ctx, n)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *mockProductStore) Filter(ctx context.Context, categoryIDs []primitive.ObjectID, price *store.PriceRange) ([]models.Product, error) {
	args := m.Called(ctx, categoryIDs, price)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *mockProductStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *mockProductStore) AddReview(ctx context.Context, id string, review models.Review) error {
	args := m.Called(ctx, id, review)
	return args.Error(0)
}

// --- Mock User Store ---

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserStore) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *mockUserStore) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Mock Order Store ---

type mockOrderStore struct {
	mock.Mock
}

func (m *mockOrderStore) Create(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderStore) ListAll(ctx context.Context) ([]models.PopulatedOrder, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.PopulatedOrder), args.Error(1)
}

func (m *mockOrderStore) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *mockOrderStore) GetByID(ctx context.Context, id string) (*models.PopulatedOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PopulatedOrder), args.Error(1)
}

func (m *mockOrderStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderStore) TotalSales(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockOrderStore) SalesByDate(ctx context.Context) ([]models.SalesByDate, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.SalesByDate), args.Error(1)
}

func (m *mockOrderStore) MarkPaid(ctx context.Context, id string, result models.PaymentResult) (*models.Order, error) {
	args := m.Called(ctx, id, result)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *mockOrderStore) MarkDelivered(ctx context.Context, id string) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

// --- Test Helpers ---

type testStores struct {
	categories *mockCategoryStore
	products   *mockProductStore
	users      *mockUserStore
	orders     *mockOrderStore
}

func newTestHandler(uploadDir string) (*Handler, *testStores) {
	s := &testStores{
		categories: new(mockCategoryStore),
		products:   new(mockProductStore),
		users:      new(mockUserStore),
		orders:     new(mockOrderStore),
	}
	h := New(s.categories, s.products, s.users, s.orders, Options{
		JWTSecret:      "test-secret",
		JWTTTL:         time.Hour,
		UploadDir:      uploadDir,
		PaypalClientID: "sb-client",
	}, zerolog.New(io.Discard))
	return h, s
}
