package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Madhav-Gupta-28/primecart-backend-go/database"
	"github.com/Madhav-Gupta-28/primecart-backend-go/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderStore struct {
	collection *mongo.Collection
}

func NewOrderStore(db *mongo.Database) *OrderStore {
	return &OrderStore{collection: db.Collection(database.OrdersCollection)}
}

func (s *OrderStore) Create(ctx context.Context, order *models.Order) error {
	now := time.Now()
	order.ID = primitive.NewObjectID()
	order.CreatedAt = now
	order.UpdatedAt = now

	if _, err := s.collection.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

type orderWithUser struct {
	models.Order `bson:",inline"`
	UserDoc      []models.UserRef `bson:"userDoc"`
}

// populate runs match through a users $lookup. withEmail controls whether the
// embedded user carries the email address.
func (s *OrderStore) populate(ctx context.Context, match bson.M, withEmail bool) ([]models.PopulatedOrder, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: database.UsersCollection},
			{Key: "localField", Value: "user"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "userDoc"},
		}}},
	}

	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate orders: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []orderWithUser
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	out := make([]models.PopulatedOrder, 0, len(rows))
	for _, row := range rows {
		po := models.PopulatedOrder{Order: row.Order}
		if len(row.UserDoc) > 0 {
			u := row.UserDoc[0]
			if !withEmail {
				u.Email = ""
			}
			po.User = &u
		}
		out = append(out, po)
	}
	return out, nil
}

// ListAll returns every order with the buyer's id and username.
func (s *OrderStore) ListAll(ctx context.Context) ([]models.PopulatedOrder, error) {
	return s.populate(ctx, bson.M{}, false)
}

func (s *OrderStore) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"user": userID})
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

// GetByID returns the order with the buyer's username and email.
func (s *OrderStore) GetByID(ctx context.Context, id string) (*models.PopulatedOrder, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	orders, err := s.populate(ctx, bson.M{"_id": oid}, true)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrNotFound
	}
	return &orders[0], nil
}

func (s *OrderStore) Count(ctx context.Context) (int64, error) {
	n, err := s.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

// TotalSales sums totalPrice across all orders.
func (s *OrderStore) TotalSales(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalSales", Value: bson.D{{Key: "$sum", Value: "$totalPrice"}}},
		}}},
	}

	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregate sales: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		TotalSales float64 `bson:"totalSales"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("decode sales: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].TotalSales, nil
}

// SalesByDate groups paid orders by calendar day of payment.
func (s *OrderStore) SalesByDate(ctx context.Context) ([]models.SalesByDate, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "isPaid", Value: true}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$dateToString", Value: bson.D{
				{Key: "format", Value: "%Y-%m-%d"},
				{Key: "date", Value: "$paidAt"},
			}}}},
			{Key: "totalSales", Value: bson.D{{Key: "$sum", Value: "$totalPrice"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate sales by date: %w", err)
	}
	defer cursor.Close(ctx)

	rows := []models.SalesByDate{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode sales by date: %w", err)
	}
	return rows, nil
}

// MarkPaid records the payment result reported by the client.
func (s *OrderStore) MarkPaid(ctx context.Context, id string, result models.PaymentResult) (*models.Order, error) {
	now := time.Now()
	return s.update(ctx, id, bson.M{
		"isPaid":        true,
		"paidAt":        now,
		"paymentResult": result,
		"updatedAt":     now,
	})
}

func (s *OrderStore) MarkDelivered(ctx context.Context, id string) (*models.Order, error) {
	now := time.Now()
	return s.update(ctx, id, bson.M{
		"isDelivered": true,
		"deliveredAt": now,
		"updatedAt":   now,
	})
}

func (s *OrderStore) update(ctx context.Context, id string, set bson.M) (*models.Order, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	var order models.Order
	err = s.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update order: %w", err)
	}
	return &order, nil
}
