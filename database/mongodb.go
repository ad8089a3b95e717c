package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names shared by the stores.
const (
	CategoriesCollection = "categories"
	ProductsCollection   = "products"
	UsersCollection      = "users"
	OrdersCollection     = "orders"
)

// ConnectDB dials MongoDB, pings the primary and returns the client together
// with the named database. The caller owns the client and must Disconnect it.
func ConnectDB(ctx context.Context, uri, dbName string, timeout time.Duration) (*mongo.Client, *mongo.Database, error) {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongodb: %w", err)
	}

	log.Info().Str("database", dbName).Msg("connected to MongoDB")
	return client, client.Database(dbName), nil
}

// EnsureIndexes creates the indexes the stores rely on for uniqueness and
// sorted listings. It is safe to call on every start.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		CategoriesCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		ProductsCollection: {
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "rating", Value: -1}}},
			{Keys: bson.D{{Key: "category", Value: 1}, {Key: "price", Value: 1}}},
		},
		OrdersCollection: {
			{Keys: bson.D{{Key: "user", Value: 1}}},
		},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}
