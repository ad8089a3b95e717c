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

type CategoryStore struct {
	collection *mongo.Collection
}

func NewCategoryStore(db *mongo.Database) *CategoryStore {
	return &CategoryStore{collection: db.Collection(database.CategoriesCollection)}
}

// Create inserts a category. Names are unique by exact match.
func (s *CategoryStore) Create(ctx context.Context, name string) (*models.Category, error) {
	err := s.collection.FindOne(ctx, bson.M{"name": name}).Err()
	if err == nil {
		return nil, ErrDuplicateCategory
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("find category: %w", err)
	}

	now := time.Now()
	category := &models.Category{
		ID:        primitive.NewObjectID(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.collection.InsertOne(ctx, category); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateCategory
		}
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return category, nil
}

// Update replaces the name of an existing category.
func (s *CategoryStore) Update(ctx context.Context, id, name string) (*models.Category, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	var category models.Category
	err = s.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"name": name, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return &category, nil
}

// Remove deletes a category and returns it, or nil when nothing matched.
// Products referencing the category are left as they are.
func (s *CategoryStore) Remove(ctx context.Context, id string) (*models.Category, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	var category models.Category
	err = s.collection.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete category: %w", err)
	}
	return &category, nil
}

func (s *CategoryStore) List(ctx context.Context) ([]models.Category, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return categories, nil
}

// Read returns the category, or nil when it does not exist.
func (s *CategoryStore) Read(ctx context.Context, id string) (*models.Category, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	var category models.Category
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return &category, nil
}
