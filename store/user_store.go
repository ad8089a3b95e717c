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

type UserStore struct {
	collection *mongo.Collection
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{collection: db.Collection(database.UsersCollection)}
}

// Create inserts user. The password must already be hashed.
func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	err := s.collection.FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("find user: %w", err)
	}

	now := time.Now()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := s.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *UserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *UserStore) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	if err := s.collection.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	cursor, err := s.collection.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"password": 0}))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

// Update writes username, email, isAdmin and, when non-empty, the password
// hash of user.
func (s *UserStore) Update(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()
	set := bson.M{
		"username":  user.Username,
		"email":     user.Email,
		"isAdmin":   user.IsAdmin,
		"updatedAt": user.UpdatedAt,
	}
	if user.Password != "" {
		set["password"] = user.Password
	}

	res, err := s.collection.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *UserStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
