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

// maxReviewAttempts bounds the compare-and-swap loop in AddReview.
const maxReviewAttempts = 3

// ProductFields are the writable product attributes. An empty Image or a nil
// CountInStock keeps the stored value on update.
type ProductFields struct {
	Name         string
	Description  string
	Price        float64
	Quantity     int
	Category     primitive.ObjectID
	Brand        string
	Image        string
	CountInStock *int
}

func (f ProductFields) setDoc() bson.M {
	set := bson.M{
		"name":        f.Name,
		"description": f.Description,
		"price":       f.Price,
		"quantity":    f.Quantity,
		"category":    f.Category,
		"brand":       f.Brand,
	}
	if f.Image != "" {
		set["image"] = f.Image
	}
	if f.CountInStock != nil {
		set["countInStock"] = *f.CountInStock
	}
	return set
}

// ProductPage is the first page of a keyword listing. Only page 1 is ever
// served, so Page is always 1 and HasMore always false.
type ProductPage struct {
	Products []models.Product `json:"products"`
	Page     int              `json:"page"`
	Pages    int              `json:"pages"`
	HasMore  bool             `json:"hasMore"`
}

type ProductStore struct {
	collection *mongo.Collection
}

func NewProductStore(db *mongo.Database) *ProductStore {
	return &ProductStore{collection: db.Collection(database.ProductsCollection)}
}

// Create persists a new product with empty reviews and zero rating.
func (s *ProductStore) Create(ctx context.Context, f ProductFields) (*models.Product, error) {
	now := time.Now()
	product := &models.Product{
		ID:          primitive.NewObjectID(),
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price,
		Quantity:    f.Quantity,
		Category:    f.Category,
		Brand:       f.Brand,
		Image:       f.Image,
		Reviews:     []models.Review{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if f.CountInStock != nil {
		product.CountInStock = *f.CountInStock
	}

	if _, err := s.collection.InsertOne(ctx, product); err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return product, nil
}

func (s *ProductStore) Update(ctx context.Context, id string, f ProductFields) (*models.Product, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	set := f.setDoc()
	set["updatedAt"] = time.Now()

	var product models.Product
	err = s.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return &product, nil
}

// Remove deletes a product and returns it, or nil when nothing matched.
func (s *ProductStore) Remove(ctx context.Context, id string) (*models.Product, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	var product models.Product
	err = s.collection.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete product: %w", err)
	}
	return &product, nil
}

// List returns the first pageSize products whose name contains keyword.
func (s *ProductStore) List(ctx context.Context, keyword string, pageSize int) (*ProductPage, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	filter := KeywordFilter(keyword)

	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	products, err := s.find(ctx, filter, options.Find().SetLimit(int64(pageSize)))
	if err != nil {
		return nil, err
	}

	return &ProductPage{
		Products: products,
		Page:     1,
		Pages:    PageCount(count, pageSize),
		HasMore:  false,
	}, nil
}

type productWithCategory struct {
	models.Product `bson:",inline"`
	CategoryDoc    []models.Category `bson:"categoryDoc"`
}

// ListAll returns every product with its category populated, newest first.
func (s *ProductStore) ListAll(ctx context.Context) ([]models.PopulatedProduct, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: database.CategoriesCollection},
			{Key: "localField", Value: "category"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "categoryDoc"},
		}}},
	}

	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate products: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []productWithCategory
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	out := make([]models.PopulatedProduct, 0, len(rows))
	for _, row := range rows {
		pp := models.PopulatedProduct{Product: row.Product}
		if len(row.CategoryDoc) > 0 {
			c := row.CategoryDoc[0]
			pp.Category = &c
		}
		out = append(out, pp)
	}
	return out, nil
}

func (s *ProductStore) GetByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.getByObjectID(ctx, oid)
}

func (s *ProductStore) getByObjectID(ctx context.Context, oid primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &product, nil
}

// ListTop returns the n highest rated products.
func (s *ProductStore) ListTop(ctx context.Context, n int) ([]models.Product, error) {
	if n <= 0 {
		n = DefaultShowcaseSize
	}
	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}}).SetLimit(int64(n))
	return s.find(ctx, bson.M{}, opts)
}

// ListNewest returns the n most recently created products.
func (s *ProductStore) ListNewest(ctx context.Context, n int) ([]models.Product, error) {
	if n <= 0 {
		n = DefaultShowcaseSize
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(int64(n))
	return s.find(ctx, bson.M{}, opts)
}

// Filter returns products in any of categoryIDs and within price. Both
// criteria are optional.
func (s *ProductStore) Filter(ctx context.Context, categoryIDs []primitive.ObjectID, price *PriceRange) ([]models.Product, error) {
	return s.find(ctx, ProductFilter(categoryIDs, price))
}

// FindByIDs returns the products matching ids, in no particular order.
func (s *ProductStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	return s.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

// AddReview appends a review and recomputes rating and numReviews. The write
// is conditioned on the version read, so a concurrent review cannot be lost;
// on a lost race the whole read-check-append is retried.
func (s *ProductStore) AddReview(ctx context.Context, id string, review models.Review) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}

	for attempt := 0; attempt < maxReviewAttempts; attempt++ {
		product, err := s.getByObjectID(ctx, oid)
		if err != nil {
			return err
		}
		if err := product.AddReview(review); err != nil {
			return err
		}

		res, err := s.collection.UpdateOne(ctx,
			versionFilter(oid, product.Version),
			bson.M{
				"$set": bson.M{
					"reviews":    product.Reviews,
					"numReviews": product.NumReviews,
					"rating":     product.Rating,
					"updatedAt":  time.Now(),
				},
				"$inc": bson.M{"version": 1},
			},
		)
		if err != nil {
			return fmt.Errorf("save review: %w", err)
		}
		if res.MatchedCount == 1 {
			return nil
		}
	}
	return ErrVersionConflict
}

func (s *ProductStore) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Product, error) {
	cursor, err := s.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}
