package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrAlreadyReviewed is returned when a user reviews the same product twice.
var ErrAlreadyReviewed = errors.New("product already reviewed")

// Review is embedded in Product. Name is a snapshot of the author's username
// at submission time.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Name      string             `bson:"name" json:"name"`
	Rating    int                `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment" json:"comment"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type Product struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	Brand        string             `bson:"brand" json:"brand"`
	Quantity     int                `bson:"quantity" json:"quantity"`
	Category     primitive.ObjectID `bson:"category" json:"category"`
	Description  string             `bson:"description" json:"description"`
	Reviews      []Review           `bson:"reviews" json:"reviews"`
	Rating       float64            `bson:"rating" json:"rating"`
	NumReviews   int                `bson:"numReviews" json:"numReviews"`
	Price        float64            `bson:"price" json:"price"`
	CountInStock int                `bson:"countInStock" json:"countInStock"`
	Version      int64              `bson:"version" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PopulatedProduct is a Product whose category reference has been replaced by
// the full category record. Category is nil when the reference dangles.
type PopulatedProduct struct {
	Product
	Category *Category `json:"category"`
}

// HasReviewFrom reports whether userID already reviewed the product.
func (p *Product) HasReviewFrom(userID primitive.ObjectID) bool {
	for _, r := range p.Reviews {
		if r.User == userID {
			return true
		}
	}
	return false
}

// AddReview appends r and recomputes the aggregate fields. The product is left
// untouched when the author already has a review on it.
func (p *Product) AddReview(r Review) error {
	if p.HasReviewFrom(r.User) {
		return ErrAlreadyReviewed
	}
	p.Reviews = append(p.Reviews, r)
	p.RecalculateRating()
	return nil
}

// RecalculateRating sets NumReviews and Rating from Reviews.
func (p *Product) RecalculateRating() {
	p.NumReviews = len(p.Reviews)
	if p.NumReviews == 0 {
		p.Rating = 0
		return
	}
	sum := 0
	for _, r := range p.Reviews {
		sum += r.Rating
	}
	p.Rating = float64(sum) / float64(p.NumReviews)
}
