package store

import (
	"errors"
	"fmt"

	"github.com/Madhav-Gupta-28/primecart-backend-go/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidID         = errors.New("invalid id")
	ErrDuplicateCategory = errors.New("category already exists")
	ErrEmailTaken        = errors.New("user already exists")
	ErrAlreadyReviewed   = models.ErrAlreadyReviewed
	ErrVersionConflict   = errors.New("product was modified concurrently")
)

// MissingProductError names the product id an order referenced but the
// catalog does not contain.
type MissingProductError struct {
	ID string
}

func (e *MissingProductError) Error() string {
	return fmt.Sprintf("product not found: %s", e.ID)
}

func (e *MissingProductError) Unwrap() error {
	return ErrNotFound
}

// ParseID converts a hex path parameter into an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}
