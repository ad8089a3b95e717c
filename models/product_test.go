package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAddReview_RecomputesAggregates(t *testing.T) {
	p := &Product{Name: "Runner"}
	u1, u2, u3 := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()

	require.NoError(t, p.AddReview(Review{User: u1, Name: "ann", Rating: 5}))
	assert.Equal(t, 1, p.NumReviews)
	assert.Equal(t, 5.0, p.Rating)

	require.NoError(t, p.AddReview(Review{User: u2, Name: "bob", Rating: 2}))
	require.NoError(t, p.AddReview(Review{User: u3, Name: "cid", Rating: 4}))

	assert.Equal(t, len(p.Reviews), p.NumReviews)
	assert.InDelta(t, 11.0/3.0, p.Rating, 1e-9)
}

func TestAddReview_RejectsSecondReviewFromSameUser(t *testing.T) {
	p := &Product{}
	u1 := primitive.NewObjectID()

	require.NoError(t, p.AddReview(Review{User: u1, Rating: 5, Comment: "great"}))
	err := p.AddReview(Review{User: u1, Rating: 1, Comment: "changed my mind"})

	assert.ErrorIs(t, err, ErrAlreadyReviewed)
	require.Len(t, p.Reviews, 1)
	assert.Equal(t, "great", p.Reviews[0].Comment)
	assert.Equal(t, 1, p.NumReviews)
	assert.Equal(t, 5.0, p.Rating)
}

func TestRecalculateRating_NoReviews(t *testing.T) {
	p := &Product{Rating: 3.5, NumReviews: 7}
	p.RecalculateRating()

	assert.Equal(t, 0, p.NumReviews)
	assert.Equal(t, 0.0, p.Rating)
}

func TestHasReviewFrom(t *testing.T) {
	u1 := primitive.NewObjectID()
	p := &Product{Reviews: []Review{{User: u1}}}

	assert.True(t, p.HasReviewFrom(u1))
	assert.False(t, p.HasReviewFrom(primitive.NewObjectID()))
}
