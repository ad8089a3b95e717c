package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Madhav-Gupta-28/primecart-backend-go/models"
	"github.com/Madhav-Gupta-28/primecart-backend-go/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateCategory_Success(t *testing.T) {
	h, s := newTestHandler(t.TempDir())
	created := &models.Category{ID: primitive.NewObjectID(), Name: "Shoes"}
	s.categories.On("Create", mock.Anything, "Shoes").Return(created, nil)

	body, ct := jsonBody(`{"name":"Shoes"}`)
	rec := serve(t, h.CreateCategory, testRequest{method: http.MethodPost, target: "/api/category", body: body, contentType: ct})

	assert.Equal(t, http.StatusOK, rec.Code)
	got := decodeMap(t, rec)
	assert.Equal(t, "Shoes", got["name"])
	assert.Equal(t, created.ID.Hex(), got["id"])
	s.categories.AssertExpectations(t)
}

func TestCreateCategory_MissingNameIsValidationError(t *testing.T) {
	h, s := newTestHandler(t.TempDir())

	body, ct := jsonBody(`{}`)
	rec := serve(t, h.CreateCategory, testRequest{method: http.MethodPost, target: "/api/category", body: body, contentType: ct})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Name is Required", errorOf(t, rec))
	s.categories.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCategory_Duplicate(t *testing.T) {
	h, s := newTestHandler(t.TempDir())
	s.categories.On("Create", mock.Anything, "Shoes").Return(nil, store.ErrDuplicateCategory)

	body, ct := jsonBody(`{"name":"Shoes"}`)
	rec := serve(t, h.CreateCategory, testRequest{method: http.MethodPost, target: "/api/category", body: body, contentType: ct})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Category Already Exists", errorOf(t, rec))
}

func TestUpdateCategory_NotFound(t *testing.T) {
	h, s := newTestHandler(t.TempDir())
	id := primitive.NewObjectID().Hex()
	s.categories.On("Update", mock.Anything, id, "Boots").Return(nil, store.ErrNotFound)

	body, ct := jsonBody(`{"name":"Boots"}`)
	rec := serve(t, h.UpdateCategory, testRequest{
		method: http.MethodPut, target: "/api/category/" + id, body: body, contentType: ct,
		params: [][2]string{{"categoryId", id}},
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Category not found", errorOf(t, rec))
}

func TestRemoveCategory_MissingReturnsNull(t *testing.T) {
	h, s := newTestHandler(t.TempDir())
	id := primitive.NewObjectID().Hex()
	s.categories.On("Remove", mock.Anything, id).Return(nil, nil)

	rec := serve(t, h.RemoveCategory, testRequest{
		method: http.MethodDelete, target: "/api/category/" + id,
		params: [][2]string{{"categoryId", id}},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", trimNewline(rec.Body.String()))
}

func TestReadCategory_InvalidID(t *testing.T) {
	h, s := newTestHandler(t.TempDir())
	s.categories.On("Read", mock.Anything, "bad").Return(nil, store.ErrInvalidID)

	rec := serve(t, h.ReadCategory, testRequest{
		method: http.MethodGet, target: "/api/category/bad",
		params: [][2]string{{"id", "bad"}},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCategories_StoreFailure(t *testing.T) {
	h, s := newTestHandler(t.TempDir())
	s.categories.On("List", mock.Anything).Return([]models.Category(nil), errors.New("connection reset"))

	rec := serve(t, h.ListCategories, testRequest{method: http.MethodGet, target: "/api/category"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorOf(t, rec), "connection reset")
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
