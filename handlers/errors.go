package handlers

import (
	"errors"
	"net/http"

	"github.com/Madhav-Gupta-28/primecart-backend-go/store"
	"github.com/labstack/echo/v4"
)

// validationError is a missing or malformed required field. Clients expect it
// with status 200 and an error body.
type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

// invalidInput is rejected with 400.
type invalidInput struct {
	msg string
}

func (e *invalidInput) Error() string { return e.msg }

// errorMapping pins each known error kind to the status and message clients
// see. Kinds not listed fall through to the endpoint's store-failure status.
var errorMapping = []struct {
	target  error
	status  int
	message string
}{
	{store.ErrDuplicateCategory, http.StatusOK, "Category Already Exists"},
	{store.ErrAlreadyReviewed, http.StatusBadRequest, "Product already reviewed"},
	{store.ErrEmailTaken, http.StatusBadRequest, "User already exists"},
	{store.ErrInvalidID, http.StatusBadRequest, "Invalid ID"},
	{store.ErrVersionConflict, http.StatusBadRequest, "Product was modified concurrently, retry"},
}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// fail writes err as a JSON error. resource names the entity in not-found
// messages; storeStatus is used for unclassified store failures.
func (h *Handler) fail(c echo.Context, resource string, storeStatus int, err error) error {
	var ve *validationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusOK, errorBody(ve.msg))
	}
	var ii *invalidInput
	if errors.As(err, &ii) {
		return c.JSON(http.StatusBadRequest, errorBody(ii.msg))
	}

	for _, m := range errorMapping {
		if errors.Is(err, m.target) {
			return c.JSON(m.status, errorBody(m.message))
		}
	}

	if errors.Is(err, store.ErrNotFound) {
		var missing *store.MissingProductError
		if errors.As(err, &missing) {
			return c.JSON(http.StatusNotFound, errorBody(missing.Error()))
		}
		return c.JSON(http.StatusNotFound, errorBody(resource+" not found"))
	}

	h.log.Error().Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("store failure")
	return c.JSON(storeStatus, errorBody(err.Error()))
}
