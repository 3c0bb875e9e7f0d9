package apperror_test

import (
	"errors"
	"fmt"
	"testing"

	"cinema-platform/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestDefaultStatusCodes(t *testing.T) {
	assert.Equal(t, 404, apperror.NewNotFound("x").Status)
	assert.Equal(t, 400, apperror.NewUserInputValidation("x").Status)
	assert.Equal(t, 409, apperror.NewConflict("x").Status)
}

func TestStatusOverrides(t *testing.T) {
	assert.Equal(t, 409, apperror.NewUserInputValidationWithStatus("x", 409).Status)
	assert.Equal(t, 404, apperror.NewConflictWithStatus("x", 404).Status)
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("create coupon: %w", apperror.NewConflict("coupon exists"))

	var conflict *apperror.ConflictError
	if assert.ErrorAs(t, wrapped, &conflict) {
		assert.Equal(t, "coupon exists", conflict.Message)
	}

	var notFound *apperror.NotFoundError
	assert.False(t, errors.As(wrapped, &notFound))
}

func TestMessageBuilders(t *testing.T) {
	assert.Equal(t, "no coupon with code SUMMER10 found", apperror.NotFoundMessage("coupon", "code", "SUMMER10"))
	assert.Equal(t, "missing required field: percentage", apperror.MissingRequiredField("percentage"))
	assert.Equal(t, "illegal parameter: id", apperror.IllegalParameter("id"))
	assert.Equal(t, "not matching id in request path and body", apperror.NotMatchingIds("id"))
	assert.Equal(t, "movie with title Inception already exists", apperror.ResourceAlreadyExists("movie", "title", "Inception"))
	assert.Equal(t, "unable to parse: seat", apperror.UnableToParse("seat"))
}

func TestInfoMessages(t *testing.T) {
	assert.Equal(t, "coupon with id 7 was created", apperror.EntityCreated("coupon", "7"))
	assert.Equal(t, "coupon with id 7 was deleted", apperror.EntityDeleted("coupon", "7"))
	assert.Equal(t, "field paid on invoice with id 3 was updated", apperror.EntityFieldUpdated("invoice", "3", "paid"))
}
