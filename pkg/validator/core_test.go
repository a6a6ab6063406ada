package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldguard/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "password", Message: "too short"})
		assert.Equal(t, "validation failed: email: is required; password: too short", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	assert.True(t, errs.IsEmpty())

	errs.Add(validator.ValidationError{Field: "email", Message: "Invalid email address"})
	errs.Add(validator.ValidationError{Field: "mobile", Message: "Invalid mobile number"})

	assert.False(t, errs.IsEmpty())
	assert.True(t, errs.Has("email"))
	assert.False(t, errs.Has("password"))
	assert.Equal(t, "Invalid mobile number", errs.Get("mobile"))
	assert.Equal(t, "", errs.Get("password"))
	assert.Equal(t, []string{"email", "mobile"}, errs.Fields())
}

func TestValidationError_Error(t *testing.T) {
	t.Run("prefixes the field", func(t *testing.T) {
		err := &validator.ValidationError{Field: "age", Message: "Invalid age value"}
		assert.Equal(t, "age: Invalid age value", err.Error())
	})

	t.Run("message only without field", func(t *testing.T) {
		err := &validator.ValidationError{Message: "Invalid age value"}
		assert.Equal(t, "Invalid age value", err.Error())
	})
}

func TestExtractValidationError(t *testing.T) {
	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationError(nil))
	})

	t.Run("unwraps wrapped failures", func(t *testing.T) {
		orig := &validator.ValidationError{Field: "f", Message: "m"}
		err := fmt.Errorf("submit: %w", orig)
		assert.Same(t, orig, validator.ExtractValidationError(err))
	})

	t.Run("returns nil for other errors", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationError(errors.New("boom")))
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
	})

	t.Run("returns collections as is", func(t *testing.T) {
		errs := validator.ValidationErrors{{Field: "a", Message: "x"}, {Field: "b", Message: "y"}}
		assert.Equal(t, errs, validator.ExtractValidationErrors(fmt.Errorf("wrap: %w", errs)))
	})

	t.Run("lifts a single failure", func(t *testing.T) {
		got := validator.ExtractValidationErrors(&validator.ValidationError{Field: "a", Message: "x"})
		require.Len(t, got, 1)
		assert.Equal(t, "a", got[0].Field)
	})

	t.Run("returns nil for other errors", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
	})
}

func TestIsValidationError(t *testing.T) {
	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("boom")))
	assert.False(t, validator.IsValidationError(validator.ErrUnknownRule))
	assert.False(t, validator.IsValidationError(validator.ValidationErrors{}))
	assert.True(t, validator.IsValidationError(&validator.ValidationError{Field: "f", Message: "m"}))
	assert.True(t, validator.IsValidationError(validator.ValidationErrors{{Field: "f", Message: "m"}}))
	assert.True(t, errors.Is(&validator.ValidationError{}, validator.ErrValidationFailed))
}
