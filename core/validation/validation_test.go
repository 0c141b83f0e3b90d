package validation

import (
	"testing"

	apperrors "team-inventory/core/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memberRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Role  string `json:"role" validate:"omitempty,oneof=captain driver builder"`
	Count int    `json:"count" validate:"min=0,max=10"`
}

func TestStruct(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, Struct(&memberRequest{Name: "Alex", Email: "alex@example.com", Role: "driver"}))
	})

	t.Run("Field Messages Use JSON Names", func(t *testing.T) {
		err := Struct(&memberRequest{Email: "nope", Role: "pilot", Count: 11})
		require.Error(t, err)

		typed := apperrors.As(err)
		require.NotNil(t, typed)
		assert.Equal(t, apperrors.CodeValidation, typed.Code())

		details, ok := typed.Details().(map[string]string)
		require.True(t, ok)
		assert.Equal(t, "is required", details["name"])
		assert.Equal(t, "must be a valid email", details["email"])
		assert.Equal(t, "must be one of: captain driver builder", details["role"])
		assert.Equal(t, "must be at most 10", details["count"])
	})
}
