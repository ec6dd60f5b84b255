package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restaurant-directory/internal/pkg/validator"
)

type signup struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
}

type point struct {
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

func TestMessages_UsesJSONNames(t *testing.T) {
	err := validator.Validate(&signup{Username: "ab", Email: "not-an-email"})
	require.Error(t, err)

	msgs := validator.Messages(err)
	assert.ElementsMatch(t, []string{
		"username must be at least 3 characters long",
		"email must be a valid email address",
	}, msgs)
}

func TestValidate_PointerZeroIsPresent(t *testing.T) {
	zero := 0.0
	assert.NoError(t, validator.Validate(&point{Latitude: &zero, Longitude: &zero}))

	err := validator.Validate(&point{Latitude: &zero})
	require.Error(t, err)
	assert.Equal(t, []string{"longitude is required"}, validator.Messages(err))

	tooFar := 91.0
	err = validator.Validate(&point{Latitude: &tooFar, Longitude: &zero})
	require.Error(t, err)
	assert.Equal(t, []string{"latitude must be less than or equal to 90"}, validator.Messages(err))
}

func TestMessages_NonValidationError(t *testing.T) {
	assert.Equal(t, []string{"boom"}, validator.Messages(errors.New("boom")))
}
