package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shippingForm struct {
	FirstName  string `validate:"required"`
	Email      string `validate:"required,email"`
	PostalCode string `validate:"required,min=3"`
	Country    string `validate:"omitempty,oneof=US CA GB DE"`
}

func TestValidate_Valid(t *testing.T) {
	form := shippingForm{
		FirstName:  "Ada",
		Email:      "ada@example.com",
		PostalCode: "94016",
		Country:    "US",
	}

	assert.NoError(t, Validate(form))
}

func TestValidate_MissingRequired(t *testing.T) {
	form := shippingForm{Email: "ada@example.com", PostalCode: "94016"}

	err := Validate(form)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields(), "FirstName")
	assert.Equal(t, "is required", vErr.Fields()["FirstName"])
}

func TestValidate_InvalidEmail(t *testing.T) {
	form := shippingForm{FirstName: "Ada", Email: "not-an-email", PostalCode: "94016"}

	err := Validate(form)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "must be a valid email address", vErr.Fields()["Email"])
}

func TestValidate_MinLength(t *testing.T) {
	form := shippingForm{FirstName: "Ada", Email: "ada@example.com", PostalCode: "xy"}

	err := Validate(form)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PostalCode")
	assert.Contains(t, err.Error(), "at least 3")
}

func TestValidate_OneOf(t *testing.T) {
	form := shippingForm{
		FirstName:  "Ada",
		Email:      "ada@example.com",
		PostalCode: "94016",
		Country:    "FR",
	}

	err := Validate(form)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields()["Country"], "must be one of")
}

func TestValidate_MultipleErrors(t *testing.T) {
	form := shippingForm{}

	err := Validate(form)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Fields(), 3)
}
