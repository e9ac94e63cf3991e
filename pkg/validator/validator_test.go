package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Type    string  `validate:"required,oneof=MUTUAL SUPPLEMENTAL"`
	Name    *string `validate:"omitempty,max=5"`
	ID      int64   `validate:"gt=0"`
	Owner   string  `validate:"required"`
	Linked  string  `validate:"required,nefield=Owner"`
	Comment string  `validate:"omitempty,min=2"`
}

func TestValidate_OK(t *testing.T) {
	v := NewValidator()
	name := "abc"
	err := v.Validate(&sample{Type: "MUTUAL", Name: &name, ID: 1, Owner: "a", Linked: "b"})
	assert.NoError(t, err)
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()
	name := "too long name"
	err := v.Validate(&sample{Type: "OTHER", Name: &name, ID: 0, Owner: "a", Linked: "a", Comment: "x"})
	require.Error(t, err)

	msgs := v.FormatValidationErrors(err)
	assert.Equal(t, "Type must be one of: MUTUAL SUPPLEMENTAL", msgs["Type"])
	assert.Equal(t, "Name must be at most 5 characters", msgs["Name"])
	assert.Equal(t, "ID must be greater than 0", msgs["ID"])
	assert.Equal(t, "Linked must differ from Owner", msgs["Linked"])
	assert.Equal(t, "Comment must be at least 2 characters", msgs["Comment"])
}

func TestFormatValidationErrors_Required(t *testing.T) {
	v := NewValidator()
	err := v.Validate(&sample{ID: 1})
	require.Error(t, err)

	msgs := v.FormatValidationErrors(err)
	assert.Equal(t, "Type is required", msgs["Type"])
	assert.Equal(t, "Owner is required", msgs["Owner"])
}

func TestFormatValidationErrors_NotValidationError(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.FormatValidationErrors(errors.New("boom")))
}
