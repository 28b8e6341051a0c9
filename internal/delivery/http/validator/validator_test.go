package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,e164"`
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()
	badPhone := "12"

	err := v.Validate(&signupRequest{Email: "not-an-email", Password: "123", Phone: &badPhone})

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.ElementsMatch(t, []FieldError{
		{Field: "email", Rule: "email"},
		{Field: "password", Rule: "min"},
		{Field: "phone", Rule: "e164"},
	}, valErr.Fields)
}

func TestValidate_Passes(t *testing.T) {
	v := New()

	err := v.Validate(&signupRequest{Email: "farmer@example.com", Password: "secret1"})

	assert.NoError(t, err)
}
