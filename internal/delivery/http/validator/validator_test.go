package validator

import (
	"testing"

	domainerrors "faranah/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Size     string `json:"size" validate:"required"`
	Quantity int    `json:"quantity" validate:"min=1"`
}

func TestValidate_PassesValidStruct(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email:    "aissatou@example.com",
		Size:     "M",
		Quantity: 2,
	})
	assert.NoError(t, err)
}

func TestValidate_ReportsFieldsByJSONName(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Email: "not-an-email", Quantity: 0})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	fields := make(map[string]string, len(validationErr.Fields()))
	for _, f := range validationErr.Fields() {
		fields[f.Field] = f.Message
	}
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "size")
	assert.Contains(t, fields, "quantity")
	assert.Equal(t, "size is required", fields["size"])
}
