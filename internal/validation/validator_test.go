package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/communitydirectory/directory-server/internal/errors"
)

type submission struct {
	Name   string `json:"name" validate:"required,min=2"`
	Email  string `json:"email" validate:"omitempty,email"`
	Rating int    `json:"rating" validate:"gte=1,lte=5"`
}

func TestValidatePasses(t *testing.T) {
	v := New()

	err := v.Validate(submission{Name: "Spice Junction", Rating: 4})
	assert.NoError(t, err)
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(submission{Email: "not-an-email", Rating: 9})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domainerrors.CodeValidation, domainErr.Code)

	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "is required", details["name"])
	assert.Equal(t, "must be a valid email address", details["email"])
	assert.Equal(t, "must be less than or equal to 5", details["rating"])
}
