package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/heritageapp/heritage-server/internal/errors"
	"github.com/heritageapp/heritage-server/internal/validation"
)

type profileRequest struct {
	Hometown  string   `json:"hometown" validate:"required"`
	Age       int      `json:"age" validate:"required,gt=0,lte=150"`
	Interests []string `json:"interests" validate:"max=50"`
}

func TestValidate_Valid(t *testing.T) {
	v := validation.New()

	err := v.Validate(profileRequest{
		Hometown:  "西安市",
		Age:       45,
		Interests: []string{"美术"},
	})
	assert.NoError(t, err)
}

func TestValidate_MissingRequired(t *testing.T) {
	v := validation.New()

	err := v.Validate(profileRequest{Age: 30})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.True(t, domainerrors.As(err, &domainErr))
	assert.Equal(t, domainerrors.CodeValidation, domainErr.Code)

	// Error details use JSON field names.
	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "hometown")
	assert.Equal(t, "is required", details["hometown"])
}

func TestValidate_AgeBounds(t *testing.T) {
	v := validation.New()

	err := v.Validate(profileRequest{Hometown: "上海", Age: -3})
	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrValidation))

	err = v.Validate(profileRequest{Hometown: "上海", Age: 400})
	require.Error(t, err)
}
