package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email string `validate:"max=5"`
	Name  string `validate:"required"`
}

func TestCustomValidator_Describe(t *testing.T) {
	err := New().Validate(&sample{Email: "too-long@example.com"})
	require.Error(t, err)

	assert.Equal(t, "Email:max, Name:required", Describe(err))
}

func TestCustomValidator_Valid(t *testing.T) {
	assert.NoError(t, New().Validate(&sample{Email: "a@b", Name: "x"}))
}

func TestDescribe_OtherError(t *testing.T) {
	assert.Equal(t, "boom", Describe(errors.New("boom")))
}
