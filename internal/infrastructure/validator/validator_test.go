package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppValidator(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateEmail("admin@prompaty.local"))
	assert.Error(t, v.ValidateEmail("not-an-email"))

	assert.NoError(t, v.ValidateSlug("go-code-review"))
	assert.Error(t, v.ValidateSlug("Go Code Review"))
	assert.Error(t, v.ValidateSlug(""))
}
