package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCode(t *testing.T) {
	t.Run("direct error", func(t *testing.T) {
		err := New(CodeConflict, "already registered")
		assert.True(t, HasCode(err, CodeConflict))
		assert.False(t, HasCode(err, CodeInvalidInput))
	})

	t.Run("wrapped by fmt", func(t *testing.T) {
		err := fmt.Errorf("register: %w", New(CodeInvalidInput, "missing form type"))
		assert.True(t, HasCode(err, CodeInvalidInput))
	})

	t.Run("inner code is visible through outer wrap", func(t *testing.T) {
		inner := New(CodeConflict, "type mismatch")
		err := Wrap(inner, CodeValidation, "seed rejected")
		assert.True(t, HasCode(err, CodeValidation))
		assert.True(t, HasCode(err, CodeConflict))
		assert.Equal(t, CodeValidation, CodeOf(err))
	})

	t.Run("plain error has no code", func(t *testing.T) {
		err := errors.New("boom")
		assert.False(t, HasCode(err, CodeInternal))
		assert.Equal(t, CodeInternal, CodeOf(err))
		assert.False(t, HasCode(nil, CodeInternal))
	})
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "bad field", New(CodeValidation, "bad field").Error())
	assert.Equal(t, "load seed: no such file", Wrap(errors.New("no such file"), CodeInternal, "load seed").Error())
	assert.Equal(t, `field "x" rejected`, Newf(CodeConflict, "field %q rejected", "x").Error())

	base := errors.New("root cause")
	assert.ErrorIs(t, Wrap(base, CodeInternal, "ctx"), base)
}
