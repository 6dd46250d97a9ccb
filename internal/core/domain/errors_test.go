package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNotImplemented", ErrNotImplemented},
		{"ErrInputNotFound", ErrInputNotFound},
		{"ErrMalformedInput", ErrMalformedInput},
		{"ErrMissingField", ErrMissingField},
		{"ErrRenderFailure", ErrRenderFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrInputNotFound(t *testing.T) {
	assert.Equal(t, "input not found", ErrInputNotFound.Error())
	assert.False(t, errors.Is(ErrInputNotFound, ErrMalformedInput))
}

func TestErrMissingField_Wrapped(t *testing.T) {
	err := fmt.Errorf("%w: %s", ErrMissingField, "Textblocks[0].textblock_id")

	assert.True(t, errors.Is(err, ErrMissingField))
	assert.False(t, errors.Is(err, ErrMalformedInput))
	assert.Contains(t, err.Error(), "textblock_id")
}

func TestErrors_AreDistinct(t *testing.T) {
	all := []error{
		ErrInvalidInput, ErrNotImplemented, ErrInputNotFound,
		ErrMalformedInput, ErrMissingField, ErrRenderFailure,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
			}
		}
	}
}
