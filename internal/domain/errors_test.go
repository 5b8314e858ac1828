package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorKind
	}{
		{ErrUnauthenticated, KindUnauthenticated},
		{ErrInvalidLogin, KindUnauthenticated},
		{ErrUnauthorized, KindUnauthorized},
		{NewValidationError("telefono"), KindValidation},
		{fmt.Errorf("registrar: %w", ErrDuplicate), KindDuplicate},
		{ErrNotFound, KindNotFound},
		{errors.New("dial tcp: connection refused"), KindStorage},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, KindOf(tc.err), "error %v", tc.err)
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("nombre", "telefono")
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, "campos inválidos: nombre, telefono", err.Error())

	var ve *ValidationError
	assert.True(t, errors.As(fmt.Errorf("wrap: %w", err), &ve))
	assert.Equal(t, []string{"nombre", "telefono"}, ve.Fields)
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "INTERNAL", KindStorage.String())
	assert.Equal(t, "FORBIDDEN", KindUnauthorized.String())
	assert.Equal(t, "NOT_FOUND", KindNotFound.String())
}
