package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{Validation, http.StatusBadRequest},
		{Unauthorized, http.StatusUnauthorized},
		{Forbidden, http.StatusForbidden},
		{NotFound, http.StatusNotFound},
		{Conflict, http.StatusConflict},
		{Internal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Status())
		})
	}
}

func TestKindOfWrapped(t *testing.T) {
	base := NotFoundError("Pedido não encontrado")
	wrapped := fmt.Errorf("loading order: %w", base)

	assert.Equal(t, NotFound, KindOf(wrapped))
	assert.Equal(t, "Pedido não encontrado", MessageOf(wrapped, "fallback"))
}

func TestKindOfPlainError(t *testing.T) {
	err := errors.New("boom")

	assert.Equal(t, Internal, KindOf(err))
	assert.Equal(t, "fallback", MessageOf(err, "fallback"))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(Internal, "Erro interno do servidor", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Erro interno do servidor: connection refused", err.Error())
}
