package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFound("pedido", "1"), http.StatusNotFound},
		{"bad request", BadRequest("x"), http.StatusBadRequest},
		{"unprocessable", Unprocessable("x"), http.StatusUnprocessableEntity},
		{"unauthorized", Unauthorized("x"), http.StatusUnauthorized},
		{"forbidden", Forbidden("x"), http.StatusForbidden},
		{"payment required", PaymentRequired("x"), http.StatusPaymentRequired},
		{"conflict", Conflict("x"), http.StatusConflict},
		{"too many", TooManyRequests("x"), http.StatusTooManyRequests},
		{"wrapped", fmt.Errorf("camada: %w", Conflict("x")), http.StatusConflict},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestPublicMessage_HidesInternal(t *testing.T) {
	assert.Equal(t, "erro interno", PublicMessage(Internal(errors.New("senha do banco"))))
	assert.Equal(t, "erro interno", PublicMessage(errors.New("boom")))
	assert.Equal(t, "limite atingido", PublicMessage(Forbidden("limite atingido")))
}

func TestErrorsIs_MatchesByKind(t *testing.T) {
	err := fmt.Errorf("repo: %w", NotFound("cliente", "c1"))

	assert.True(t, errors.Is(err, &Error{Kind: KindNotFound}))
	assert.False(t, errors.Is(err, &Error{Kind: KindConflict}))
	assert.True(t, IsNotFound(err))
}
