package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dougbrunos/go-rest-apis/internal/api/shared"
	"github.com/dougbrunos/go-rest-apis/internal/domain"
	"github.com/dougbrunos/go-rest-apis/internal/service"
	"github.com/dougbrunos/go-rest-apis/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "person not found", err: store.ErrPersonNotFound, want: http.StatusNotFound},
		{name: "book not found", err: store.ErrBookNotFound, want: http.StatusNotFound},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", store.ErrNotFound), want: http.StatusNotFound},
		{name: "invalid entity", err: store.ErrInvalidEntity, want: http.StatusBadRequest},
		{name: "validation failure", err: domain.ErrPersonFirstNameEmpty, want: http.StatusBadRequest},
		{name: "invalid ID", err: domain.ErrInvalidID, want: http.StatusBadRequest},
		{name: "invalid operand", err: service.ErrInvalidOperand, want: http.StatusBadRequest},
		{name: "division by zero", err: service.ErrDivisionByZero, want: http.StatusBadRequest},
		{name: "negative square root", err: service.ErrNegativeSquareRoot, want: http.StatusBadRequest},
		{name: "unsupported media type", err: shared.ErrUnsupportedMediaType, want: http.StatusUnsupportedMediaType},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil error", err: nil, want: genericErrorMessage},
		{name: "person not found", err: store.ErrPersonNotFound, want: "Person not found"},
		{name: "book not found", err: store.ErrBookNotFound, want: "Book not found"},
		{name: "plain not found", err: store.ErrNotFound, want: "Resource not found"},
		{name: "invalid operand", err: service.ErrInvalidOperand, want: "Please set a numeric value!"},
		{name: "division by zero", err: service.ErrDivisionByZero, want: "Division by zero is not allowed"},
		{name: "invalid ID", err: domain.ErrInvalidID, want: "Invalid ID format"},
		{name: "validation failure", err: domain.ErrBookTitleEmpty, want: "Invalid entity data"},
		{name: "internal detail stays hidden", err: errors.New("dial tcp 10.0.0.5: refused"), want: genericErrorMessage},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}
}
