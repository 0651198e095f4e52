package api

import (
	"errors"
	"net/http"

	"github.com/dougbrunos/go-rest-apis/internal/api/shared"
	"github.com/dougbrunos/go-rest-apis/internal/domain"
	"github.com/dougbrunos/go-rest-apis/internal/service"
	"github.com/dougbrunos/go-rest-apis/internal/store"
)

// genericErrorMessage is what clients see when no safer mapping exists.
const genericErrorMessage = "An unexpected error occurred"

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, service.ErrInvalidOperand),
		errors.Is(err, service.ErrDivisionByZero),
		errors.Is(err, service.ErrNegativeSquareRoot):
		return http.StatusBadRequest

	// Request body in a representation we cannot consume
	case errors.Is(err, shared.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return genericErrorMessage
	}

	switch {
	// Not found errors
	case errors.Is(err, store.ErrPersonNotFound):
		return "Person not found"

	case errors.Is(err, store.ErrBookNotFound):
		return "Book not found"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	// Math errors
	case errors.Is(err, service.ErrInvalidOperand):
		return "Please set a numeric value!"

	case errors.Is(err, service.ErrDivisionByZero):
		return "Division by zero is not allowed"

	case errors.Is(err, service.ErrNegativeSquareRoot):
		return "Cannot take the square root of a negative number"

	// Bad request errors
	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID format"

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return "Invalid entity data"

	case errors.Is(err, shared.ErrUnsupportedMediaType):
		return "Unsupported media type"

	default:
		return genericErrorMessage
	}
}

// HandleAPIError writes the response for an internal error: status from
// MapErrorToStatusCode, message from GetSafeErrorMessage. The optional
// fallbackMessage replaces the generic message for errors with no
// specific mapping.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if message == genericErrorMessage && fallbackMessage != "" {
		message = fallbackMessage
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
