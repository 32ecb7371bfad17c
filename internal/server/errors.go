package server

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Validation failures are the caller's fault; everything else maps to a
// generic server failure.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation, validator.ValidationErrors:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
