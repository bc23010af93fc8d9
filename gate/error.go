package gate

import (
	"errors"
	"fmt"
)

// FallbackMessage is the error message of a failed response without a usable detail.
const FallbackMessage = "Error en la solicitud de la API."

// Error represents a non-2xx API response.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// ParseError represents a 2xx response whose body is not valid JSON.
type ParseError struct {
	StatusCode int
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsAPIError returns the API error wrapped in err, if any.
func IsAPIError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
