package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Request & Input-Validation Errors
var (
	ErrValidation           = errors.New("validation failed")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidField         = errors.New("invalid field")
	ErrMalformedPayload     = errors.New("malformed payload")
)

func Malformed(payloadName string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        fmt.Errorf("%s %w: %w", payloadName, ErrMalformedPayload, ErrValidation),
	}
}

// NewMissingFieldError reports a required field that was absent or blank.
func NewMissingFieldError(field string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        fmt.Errorf("%w: %w", ErrMissingRequiredField, ErrValidation),
		Details:    fmt.Sprintf("%s is required", field),
		Field:      field,
	}
}

// NewInvalidFieldError reports a field whose value could not be used.
func NewInvalidFieldError(field, message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        fmt.Errorf("%w: %w", ErrInvalidField, ErrValidation),
		Details:    message,
		Field:      field,
	}
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsMissingRequiredField(err error) bool {
	return errors.Is(err, ErrMissingRequiredField)
}

func IsInvalidField(err error) bool {
	return errors.Is(err, ErrInvalidField)
}
