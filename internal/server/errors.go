package server

import (
	"errors"

	"github.com/localrivet/dragonsumm/internal/errortypes"
)

// Error codes reported in tool responses
const (
	StatusCodeValidationError = "VALIDATION_ERROR"
	StatusCodeInternalError   = "INTERNAL_ERROR"
	StatusCodeConfigError     = "CONFIG_ERROR"
	StatusCodeExternalError   = "EXTERNAL_ERROR"
	StatusCodeUnknownError    = "UNKNOWN_ERROR"
)

// ErrorCode maps an error to the code reported alongside it in a tool
// response.
func ErrorCode(err error) string {
	var appErr *errortypes.AppError
	if !errors.As(err, &appErr) {
		return StatusCodeUnknownError
	}

	switch appErr.Type {
	case errortypes.ErrorTypeValidation:
		return StatusCodeValidationError
	case errortypes.ErrorTypeInternal:
		return StatusCodeInternalError
	case errortypes.ErrorTypeConfig:
		return StatusCodeConfigError
	case errortypes.ErrorTypeExternal:
		return StatusCodeExternalError
	default:
		return StatusCodeUnknownError
	}
}

// toolError logs err and returns the message and code to put in a response.
func toolError(err error) (message, code string) {
	errortypes.LogError(nil, err)
	return err.Error(), ErrorCode(err)
}
