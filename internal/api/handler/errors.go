package handler

import (
	"net/http"

	"github.com/stargrid/stargrid-go/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest    = apierr.CodeInvalidRequest
	CodeInvalidValue      = apierr.CodeInvalidValue
	CodeInvalidPosition   = apierr.CodeInvalidPosition
	CodePositionOccupied  = apierr.CodePositionOccupied
	CodeCardNotFound      = apierr.CodeCardNotFound
	CodeComboMismatch     = apierr.CodeComboMismatch
	CodeInvalidCombo      = apierr.CodeInvalidCombo
	CodeDeckEmpty         = apierr.CodeDeckEmpty
	CodeGameFinished      = apierr.CodeGameFinished
	CodeGameNotFinished   = apierr.CodeGameNotFinished
	CodeGameNotFound      = apierr.CodeGameNotFound
	CodeInvalidDifficulty = apierr.CodeInvalidDifficulty
	CodeNotCPUPlayer      = apierr.CodeNotCPUPlayer
	CodeInvalidSnapshot   = apierr.CodeInvalidSnapshot
	CodeInternalError     = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
