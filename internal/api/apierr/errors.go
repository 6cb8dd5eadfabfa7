package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/stargrid/stargrid-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeInvalidValue      = "INVALID_VALUE"
	CodeInvalidPosition   = "INVALID_POSITION"
	CodePositionOccupied  = "POSITION_OCCUPIED"
	CodeCardNotFound      = "CARD_NOT_FOUND"
	CodeComboMismatch     = "COMBO_LENGTH_MISMATCH"
	CodeInvalidCombo      = "INVALID_COMBO"
	CodeDeckEmpty         = "DECK_EMPTY"
	CodeGameFinished      = "GAME_FINISHED"
	CodeGameNotFinished   = "GAME_NOT_FINISHED"
	CodeGameNotFound      = "GAME_NOT_FOUND"
	CodeInvalidDifficulty = "INVALID_DIFFICULTY"
	CodeNotCPUPlayer      = "NOT_CPU_PLAYER"
	CodeInvalidSnapshot   = "INVALID_SNAPSHOT"
	CodeInternalError     = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrInvalidValue):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidValue, "Card value must be 1, 4, 9 or 16"}}
	case errors.Is(err, model.ErrInvalidPosition):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPosition, "Invalid board position"}}
	case errors.Is(err, model.ErrPositionOccupied):
		return &httpError{http.StatusConflict, APIError{CodePositionOccupied, "Position is already occupied"}}
	case errors.Is(err, model.ErrCardNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeCardNotFound, "Card not found"}}
	case errors.Is(err, model.ErrComboLengthMismatch):
		return &httpError{http.StatusBadRequest, APIError{CodeComboMismatch, "Combo card and position lists differ in length"}}
	case errors.Is(err, model.ErrInvalidCombo):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeInvalidCombo, "Combo claim does not satisfy any scoring rule"}}
	case errors.Is(err, model.ErrDeckEmpty):
		return &httpError{http.StatusConflict, APIError{CodeDeckEmpty, "Deck is empty"}}
	case errors.Is(err, model.ErrGameFinished):
		return &httpError{http.StatusConflict, APIError{CodeGameFinished, "Game is already finished"}}
	case errors.Is(err, model.ErrGameNotFinished):
		return &httpError{http.StatusConflict, APIError{CodeGameNotFinished, "Game is not finished"}}
	case errors.Is(err, model.ErrInvalidDifficulty):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDifficulty, "Difficulty must be easy or normal"}}
	case errors.Is(err, model.ErrNotCPUPlayer):
		return &httpError{http.StatusConflict, APIError{CodeNotCPUPlayer, "Current player is not CPU-controlled"}}
	case errors.Is(err, model.ErrInvalidSnapshot):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidSnapshot, "Snapshot fails game invariants"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}
