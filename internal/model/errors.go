package model

import "errors"

// Common errors used across the application
var (
	// Card / entity errors
	ErrInvalidValue        = errors.New("card value must be 1, 4, 9 or 16")
	ErrInvalidColor        = errors.New("card color must be RED or BLUE")
	ErrInvalidPosition     = errors.New("position out of board range")
	ErrPositionOccupied    = errors.New("position is already occupied")
	ErrCardNotFound        = errors.New("card not found")
	ErrComboLengthMismatch = errors.New("combo card and position lists differ in length")

	// Game errors
	ErrDeckEmpty         = errors.New("deck is empty")
	ErrGameFinished      = errors.New("game is already finished")
	ErrGameNotFinished   = errors.New("game is not finished")
	ErrGameNotFound      = errors.New("game not found")
	ErrInvalidCombo      = errors.New("invalid combo claim")
	ErrInvalidDifficulty = errors.New("invalid CPU difficulty")
	ErrNotCPUPlayer      = errors.New("current player is not CPU-controlled")

	// Snapshot errors
	ErrInvalidSnapshot = errors.New("invalid game snapshot")
)
