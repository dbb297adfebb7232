package model

import "errors"

// Common errors used across the application
var (
	// Game errors
	ErrGameNotFound = errors.New("game not found")
	ErrInvalidMode  = errors.New("invalid game mode")

	// Record errors
	ErrRecordNotFound = errors.New("game record not found")
)
