package repository

import "errors"

// Common repository errors
var (
	// ErrBoardNotFound is returned when a mirrored board is not found
	ErrBoardNotFound = errors.New("board not found")
)
