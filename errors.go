package cubetimer

import "errors"

// Sentinel errors for the cubetimer package.
var (
	// Generation errors
	ErrInvalidLength    = errors.New("cubetimer: scramble length must not be negative")
	ErrRetriesExhausted = errors.New("cubetimer: no valid move drawn within the attempt limit")

	// Parsing errors
	ErrInvalidNotation = errors.New("cubetimer: invalid move notation")
)
