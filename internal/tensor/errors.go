package tensor

import "errors"

// Common errors.
//
// Callers match them with errors.Is; operations attach context by wrapping.
var (
	ErrShape                = errors.New("tensor: invalid shape")
	ErrSizeMismatch         = errors.New("tensor: size mismatch")
	ErrOutOfRange           = errors.New("tensor: index out of range")
	ErrIncompatibleOperands = errors.New("tensor: incompatible operands")
)
