package service

import "errors"

// Calculator errors. All of them map to a 400 response; a math endpoint
// never returns a computed value for bad input.
var (
	// ErrInvalidOperand is returned when a math operand is not numeric.
	ErrInvalidOperand = errors.New("operand is not a numeric value")

	// ErrDivisionByZero is returned when a division has a zero divisor.
	// Serialized number formats cannot carry +Inf, so this is rejected
	// up front rather than propagated.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNegativeSquareRoot is returned when the square root of a
	// negative number is requested.
	ErrNegativeSquareRoot = errors.New("square root of a negative number")
)
