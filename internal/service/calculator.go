package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Calculator implements the math utility operations. Operands arrive as
// raw path variables, so every operation parses its inputs and rejects
// anything non-numeric before computing.
type Calculator struct{}

// NewCalculator creates a new Calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// ParseOperand converts a path variable into a float64.
// A decimal comma is accepted and treated as a decimal point ("3,5" means
// 3.5). Returns ErrInvalidOperand for anything strconv cannot parse.
func (c *Calculator) ParseOperand(raw string) (float64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")

	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOperand, raw)
	}

	// ParseFloat accepts "Inf" and "NaN" spellings; those are not
	// numbers a client can meaningfully send.
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOperand, raw)
	}

	return value, nil
}

// Sum adds two operands.
func (c *Calculator) Sum(a, b float64) float64 { return a + b }

// Sub subtracts the second operand from the first.
func (c *Calculator) Sub(a, b float64) float64 { return a - b }

// Mult multiplies two operands.
func (c *Calculator) Mult(a, b float64) float64 { return a * b }

// Div divides the first operand by the second.
// Returns ErrDivisionByZero when the divisor is zero.
func (c *Calculator) Div(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Mean returns the arithmetic mean of two operands.
func (c *Calculator) Mean(a, b float64) float64 { return (a + b) / 2 }

// SquareRoot returns the square root of the operand.
// Returns ErrNegativeSquareRoot for negative input.
func (c *Calculator) SquareRoot(a float64) (float64, error) {
	if a < 0 {
		return 0, ErrNegativeSquareRoot
	}
	return math.Sqrt(a), nil
}
