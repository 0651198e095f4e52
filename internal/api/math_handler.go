package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dougbrunos/go-rest-apis/internal/api/shared"
	"github.com/dougbrunos/go-rest-apis/internal/service"
)

// MathHandler handles the math utility endpoints. Operands are path
// variables validated before any computation; a bad operand always
// produces a 400, never a computed value.
type MathHandler struct {
	calc   *service.Calculator
	logger *slog.Logger
}

// NewMathHandler creates a new MathHandler.
func NewMathHandler(calc *service.Calculator, log *slog.Logger) *MathHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for MathHandler")
	}

	return &MathHandler{
		calc:   calc,
		logger: log.With(slog.String("component", "math_handler")),
	}
}

// Sum handles GET /math/sum/{numberOne}/{numberTwo} requests.
func (h *MathHandler) Sum(w http.ResponseWriter, r *http.Request) {
	a, b, ok := h.twoOperands(w, r)
	if !ok {
		return
	}
	shared.Respond(w, r, http.StatusOK, h.calc.Sum(a, b))
}

// Sub handles GET /math/sub/{numberOne}/{numberTwo} requests.
func (h *MathHandler) Sub(w http.ResponseWriter, r *http.Request) {
	a, b, ok := h.twoOperands(w, r)
	if !ok {
		return
	}
	shared.Respond(w, r, http.StatusOK, h.calc.Sub(a, b))
}

// Mult handles GET /math/mult/{numberOne}/{numberTwo} requests.
func (h *MathHandler) Mult(w http.ResponseWriter, r *http.Request) {
	a, b, ok := h.twoOperands(w, r)
	if !ok {
		return
	}
	shared.Respond(w, r, http.StatusOK, h.calc.Mult(a, b))
}

// Div handles GET /math/div/{numberOne}/{numberTwo} requests.
func (h *MathHandler) Div(w http.ResponseWriter, r *http.Request) {
	a, b, ok := h.twoOperands(w, r)
	if !ok {
		return
	}

	quotient, err := h.calc.Div(a, b)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.Respond(w, r, http.StatusOK, quotient)
}

// Mean handles GET /math/mean/{numberOne}/{numberTwo} requests.
func (h *MathHandler) Mean(w http.ResponseWriter, r *http.Request) {
	a, b, ok := h.twoOperands(w, r)
	if !ok {
		return
	}
	shared.Respond(w, r, http.StatusOK, h.calc.Mean(a, b))
}

// SquareRoot handles GET /math/squareroot/{number} requests.
func (h *MathHandler) SquareRoot(w http.ResponseWriter, r *http.Request) {
	operand, err := h.calc.ParseOperand(chi.URLParam(r, "number"))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	root, err := h.calc.SquareRoot(operand)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.Respond(w, r, http.StatusOK, root)
}

// twoOperands parses the numberOne and numberTwo path variables, writing
// the error response itself when either is not numeric.
func (h *MathHandler) twoOperands(w http.ResponseWriter, r *http.Request) (float64, float64, bool) {
	a, err := h.calc.ParseOperand(chi.URLParam(r, "numberOne"))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return 0, 0, false
	}

	b, err := h.calc.ParseOperand(chi.URLParam(r, "numberTwo"))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return 0, 0, false
	}

	return a, b, true
}
