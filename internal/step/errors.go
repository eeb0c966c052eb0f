package step

import (
	"errors"
	"fmt"
)

// Diagnostic causes. Generators never return these as Go errors; they are
// carried by the single step of a rejected operation.
var (
	// ErrCapacity indicates the structure is at its fixed visualisation limit.
	ErrCapacity = errors.New("step: capacity exceeded")

	// ErrUnderflow indicates a removal or peek on an empty structure.
	ErrUnderflow = errors.New("step: underflow")

	// ErrInvalidOperand indicates a malformed, missing or out-of-range operand.
	ErrInvalidOperand = errors.New("step: invalid operand")
)

// Diagnostic wraps a diagnostic cause with the operation that raised it.
type Diagnostic struct {
	Op      string
	Detail  string
	Wrapped error
}

func (d *Diagnostic) Error() string {
	if d.Detail == "" {
		return fmt.Sprintf("%s: %v", d.Op, d.Wrapped)
	}
	return fmt.Sprintf("%s: %v: %s", d.Op, d.Wrapped, d.Detail)
}

func (d *Diagnostic) Unwrap() error {
	return d.Wrapped
}

// Reason returns a short label for the diagnostic cause.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrCapacity):
		return "capacity"
	case errors.Is(err, ErrUnderflow):
		return "underflow"
	case errors.Is(err, ErrInvalidOperand):
		return "invalid_operand"
	default:
		return "other"
	}
}
