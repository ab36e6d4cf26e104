package clock

import "errors"

var (
	ErrUnsupportedOperand = errors.New("unsupported operand")
	ErrInvalidFormat      = errors.New("invalid clock format")
)

// UnsupportedOperandError is returned when something that is neither a Clock
// nor an integer is added to a Clock.
type UnsupportedOperandError struct {
	// Kind is the Go type name of the rejected operand, e.g. "float64".
	Kind string
}

func (e *UnsupportedOperandError) Error() string {
	return "can't add Clock with " + e.Kind
}

func (e *UnsupportedOperandError) Is(target error) bool {
	return target == ErrUnsupportedOperand
}
