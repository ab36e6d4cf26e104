package clock

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Addend is something that can be added to a Clock. The only
// implementations are Clock (a duration) and Increment (a count of seconds).
type Addend interface {
	seconds() int
}

// Increment is a raw number of seconds to move a Clock by.
type Increment int

func (n Increment) seconds() int { return int(n) }

func (c Clock) seconds() int { return c.Seconds() }

var (
	_ Addend = Clock{}
	_ Addend = Increment(0)
)

// Add returns c moved forward by a. c itself is left untouched.
func (c Clock) Add(a Addend) Clock {
	return FromSeconds(c.Seconds() + a.seconds())
}

// AddSeconds adds n seconds to c. n is converted to int.
func AddSeconds[T constraints.Integer](c Clock, n T) Clock {
	return c.Add(Increment(n))
}

// AddAny adds v to c, choosing the addition from v's dynamic type.
//
// A Clock (or non-nil *Clock) is added as a duration. Increment and integer
// kinds that always fit into an int are added as seconds. Everything else,
// bool and floating point numbers included, fails with an
// *UnsupportedOperandError naming v's type.
func (c Clock) AddAny(v any) (Clock, error) {
	a, err := addendOf(v)
	if err != nil {
		return Clock{}, err
	}
	return c.Add(a), nil
}

// Sum adds a and b in either order. One of them has to be a Clock; the other
// one goes through the same rules as AddAny, so Sum(c, n) and Sum(n, c)
// always agree.
func Sum(a, b any) (Clock, error) {
	if c, ok := asClock(a); ok {
		return c.AddAny(b)
	}
	if c, ok := asClock(b); ok {
		return c.AddAny(a)
	}
	return Clock{}, unsupported(a)
}

func asClock(v any) (Clock, bool) {
	switch v := v.(type) {
	case Clock:
		return v, true
	case *Clock:
		if v != nil {
			return *v, true
		}
	}
	return Clock{}, false
}

func addendOf(v any) (Addend, error) {
	if c, ok := asClock(v); ok {
		return c, nil
	}
	switch v := v.(type) {
	case Increment:
		return v, nil
	case int:
		return Increment(v), nil
	case int8:
		return Increment(v), nil
	case int16:
		return Increment(v), nil
	case int32:
		return Increment(v), nil
	case int64:
		return Increment(v), nil
	case uint8:
		return Increment(v), nil
	case uint16:
		return Increment(v), nil
	case uint32:
		return Increment(v), nil
	}
	return nil, unsupported(v)
}

func unsupported(v any) error {
	return &UnsupportedOperandError{Kind: fmt.Sprintf("%T", v)}
}
