// Package clock implements a time-of-day value that doubles as a duration.
//
// A Clock is a flat hour/minute/second record. Fields are never validated:
// out-of-range values are kept as given and only come out normalised after a
// round trip through total seconds (see FromSeconds).
package clock

import (
	"fmt"
	"time"
)

type Clock struct {
	Hour   int
	Minute int
	Second int
}

// New returns a Clock with the given fields. Clock{} is 00:00:00.
func New(hour, minute, second int) Clock {
	return Clock{
		Hour:   hour,
		Minute: minute,
		Second: second,
	}
}

// FromTime takes the wall clock part of t, dropping the date and anything
// below a second.
func FromTime(t time.Time) Clock {
	return New(t.Hour(), t.Minute(), t.Second())
}

// FromSeconds splits total into hours, minutes and seconds with floor
// division, so a negative total yields a negative hour with a non-negative
// minute and second.
func FromSeconds(total int) Clock {
	minutes, second := divmod(total, 60)
	hour, minute := divmod(minutes, 60)
	return New(hour, minute, second)
}

// Seconds returns the total number of seconds c stands for.
func (c Clock) Seconds() int {
	minutes := c.Hour*60 + c.Minute
	return minutes*60 + c.Second
}

func (c Clock) IsAfter(other Clock) bool {
	return c.Seconds() > other.Seconds()
}

// String renders c as HH:MM:SS. Fields are printed as they are, so 25 hours
// stay "25" and negatives keep their sign.
func (c Clock) String() string {
	return fmt.Sprintf("%.2d:%.2d:%.2d", c.Hour, c.Minute, c.Second)
}

func divmod(a, b int) (q, r int) {
	q, r = a/b, a%b
	if r != 0 && (r < 0) != (b < 0) {
		q--
		r += b
	}
	return q, r
}
