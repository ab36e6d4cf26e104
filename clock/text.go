package clock

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads the HH:MM:SS form produced by String. Each field may be any
// decimal integer, so every String result parses back to the same Clock.
func Parse(s string) (Clock, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	var fields [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Clock{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		fields[i] = n
	}
	return New(fields[0], fields[1], fields[2]), nil
}

func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Clock) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
