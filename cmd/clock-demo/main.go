package main

import (
	"fmt"
	"io"
	"os"

	"github.com/tkdn/thinkgo/clock"
	"github.com/tkdn/thinkgo/internal/applog"
)

var logger = applog.Default()

func main() {
	if err := run(os.Stdout); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
	logger.Info("completed")
}

// run adds a duration and a number of seconds to 09:45:00, then tries the
// operands Clock refuses. The first refusal ends the run.
func run(w io.Writer) error {
	start := clock.New(9, 45, 0)
	duration := clock.New(1, 35, 0)

	fmt.Fprintln(w, start.Add(duration))
	fmt.Fprintln(w, start.Add(clock.Increment(1337)))

	for _, operand := range []any{1.5, "1"} {
		sum, err := start.AddAny(operand)
		if err != nil {
			return fmt.Errorf("%s + %#v: %w", start, operand, err)
		}
		fmt.Fprintln(w, sum)
	}
	return nil
}
