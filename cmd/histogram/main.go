package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tkdn/thinkgo/dict"
	"github.com/tkdn/thinkgo/internal/applog"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("HISTOGRAM_FORMAT must be text or yaml")

var logger = applog.Default()

func main() {
	format := os.Getenv("HISTOGRAM_FORMAT")
	if format == "" {
		format = "text"
	}
	if err := run(os.Stdin, os.Stdout, format); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func run(r io.Reader, w io.Writer, format string) error {
	text, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	hist := dict.Histogram(string(text))

	switch format {
	case "text":
		return dict.PrintHistogram(w, hist)
	case "yaml":
		counts := make(map[string]int, len(hist))
		for c, n := range hist {
			counts[string(c)] = n
		}
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(counts); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
