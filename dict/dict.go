// Package dict holds small map exercises: counting characters, finding a key
// by its value and inverting a map.
package dict

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"golang.org/x/exp/constraints"
)

var ErrValueNotFound = errors.New("no such value in map")

// Histogram counts how often each character occurs in text.
func Histogram(text string) map[rune]int {
	hist := make(map[rune]int)
	for _, r := range text {
		hist[r]++
	}
	return hist
}

// PrintHistogram writes one "<char> <count>" line per entry, ordered by
// character.
func PrintHistogram(w io.Writer, hist map[rune]int) error {
	for _, r := range slices.Sorted(maps.Keys(hist)) {
		if _, err := fmt.Fprintf(w, "%c %d\n", r, hist[r]); err != nil {
			return err
		}
	}
	return nil
}

// ReverseLookup returns the smallest key that maps to value.
func ReverseLookup[K constraints.Ordered, V comparable](m map[K]V, value V) (K, error) {
	var (
		found K
		ok    bool
	)
	for k, v := range m {
		if v == value && (!ok || k < found) {
			found, ok = k, true
		}
	}
	if !ok {
		return found, fmt.Errorf("%w: %v", ErrValueNotFound, value)
	}
	return found, nil
}

// Invert maps every value of m to the sorted keys that held it.
func Invert[K constraints.Ordered, V comparable](m map[K]V) map[V][]K {
	inverted := make(map[V][]K)
	for _, k := range slices.Sorted(maps.Keys(m)) {
		inverted[m[k]] = append(inverted[m[k]], k)
	}
	return inverted
}
