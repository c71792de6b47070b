// Package catalog holds the width table the validator resolves field types
// against. It mirrors the public bits package: one entry per specifier name
// B0..B64, and nothing else.
package catalog

import (
	"errors"
	"fmt"
)

// MaxWidth is the largest bit-width a single field may declare.
const MaxWidth = 64

// ErrUnknownFieldWidth reports a field whose type is not a width specifier.
// This is fatal for the record regardless of what the other fields sum to.
var ErrUnknownFieldWidth = errors.New("bitcheck: field type does not declare a bit-width")

// widths maps specifier name to bit-width for every entry in the catalog.
var widths = make(map[string]uint, MaxWidth+1)

func init() {
	for w := uint(0); w <= MaxWidth; w++ {
		widths[fmt.Sprintf("B%d", w)] = w
	}
}

// Resolve returns the bit-width declared by the named specifier.
// Names outside B0..B64 fail with ErrUnknownFieldWidth.
func Resolve(name string) (uint, error) {
	w, ok := widths[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownFieldWidth, name)
	}
	return w, nil
}

// Len reports the number of specifiers in the catalog.
func Len() int {
	return len(widths)
}
