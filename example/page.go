// Package example shows bit-packed record declarations validated by bitcheck.
//
// Run `go generate ./example` (or `bitcheck check example`) to validate; a
// misaligned record fails the run before anything using these layouts builds.
package example

//go:generate go run github.com/alexhholmes/bitcheck/cmd/bitcheck check .

import "github.com/alexhholmes/bitcheck/bits"

// PageHeader is the fixed prefix of every on-disk page: 3+5+16+8+32 = 64 bits.
//
// @bitfield
type PageHeader struct {
	Version  bits.B3
	Kind     bits.B5
	Checksum bits.B16
	Flags    bits.B8
	PageID   bits.B32
}

// SlotPointer addresses a cell within a page: 12+12 = 24 bits.
//
// @bitfield
type SlotPointer struct {
	Offset bits.B12
	Length bits.B12
}

// FreeBitmap uses the index backend, so its guard diagnostic matches the
// compiler's own bounds-check message.
//
// @bitfield strategy=index
type FreeBitmap struct {
	Words bits.B64
}
