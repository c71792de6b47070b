package testdata

import "github.com/alexhholmes/bitcheck/bits"

// Header is byte-aligned: 3+5 = 8 bits.
//
// @bitfield
type Header struct {
	Version bits.B3
	Flags   bits.B5
}

// Torn is misaligned: 1+1+1 = 3 bits.
//
// @bitfield
type Torn struct {
	A bits.B1
	B bits.B1
	C bits.B1
}

// Plain carries no annotation and is ignored by the validator.
type Plain struct {
	Value uint64
}
