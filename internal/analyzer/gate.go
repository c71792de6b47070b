package analyzer

import (
	"errors"
	"fmt"
)

// ErrMisalignedTotal reports a record whose total bit-width is not a
// multiple of 8.
var ErrMisalignedTotal = errors.New("bitcheck: total bit-width is not a multiple of 8")

// Strategy selects the gate backend used to turn a residue class into a
// build verdict.
type Strategy int

const (
	// Capability requires the ByteAligned capability on the classified
	// residue. The diagnostic names the missing capability.
	Capability Strategy = iota

	// Index evaluates the same constant bounds check a generated guard file
	// carries: a length-1 array indexed by total % 8. The diagnostic is the
	// generic out-of-bounds message, nothing more specific.
	Index
)

func (s Strategy) String() string {
	switch s {
	case Capability:
		return "capability"
	case Index:
		return "index"
	default:
		return "unknown"
	}
}

// ParseStrategy parses a strategy name as written in config or annotations.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", "capability":
		return Capability, nil
	case "index":
		return Index, nil
	default:
		return 0, fmt.Errorf("invalid strategy: %s (expected capability or index)", s)
	}
}

// Gate decides whether a total bit-width is byte-aligned. A nil return is
// the only accept; every other outcome wraps ErrMisalignedTotal. Both
// implementations accept exactly the multiples of 8 — they differ only in
// diagnostic texture.
type Gate interface {
	Check(total uint) error
}

// GateFor returns the gate backend for a strategy.
func GateFor(s Strategy) Gate {
	if s == Index {
		return indexGate{}
	}
	return capabilityGate{}
}

// capabilityGate asserts ByteAligned on the classified residue.
type capabilityGate struct{}

func (capabilityGate) Check(total uint) error {
	r := Classify(total)
	if !Aligned(r) {
		return fmt.Errorf("%w: ByteAligned is not implemented for mod%d", ErrMisalignedTotal, r.Class())
	}
	return nil
}

// indexGate performs the bounds check that guard files delegate to the
// compiler: index total % 8 into a length-1 array. Index 0 is the only
// in-bounds access.
type indexGate struct{}

func (indexGate) Check(total uint) error {
	if idx := total % 8; idx != 0 {
		return fmt.Errorf("%w: index %d out of bounds [0:1]", ErrMisalignedTotal, idx)
	}
	return nil
}
