package bitcheck

import (
	"github.com/alexhholmes/bitcheck/internal/analyzer"
	"github.com/alexhholmes/bitcheck/internal/catalog"
)

var (
	// ErrUnknownFieldWidth reports a field whose type is not in the width
	// catalog. Fatal for the record, independent of divisibility.
	ErrUnknownFieldWidth = catalog.ErrUnknownFieldWidth

	// ErrMisalignedTotal reports a record whose total bit-width is not a
	// multiple of 8.
	ErrMisalignedTotal = analyzer.ErrMisalignedTotal
)
