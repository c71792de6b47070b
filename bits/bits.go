// Package bits defines the width specifier vocabulary for bit-packed records.
//
// A record declares its fields using the marker types B0 through B64, one per
// bit-width. The markers are zero-size: they cost nothing in the struct they
// appear in and exist only so the bitcheck validator can resolve each field to
// a width before the record is allowed to build.
//
//	// @bitfield
//	type PageHeader struct {
//		Version  bits.B3
//		Kind     bits.B5
//		Checksum bits.B16
//	}
package bits

// Field is implemented by every width specifier in the catalog, B0 through
// B64. The unexported method keeps the catalog closed: no type outside this
// package can declare a bit-width.
type Field interface {
	// Bits reports the number of bits the field occupies.
	Bits() uint

	specifier()
}
