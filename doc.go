// Package bitcheck validates bit-packed record layouts before they build.
//
// A record is a struct annotated with @bitfield whose fields are typed with
// the width specifiers from the bits package (B0..B64). bitcheck resolves
// every field to its declared width, sums the widths, and accepts the record
// only when the total is a multiple of 8 — a record must occupy a whole
// number of bytes. Anything else is a build failure: run `bitcheck check`
// from go:generate or CI and a misaligned record exits non-zero before the
// code that uses it can ship.
//
// Two gate backends decide the verdict. The capability backend (default)
// requires the ByteAligned capability on the total's residue class modulo 8,
// held by class 0 only. The index backend evaluates the same constant bounds
// check a generated guard file carries, so the diagnostic matches what the
// compiler would say. Both accept exactly the multiples of 8.
package bitcheck
