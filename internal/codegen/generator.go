// Package codegen emits the two generated artifacts of the validator: the
// specifier catalog (bits/specifiers.go) and per-file guard files that make
// the compiler itself re-assert byte alignment on every build.
package codegen

import (
	"fmt"
	"go/format"
	"strings"

	"github.com/alexhholmes/bitcheck/internal/catalog"
	"github.com/alexhholmes/bitcheck/internal/parser"
)

const guardSuffix = "_bitcheck.go"

// GenerateSpecifiers returns the source of the bits package specifier
// catalog: one zero-size marker type per width 0..64, each implementing
// bits.Field.
func GenerateSpecifiers() ([]byte, error) {
	var out strings.Builder

	out.WriteString("// Code generated by bitcheck gen. DO NOT EDIT.\n")
	out.WriteString("\npackage bits\n")

	for w := 0; w <= catalog.MaxWidth; w++ {
		fmt.Fprintf(&out, "\n// B%d specifies a %d-bit field.\n", w, w)
		fmt.Fprintf(&out, "type B%d struct{}\n\n", w)
		fmt.Fprintf(&out, "func (B%d) Bits() uint { return %d }\n", w, w)
		fmt.Fprintf(&out, "func (B%d) specifier() {}\n", w)
	}

	src, err := format.Source([]byte(out.String()))
	if err != nil {
		return nil, fmt.Errorf("format specifiers: %w", err)
	}
	return src, nil
}

// GenerateGuards returns the source of a guard file for the records parsed
// from one source file. Each record contributes a constant index into a
// length-1 array; the index is the record's total bit-width modulo 8, so any
// misaligned record turns the guard into a compile error. Records that failed
// field extraction are skipped — they were already rejected outright.
func GenerateGuards(pkg string, records []*parser.Record) ([]byte, error) {
	var out strings.Builder

	out.WriteString("// Code generated by bitcheck check. DO NOT EDIT.\n")
	fmt.Fprintf(&out, "\npackage %s\n", pkg)

	emitted := 0
	for _, rec := range records {
		if rec.Err != nil {
			continue
		}
		out.WriteString("\n")
		out.WriteString(guardComment(rec))
		fmt.Fprintf(&out, "var _ = [1]struct{}{}[(%s) %% 8]\n", sumExpr(rec.Fields))
		emitted++
	}

	if emitted == 0 {
		return nil, nil
	}

	src, err := format.Source([]byte(out.String()))
	if err != nil {
		return nil, fmt.Errorf("format guards: %w", err)
	}
	return src, nil
}

// guardComment traces the sum back to the declaration:
// "// PageHeader: Version(3) + Kind(5) + Checksum(16) = 24 bits"
func guardComment(rec *parser.Record) string {
	var terms []string
	var total uint
	for _, f := range rec.Fields {
		terms = append(terms, fmt.Sprintf("%s(%d)", f.Name, f.Width))
		total += f.Width
	}
	if len(terms) == 0 {
		return fmt.Sprintf("// %s: no fields = 0 bits\n", rec.Name)
	}
	return fmt.Sprintf("// %s: %s = %d bits\n", rec.Name, strings.Join(terms, " + "), total)
}

// sumExpr renders the field widths as a constant sum, "3 + 5 + 16".
// An empty field list sums to the literal 0.
func sumExpr(fields []parser.Field) string {
	if len(fields) == 0 {
		return "0"
	}
	widths := make([]string, len(fields))
	for i, f := range fields {
		widths[i] = fmt.Sprintf("%d", f.Width)
	}
	return strings.Join(widths, " + ")
}

// GuardPath returns the guard file path for a source file:
// "page.go" → "page_bitcheck.go".
func GuardPath(src string) string {
	return strings.TrimSuffix(src, ".go") + guardSuffix
}

// IsGuardPath reports whether a path names a generated guard file.
func IsGuardPath(path string) bool {
	return strings.HasSuffix(path, guardSuffix)
}
